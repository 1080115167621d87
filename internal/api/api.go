package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"ops-dashboard/internal/db"
	"ops-dashboard/internal/export"
	"ops-dashboard/internal/inventory"
	k "ops-dashboard/internal/kafka"
	"ops-dashboard/internal/reconcile"
	"ops-dashboard/internal/syncer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	maxImportBytes = 10 << 20
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type deviceRepository interface {
	ListDevices(ctx context.Context) ([]db.DeviceRecord, error)
	GetDevice(ctx context.Context, id string) (db.DeviceRecord, error)
	CreateDevice(ctx context.Context, rec db.DeviceRecord) (db.DeviceRecord, error)
	UpdateDevice(ctx context.Context, id string, rec db.DeviceRecord) (db.DeviceRecord, error)
	DeleteDevice(ctx context.Context, id string) error
	DeviceStats(ctx context.Context) (db.DeviceStats, error)
}

type topUpRepository interface {
	ListTopUps(ctx context.Context, filter db.TopUpFilter) ([]db.PhoneTopUp, error)
	GetTopUp(ctx context.Context, id string) (db.PhoneTopUp, error)
	CreateTopUp(ctx context.Context, rec db.PhoneTopUp) (db.PhoneTopUp, error)
	UpdateTopUp(ctx context.Context, id string, rec db.PhoneTopUp) (db.PhoneTopUp, error)
	DeleteTopUp(ctx context.Context, id string) error
	TopUpStats(ctx context.Context, now time.Time) (db.TopUpStats, error)
	CountTopUps(ctx context.Context) (int, error)
}

type syncService interface {
	Sync(ctx context.Context, name string) (reconcile.Result, error)
	Import(ctx context.Context, name string, text string) (reconcile.Result, error)
}

type statusCache interface {
	Snapshot() map[string]k.SyncReport
}

type Config struct {
	Devices     deviceRepository
	TopUps      topUpRepository
	Syncer      syncService
	Status      statusCache
	CORSOrigins []string
	Now         func() time.Time
}

type API struct {
	devices     deviceRepository
	topUps      topUpRepository
	syncer      syncService
	status      statusCache
	corsOrigins []string
	now         func() time.Time
	decoder     *form.Decoder
	validate    *validator.Validate
}

func New(cfg Config) *API {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &API{
		devices:     cfg.Devices,
		topUps:      cfg.TopUps,
		syncer:      cfg.Syncer,
		status:      cfg.Status,
		corsOrigins: cfg.CORSOrigins,
		now:         now,
		decoder:     form.NewDecoder(),
		validate:    validator.New(),
	}
}

func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: a.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", a.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/devices", func(r chi.Router) {
		r.Get("/", a.ListDevices)
		r.Post("/", a.CreateDevice)
		r.Get("/stats", a.GetDeviceStats)
		r.Get("/export", a.ExportDevices)
		r.Post("/import", a.ImportDevices)
		r.Get("/{id}", a.GetDevice)
		r.Put("/{id}", a.UpdateDevice)
		r.Delete("/{id}", a.DeleteDevice)
	})
	r.Route("/topups", func(r chi.Router) {
		r.Get("/", a.ListTopUps)
		r.Post("/", a.CreateTopUp)
		r.Get("/stats", a.GetTopUpStats)
		r.Get("/export", a.ExportTopUps)
		r.Post("/import", a.ImportTopUps)
		r.Get("/{id}", a.GetTopUp)
		r.Put("/{id}", a.UpdateTopUp)
		r.Delete("/{id}", a.DeleteTopUp)
	})
	r.Route("/sync", func(r chi.Router) {
		r.Get("/status", a.GetSyncStatus)
		r.Post("/{source}", a.Sync)
	})
	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	n, err := a.topUps.CountTopUps(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", TopUps: n})
}

func (a *API) ListDevices(w http.ResponseWriter, r *http.Request) {
	recs, err := a.devices.ListDevices(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := ListDevicesResponse{Devices: make([]Device, 0, len(recs))}
	for _, rec := range recs {
		resp.Devices = append(resp.Devices, toDevice(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	rec, err := a.devices.GetDevice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDevice(rec))
}

func (a *API) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req DeviceRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	rec, err := a.devices.CreateDevice(r.Context(), req.record())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDevice(rec))
}

func (a *API) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	var req DeviceRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	rec, err := a.devices.UpdateDevice(r.Context(), chi.URLParam(r, "id"), req.record())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDevice(rec))
}

func (a *API) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := a.devices.DeleteDevice(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) GetDeviceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.devices.DeviceStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := DeviceStatsResponse{
		Total:        stats.Total,
		Paired:       stats.Paired,
		Banned:       stats.Banned,
		ProductCount: stats.ProductCount,
		OwnerCount:   stats.OwnerCount,
		Recent:       make([]Device, 0, len(stats.Recent)),
	}
	for _, rec := range stats.Recent {
		resp.Recent = append(resp.Recent, toDevice(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) ExportDevices(w http.ResponseWriter, r *http.Request) {
	format, ok := a.exportFormat(w, r)
	if !ok {
		return
	}
	recs, err := a.devices.ListDevices(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeExport(w, r, format, inventory.DevicesSource, inventory.DeviceHeader, export.DeviceRows(recs))
}

func (a *API) ImportDevices(w http.ResponseWriter, r *http.Request) {
	a.importSource(w, r, inventory.DevicesSource)
}

func (a *API) ListTopUps(w http.ResponseWriter, r *http.Request) {
	var q TopUpQuery
	if err := a.decoder.Decode(&q, r.URL.Query()); err != nil {
		http.Error(w, "invalid query", http.StatusBadRequest)
		return
	}
	recs, err := a.topUps.ListTopUps(r.Context(), q.filter())
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := ListTopUpsResponse{TopUps: make([]TopUp, 0, len(recs))}
	for _, rec := range recs {
		resp.TopUps = append(resp.TopUps, toTopUp(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetTopUp(w http.ResponseWriter, r *http.Request) {
	rec, err := a.topUps.GetTopUp(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopUp(rec))
}

func (a *API) CreateTopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	rec, err := a.topUps.CreateTopUp(r.Context(), req.record())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTopUp(rec))
}

func (a *API) UpdateTopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	rec, err := a.topUps.UpdateTopUp(r.Context(), chi.URLParam(r, "id"), req.record())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopUp(rec))
}

func (a *API) DeleteTopUp(w http.ResponseWriter, r *http.Request) {
	if err := a.topUps.DeleteTopUp(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) GetTopUpStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.topUps.TopUpStats(r.Context(), a.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TopUpStatsResponse{
		Total:            stats.Total,
		Active:           stats.Active,
		Terminated:       stats.Terminated,
		WsBanned:         stats.WsBanned,
		UpcomingRenewals: stats.UpcomingRenewals,
		MonthlyCost:      stats.MonthlyCost,
	})
}

// ExportTopUps honours the same filters as ListTopUps.
func (a *API) ExportTopUps(w http.ResponseWriter, r *http.Request) {
	format, ok := a.exportFormat(w, r)
	if !ok {
		return
	}
	var q TopUpQuery
	if err := a.decoder.Decode(&q, r.URL.Query()); err != nil {
		http.Error(w, "invalid query", http.StatusBadRequest)
		return
	}
	recs, err := a.topUps.ListTopUps(r.Context(), q.filter())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeExport(w, r, format, inventory.TopUpsSource, inventory.TopUpHeader, export.TopUpRows(recs))
}

func (a *API) ImportTopUps(w http.ResponseWriter, r *http.Request) {
	a.importSource(w, r, inventory.TopUpsSource)
}

func (a *API) Sync(w http.ResponseWriter, r *http.Request) {
	res, err := a.syncer.Sync(r.Context(), chi.URLParam(r, "source"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *API) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.status.Snapshot())
}

// importSource reconciles an uploaded export. The body is CSV unless it is
// sent as an XLSX workbook.
func (a *API) importSource(w http.ResponseWriter, r *http.Request, source string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	text := string(body)
	if mediaType(r) == xlsxMediaType {
		text, err = export.XLSXToCSV(bytes.NewReader(body))
		if err != nil {
			http.Error(w, "invalid workbook", http.StatusBadRequest)
			return
		}
	}
	if strings.TrimSpace(text) == "" {
		http.Error(w, "empty import", http.StatusBadRequest)
		return
	}
	res, err := a.syncer.Import(r.Context(), source, text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *API) exportFormat(w http.ResponseWriter, r *http.Request) (export.Format, bool) {
	var q ExportQuery
	if err := a.decoder.Decode(&q, r.URL.Query()); err != nil {
		http.Error(w, "invalid query", http.StatusBadRequest)
		return "", false
	}
	if !a.valid(w, q) {
		return "", false
	}
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return format, true
}

// decodeBody fills v from a JSON or url-encoded form body and validates it.
// It writes the 400 response itself and reports whether v is usable.
func (a *API) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if mediaType(r) == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return false
		}
		if err := a.decoder.Decode(v, r.PostForm); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return false
		}
	} else if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return a.valid(w, v)
}

func (a *API) valid(w http.ResponseWriter, v any) bool {
	err := a.validate.Struct(v)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	resp := ValidationErrorResponse{Errors: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		resp.Errors[fe.Field()] = validationMessage(fe)
	}
	writeJSON(w, http.StatusBadRequest, resp)
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date formatted " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, syncer.ErrUnknownSource):
		return http.StatusNotFound
	case errors.Is(err, db.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, syncer.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, syncer.ErrSourceNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "status", code, "error", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeExport(w http.ResponseWriter, r *http.Request, format export.Format, source string, header []string, rows [][]string) {
	var buf bytes.Buffer
	if err := export.Write(&buf, format, header, rows); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": format.Filename(source),
	}))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
