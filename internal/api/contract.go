package api

import (
	"strings"
	"time"

	"ops-dashboard/internal/db"
	"ops-dashboard/internal/inventory"
)

const dateLayout = "2006-01-02"

type Device struct {
	ID             string    `json:"id"`
	Owner          string    `json:"owner"`
	Phone          string    `json:"phone"`
	Company        string    `json:"company"`
	SlaveID        string    `json:"slaveId"`
	DeviceID       string    `json:"deviceId"`
	TotalDatabased int       `json:"totalDatabased"`
	Product        string    `json:"product"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type DeviceRequest struct {
	Owner          string `json:"owner" form:"owner" validate:"required"`
	Phone          string `json:"phone" form:"phone"`
	Company        string `json:"company" form:"company"`
	SlaveID        string `json:"slaveId" form:"slaveId" validate:"required"`
	DeviceID       string `json:"deviceId" form:"deviceId"`
	TotalDatabased int    `json:"totalDatabased" form:"totalDatabased" validate:"gte=0"`
	Product        string `json:"product" form:"product"`
	Status         string `json:"status" form:"status"`
	Notes          string `json:"notes" form:"notes"`
}

func (r DeviceRequest) record() db.DeviceRecord {
	return db.DeviceRecord{
		Owner:          strings.TrimSpace(r.Owner),
		Phone:          strings.TrimSpace(r.Phone),
		Company:        strings.TrimSpace(r.Company),
		SlaveID:        strings.TrimSpace(r.SlaveID),
		DeviceID:       strings.TrimSpace(r.DeviceID),
		TotalDatabased: r.TotalDatabased,
		Product:        strings.TrimSpace(r.Product),
		Status:         strings.TrimSpace(r.Status),
		Notes:          optional(r.Notes),
	}
}

func toDevice(rec db.DeviceRecord) Device {
	return Device{
		ID:             rec.ID,
		Owner:          rec.Owner,
		Phone:          rec.Phone,
		Company:        rec.Company,
		SlaveID:        rec.SlaveID,
		DeviceID:       rec.DeviceID,
		TotalDatabased: rec.TotalDatabased,
		Product:        rec.Product,
		Status:         rec.Status,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type ListDevicesResponse struct {
	Devices []Device `json:"devices"`
}

type DeviceStatsResponse struct {
	Total        int            `json:"total"`
	Paired       int            `json:"paired"`
	Banned       int            `json:"banned"`
	ProductCount map[string]int `json:"productCount"`
	OwnerCount   map[string]int `json:"ownerCount"`
	Recent       []Device       `json:"recent"`
}

// Dates are YYYY-MM-DD on the wire.
type TopUp struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	SimCardID   *int      `json:"simCardId"`
	Name        *string   `json:"name"`
	Status      string    `json:"status"`
	WsStatus    *string   `json:"wsStatus"`
	TopUpAmount string    `json:"topUpAmount"`
	TopUpDate   *string   `json:"topUpDate"`
	RenewalDate *string   `json:"renewalDate"`
	Price       string    `json:"price"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TopUpRequest struct {
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	SimCardID   *int   `json:"simCardId" form:"simCardId" validate:"omitempty,gte=0"`
	Name        string `json:"name" form:"name"`
	Status      string `json:"status" form:"status"`
	WsStatus    string `json:"wsStatus" form:"wsStatus"`
	TopUpAmount string `json:"topUpAmount" form:"topUpAmount"`
	TopUpDate   string `json:"topUpDate" form:"topUpDate" validate:"omitempty,datetime=2006-01-02"`
	RenewalDate string `json:"renewalDate" form:"renewalDate" validate:"omitempty,datetime=2006-01-02"`
	Price       string `json:"price" form:"price"`
	Notes       string `json:"notes" form:"notes"`
}

// record applies the same defaults as a sheet import.
func (r TopUpRequest) record() db.PhoneTopUp {
	return db.PhoneTopUp{
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		SimCardID:   r.SimCardID,
		Name:        optional(r.Name),
		Status:      withDefault(r.Status, inventory.DefaultTopUpStatus),
		WsStatus:    optional(r.WsStatus),
		TopUpAmount: withDefault(r.TopUpAmount, inventory.DefaultTopUpAmount),
		TopUpDate:   parseDate(r.TopUpDate),
		RenewalDate: parseDate(r.RenewalDate),
		Price:       withDefault(r.Price, inventory.DefaultTopUpPrice),
		Notes:       optional(r.Notes),
	}
}

func toTopUp(rec db.PhoneTopUp) TopUp {
	return TopUp{
		ID:          rec.ID,
		PhoneNumber: rec.PhoneNumber,
		SimCardID:   rec.SimCardID,
		Name:        rec.Name,
		Status:      rec.Status,
		WsStatus:    rec.WsStatus,
		TopUpAmount: rec.TopUpAmount,
		TopUpDate:   formatDate(rec.TopUpDate),
		RenewalDate: formatDate(rec.RenewalDate),
		Price:       rec.Price,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

type TopUpQuery struct {
	Status   string `form:"status"`
	WsStatus string `form:"wsStatus"`
	Search   string `form:"search"`
}

func (q TopUpQuery) filter() db.TopUpFilter {
	return db.TopUpFilter{
		Status:   strings.TrimSpace(q.Status),
		WsStatus: strings.TrimSpace(q.WsStatus),
		Search:   strings.TrimSpace(q.Search),
	}
}

type ExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv xlsx"`
}

type ListTopUpsResponse struct {
	TopUps []TopUp `json:"topUps"`
}

type TopUpStatsResponse struct {
	Total            int    `json:"total"`
	Active           int    `json:"active"`
	Terminated       int    `json:"terminated"`
	WsBanned         int    `json:"wsBanned"`
	UpcomingRenewals int    `json:"upcomingRenewals"`
	MonthlyCost      string `json:"monthlyCost"`
}

type HealthResponse struct {
	Status string `json:"status"`
	TopUps int    `json:"topUps"`
}

type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func withDefault(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func parseDate(s string) *time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}
