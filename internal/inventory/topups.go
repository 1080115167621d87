package inventory

import (
	"context"
	"errors"
	"strconv"

	"ops-dashboard/internal/db"
	"ops-dashboard/internal/reconcile"
	"ops-dashboard/internal/sheet"
)

const TopUpsSource = "topups"

const (
	DefaultTopUpStatus = "Active"
	DefaultTopUpAmount = "RM5.00"
	DefaultTopUpPrice  = "RM 5.00"
)

// Sheet column order for phone top-ups.
var TopUpHeader = []string{
	"Phone Number",
	"SIM Card ID",
	"Name",
	"Status",
	"WS Status",
	"Top Up Amount",
	"Top Up Date",
	"Renewal Date",
	"Price",
	"Notes",
}

const (
	topUpPhoneCol = iota
	topUpSimCol
	topUpNameCol
	topUpStatusCol
	topUpWsStatusCol
	topUpAmountCol
	topUpDateCol
	topUpRenewalCol
	topUpPriceCol
	topUpNotesCol
)

const (
	topUpMinColumns = 10
	topUpHeaderRows = 4
)

// The SIM sheet ends its data with a totals block.
var topUpSentinels = []string{reconcile.DefaultSentinel, "Total Perlu Topup"}

type TopUpMapper struct{}

func (TopUpMapper) FromRow(fields []string) (db.PhoneTopUp, bool) {
	rec := db.PhoneTopUp{
		PhoneNumber: sheet.Field(fields, topUpPhoneCol),
		Name:        optional(sheet.Field(fields, topUpNameCol)),
		Status:      withDefault(sheet.Field(fields, topUpStatusCol), DefaultTopUpStatus),
		WsStatus:    optional(sheet.Field(fields, topUpWsStatusCol)),
		TopUpAmount: withDefault(sheet.Field(fields, topUpAmountCol), DefaultTopUpAmount),
		TopUpDate:   ParseSheetDate(sheet.Field(fields, topUpDateCol)),
		RenewalDate: ParseSheetDate(sheet.Field(fields, topUpRenewalCol)),
		Price:       withDefault(sheet.Field(fields, topUpPriceCol), DefaultTopUpPrice),
		Notes:       optional(sheet.Field(fields, topUpNotesCol)),
	}
	if rec.PhoneNumber == "" {
		return db.PhoneTopUp{}, false
	}
	if n, err := strconv.Atoi(sheet.Field(fields, topUpSimCol)); err == nil {
		rec.SimCardID = &n
	}
	return rec, true
}

func (TopUpMapper) Key(rec db.PhoneTopUp) string {
	return rec.PhoneNumber
}

// TopUpRow renders a record in TopUpHeader order, the inverse of FromRow.
func TopUpRow(rec db.PhoneTopUp) []string {
	sim := ""
	if rec.SimCardID != nil {
		sim = strconv.Itoa(*rec.SimCardID)
	}
	return []string{
		rec.PhoneNumber,
		sim,
		deref(rec.Name),
		rec.Status,
		deref(rec.WsStatus),
		rec.TopUpAmount,
		FormatSheetDate(rec.TopUpDate),
		FormatSheetDate(rec.RenewalDate),
		rec.Price,
		deref(rec.Notes),
	}
}

type topUpRepository interface {
	GetTopUpByPhone(ctx context.Context, phoneNumber string) (db.PhoneTopUp, error)
	CreateTopUp(ctx context.Context, rec db.PhoneTopUp) (db.PhoneTopUp, error)
	UpdateTopUpByPhone(ctx context.Context, phoneNumber string, rec db.PhoneTopUp) (db.PhoneTopUp, error)
}

// TopUpStore exposes phone top-ups by phone number.
type TopUpStore struct {
	repo topUpRepository
}

func NewTopUpStore(repo topUpRepository) *TopUpStore {
	return &TopUpStore{repo: repo}
}

func (s *TopUpStore) FindByKey(ctx context.Context, key string) (db.PhoneTopUp, bool, error) {
	rec, err := s.repo.GetTopUpByPhone(ctx, key)
	if errors.Is(err, db.ErrNotFound) {
		return db.PhoneTopUp{}, false, nil
	}
	if err != nil {
		return db.PhoneTopUp{}, false, err
	}
	return rec, true, nil
}

func (s *TopUpStore) Create(ctx context.Context, rec db.PhoneTopUp) error {
	_, err := s.repo.CreateTopUp(ctx, rec)
	return err
}

func (s *TopUpStore) UpdateByKey(ctx context.Context, key string, rec db.PhoneTopUp) error {
	_, err := s.repo.UpdateTopUpByPhone(ctx, key, rec)
	return err
}

// TopUpSheetTable is the layout of the SIM top-up sheet, which opens with a
// title block above the column header.
func TopUpSheetTable() sheet.Table {
	return sheet.Table{HeaderRows: topUpHeaderRows, MinColumns: topUpMinColumns}
}

// TopUpExportTable is the layout written by the top-up export.
func TopUpExportTable() sheet.Table {
	return sheet.Table{HeaderRows: 1, MinColumns: topUpMinColumns}
}

func NewTopUpReconciler(table sheet.Table, opts Options, repo topUpRepository) *reconcile.Reconciler[db.PhoneTopUp] {
	return reconcile.New[db.PhoneTopUp](reconcile.Config{
		Name:             TopUpsSource,
		Table:            table,
		KeyColumn:        topUpPhoneCol,
		Sentinels:        topUpSentinels,
		BatchSize:        opts.BatchSize,
		MaxErrorMessages: opts.MaxErrorMessages,
	}, TopUpMapper{}, NewTopUpStore(repo))
}
