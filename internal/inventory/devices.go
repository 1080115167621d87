package inventory

import (
	"context"
	"errors"
	"strconv"

	"ops-dashboard/internal/db"
	"ops-dashboard/internal/reconcile"
	"ops-dashboard/internal/sheet"
)

const DevicesSource = "devices"

// Sheet column order for device records.
var DeviceHeader = []string{
	"Owner",
	"Phone",
	"Company",
	"Slave ID",
	"Device ID",
	"Total Databased",
	"Product",
	"Status",
	"Notes",
}

const (
	deviceOwnerCol = iota
	devicePhoneCol
	deviceCompanyCol
	deviceSlaveIDCol
	deviceDeviceIDCol
	deviceTotalCol
	deviceProductCol
	deviceStatusCol
	deviceNotesCol
)

const deviceMinColumns = 4

type DeviceMapper struct{}

func (DeviceMapper) FromRow(fields []string) (db.DeviceRecord, bool) {
	rec := db.DeviceRecord{
		Owner:    sheet.Field(fields, deviceOwnerCol),
		Phone:    sheet.Field(fields, devicePhoneCol),
		Company:  sheet.Field(fields, deviceCompanyCol),
		SlaveID:  sheet.Field(fields, deviceSlaveIDCol),
		DeviceID: sheet.Field(fields, deviceDeviceIDCol),
		Product:  sheet.Field(fields, deviceProductCol),
		Status:   sheet.Field(fields, deviceStatusCol),
		Notes:    optional(sheet.Field(fields, deviceNotesCol)),
	}
	if rec.SlaveID == "" || rec.Owner == "" {
		return db.DeviceRecord{}, false
	}
	if n, err := strconv.Atoi(sheet.Field(fields, deviceTotalCol)); err == nil {
		rec.TotalDatabased = n
	}
	return rec, true
}

func (DeviceMapper) Key(rec db.DeviceRecord) string {
	return rec.SlaveID
}

// DeviceRow renders a record in DeviceHeader order, the inverse of FromRow.
func DeviceRow(rec db.DeviceRecord) []string {
	return []string{
		rec.Owner,
		rec.Phone,
		rec.Company,
		rec.SlaveID,
		rec.DeviceID,
		strconv.Itoa(rec.TotalDatabased),
		rec.Product,
		rec.Status,
		deref(rec.Notes),
	}
}

type deviceRepository interface {
	GetDeviceBySlaveID(ctx context.Context, slaveID string) (db.DeviceRecord, error)
	CreateDevice(ctx context.Context, rec db.DeviceRecord) (db.DeviceRecord, error)
	UpdateDeviceBySlaveID(ctx context.Context, slaveID string, rec db.DeviceRecord) (db.DeviceRecord, error)
}

// DeviceStore exposes device records by slave ID.
type DeviceStore struct {
	repo deviceRepository
}

func NewDeviceStore(repo deviceRepository) *DeviceStore {
	return &DeviceStore{repo: repo}
}

func (s *DeviceStore) FindByKey(ctx context.Context, key string) (db.DeviceRecord, bool, error) {
	rec, err := s.repo.GetDeviceBySlaveID(ctx, key)
	if errors.Is(err, db.ErrNotFound) {
		return db.DeviceRecord{}, false, nil
	}
	if err != nil {
		return db.DeviceRecord{}, false, err
	}
	return rec, true, nil
}

func (s *DeviceStore) Create(ctx context.Context, rec db.DeviceRecord) error {
	_, err := s.repo.CreateDevice(ctx, rec)
	return err
}

func (s *DeviceStore) UpdateByKey(ctx context.Context, key string, rec db.DeviceRecord) error {
	_, err := s.repo.UpdateDeviceBySlaveID(ctx, key, rec)
	return err
}

// DeviceSheetTable is the layout of the device tracking sheet.
func DeviceSheetTable() sheet.Table {
	return sheet.Table{HeaderRows: 1, MinColumns: deviceMinColumns}
}

// DeviceExportTable is the layout written by the device export.
func DeviceExportTable() sheet.Table {
	return sheet.Table{HeaderRows: 1, MinColumns: deviceMinColumns}
}

func NewDeviceReconciler(table sheet.Table, opts Options, repo deviceRepository) *reconcile.Reconciler[db.DeviceRecord] {
	return reconcile.New[db.DeviceRecord](reconcile.Config{
		Name:             DevicesSource,
		Table:            table,
		KeyColumn:        deviceSlaveIDCol,
		Sentinels:        []string{reconcile.DefaultSentinel},
		BatchSize:        opts.BatchSize,
		MaxErrorMessages: opts.MaxErrorMessages,
	}, DeviceMapper{}, NewDeviceStore(repo))
}
