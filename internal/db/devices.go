package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
)

const deviceColumns = `
	id,
	owner,
	phone,
	company,
	slave_id,
	device_id,
	total_databased,
	product,
	status,
	notes,
	created_at,
	updated_at`

func (db *DB) CreateDevice(ctx context.Context, rec DeviceRecord) (DeviceRecord, error) {
	const fn = "DB:CreateDevice"
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	var out DeviceRecord
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO device_records (
			id,
			owner,
			phone,
			company,
			slave_id,
			device_id,
			total_databased,
			product,
			status,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+deviceColumns,
		rec.ID, rec.Owner, rec.Phone, rec.Company, rec.SlaveID,
		rec.DeviceID, rec.TotalDatabased, rec.Product, rec.Status, rec.Notes)
	if err != nil {
		return DeviceRecord{}, wrap(fn, ErrInsertFailed, err)
	}
	return out, nil
}

func (db *DB) GetDevice(ctx context.Context, id string) (DeviceRecord, error) {
	const fn = "DB:GetDevice"
	var out DeviceRecord
	err := pgxscan.Get(ctx, db.pool, &out, `
		SELECT `+deviceColumns+`
		FROM device_records
		WHERE id = $1
	`, id)
	if err != nil {
		return DeviceRecord{}, wrap(fn, ErrSelectFailed, err)
	}
	return out, nil
}

func (db *DB) GetDeviceBySlaveID(ctx context.Context, slaveID string) (DeviceRecord, error) {
	const fn = "DB:GetDeviceBySlaveID"
	var out DeviceRecord
	err := pgxscan.Get(ctx, db.pool, &out, `
		SELECT `+deviceColumns+`
		FROM device_records
		WHERE slave_id = $1
	`, slaveID)
	if err != nil {
		return DeviceRecord{}, wrap(fn, ErrSelectFailed, err)
	}
	return out, nil
}

// ListDevices returns every record, newest first.
func (db *DB) ListDevices(ctx context.Context) ([]DeviceRecord, error) {
	const fn = "DB:ListDevices"
	records := []DeviceRecord{}
	err := pgxscan.Select(ctx, db.pool, &records, `
		SELECT `+deviceColumns+`
		FROM device_records
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return records, nil
}

// UpdateDevice overwrites every mutable field of the record with the given id.
func (db *DB) UpdateDevice(ctx context.Context, id string, rec DeviceRecord) (DeviceRecord, error) {
	const fn = "DB:UpdateDevice"
	var out DeviceRecord
	err := pgxscan.Get(ctx, db.pool, &out, `
		UPDATE device_records SET
			owner = $2,
			phone = $3,
			company = $4,
			slave_id = $5,
			device_id = $6,
			total_databased = $7,
			product = $8,
			status = $9,
			notes = $10,
			updated_at = now()
		WHERE id = $1
		RETURNING `+deviceColumns,
		id, rec.Owner, rec.Phone, rec.Company, rec.SlaveID,
		rec.DeviceID, rec.TotalDatabased, rec.Product, rec.Status, rec.Notes)
	if err != nil {
		return DeviceRecord{}, wrap(fn, ErrUpdateFailed, err)
	}
	return out, nil
}

// UpdateDeviceBySlaveID overwrites every mutable field of the record keyed by slaveID.
func (db *DB) UpdateDeviceBySlaveID(ctx context.Context, slaveID string, rec DeviceRecord) (DeviceRecord, error) {
	const fn = "DB:UpdateDeviceBySlaveID"
	var out DeviceRecord
	err := pgxscan.Get(ctx, db.pool, &out, `
		UPDATE device_records SET
			owner = $2,
			phone = $3,
			company = $4,
			device_id = $5,
			total_databased = $6,
			product = $7,
			status = $8,
			notes = $9,
			updated_at = now()
		WHERE slave_id = $1
		RETURNING `+deviceColumns,
		slaveID, rec.Owner, rec.Phone, rec.Company,
		rec.DeviceID, rec.TotalDatabased, rec.Product, rec.Status, rec.Notes)
	if err != nil {
		return DeviceRecord{}, wrap(fn, ErrUpdateFailed, err)
	}
	return out, nil
}

func (db *DB) DeleteDevice(ctx context.Context, id string) error {
	const fn = "DB:DeleteDevice"
	tag, err := db.pool.Exec(ctx, `DELETE FROM device_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

type bucket struct {
	Name  string `db:"name"`
	Count int    `db:"count"`
}

func (db *DB) DeviceStats(ctx context.Context) (DeviceStats, error) {
	const fn = "DB:DeviceStats"
	var counts struct {
		Total  int `db:"total"`
		Paired int `db:"paired"`
		Banned int `db:"banned"`
	}
	err := pgxscan.Get(ctx, db.pool, &counts, `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'PAIRED') AS paired,
			COUNT(*) FILTER (WHERE status LIKE '%BAN%') AS banned
		FROM device_records
	`)
	if err != nil {
		return DeviceStats{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}

	stats := DeviceStats{
		Total:  counts.Total,
		Paired: counts.Paired,
		Banned: counts.Banned,
	}
	if stats.ProductCount, err = db.countBy(ctx, "product"); err != nil {
		return DeviceStats{}, fmt.Errorf("%s:%w", fn, err)
	}
	if stats.OwnerCount, err = db.countBy(ctx, "owner"); err != nil {
		return DeviceStats{}, fmt.Errorf("%s:%w", fn, err)
	}

	stats.Recent = []DeviceRecord{}
	err = pgxscan.Select(ctx, db.pool, &stats.Recent, `
		SELECT `+deviceColumns+`
		FROM device_records
		ORDER BY created_at DESC, id
		LIMIT 5
	`)
	if err != nil {
		return DeviceStats{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return stats, nil
}

// countBy groups device records by a fixed, trusted column name.
func (db *DB) countBy(ctx context.Context, column string) (map[string]int, error) {
	var buckets []bucket
	err := pgxscan.Select(ctx, db.pool, &buckets, `
		SELECT `+column+` AS name, COUNT(*) AS count
		FROM device_records
		GROUP BY `+column)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrSelectFailed, err)
	}
	out := make(map[string]int, len(buckets))
	for _, b := range buckets {
		out[b.Name] = b.Count
	}
	return out, nil
}
