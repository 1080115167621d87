package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const topUpColumns = `
	id,
	phone_number,
	sim_card_id,
	name,
	status,
	ws_status,
	top_up_amount,
	top_up_date,
	renewal_date,
	price,
	notes,
	created_at,
	updated_at`

// CostPerActiveSIM is the monthly top-up charged for every active line.
var CostPerActiveSIM = decimal.RequireFromString("5.00")

func (db *DB) CreateTopUp(ctx context.Context, rec PhoneTopUp) (PhoneTopUp, error) {
	const fn = "DB:CreateTopUp"
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	var out PhoneTopUp
	err := pgxscan.Get(ctx, db.pool, &out, `
		INSERT INTO phone_topups (
			id,
			phone_number,
			sim_card_id,
			name,
			status,
			ws_status,
			top_up_amount,
			top_up_date,
			renewal_date,
			price,
			notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+topUpColumns,
		rec.ID, rec.PhoneNumber, rec.SimCardID, rec.Name, rec.Status, rec.WsStatus,
		rec.TopUpAmount, rec.TopUpDate, rec.RenewalDate, rec.Price, rec.Notes)
	if err != nil {
		return PhoneTopUp{}, wrap(fn, ErrInsertFailed, err)
	}
	return out, nil
}

func (db *DB) GetTopUp(ctx context.Context, id string) (PhoneTopUp, error) {
	const fn = "DB:GetTopUp"
	var out PhoneTopUp
	err := pgxscan.Get(ctx, db.pool, &out, `
		SELECT `+topUpColumns+`
		FROM phone_topups
		WHERE id = $1
	`, id)
	if err != nil {
		return PhoneTopUp{}, wrap(fn, ErrSelectFailed, err)
	}
	return out, nil
}

func (db *DB) GetTopUpByPhone(ctx context.Context, phoneNumber string) (PhoneTopUp, error) {
	const fn = "DB:GetTopUpByPhone"
	var out PhoneTopUp
	err := pgxscan.Get(ctx, db.pool, &out, `
		SELECT `+topUpColumns+`
		FROM phone_topups
		WHERE phone_number = $1
	`, phoneNumber)
	if err != nil {
		return PhoneTopUp{}, wrap(fn, ErrSelectFailed, err)
	}
	return out, nil
}

// likeEscaper makes search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListTopUps returns the filtered records ordered by renewal date, soonest first.
func (db *DB) ListTopUps(ctx context.Context, filter TopUpFilter) ([]PhoneTopUp, error) {
	const fn = "DB:ListTopUps"
	var (
		where []string
		args  []any
	)
	if filter.Status != "" && filter.Status != "All" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.WsStatus != "" && filter.WsStatus != "All" {
		args = append(args, filter.WsStatus)
		where = append(where, fmt.Sprintf("ws_status = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		where = append(where, fmt.Sprintf(`(phone_number ILIKE $%d ESCAPE '\' OR name ILIKE $%d ESCAPE '\')`, len(args), len(args)))
	}

	query := `SELECT ` + topUpColumns + ` FROM phone_topups`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY renewal_date ASC NULLS LAST, phone_number`

	records := []PhoneTopUp{}
	if err := pgxscan.Select(ctx, db.pool, &records, query, args...); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return records, nil
}

// UpdateTopUp overwrites every mutable field of the record with the given id.
func (db *DB) UpdateTopUp(ctx context.Context, id string, rec PhoneTopUp) (PhoneTopUp, error) {
	const fn = "DB:UpdateTopUp"
	var out PhoneTopUp
	err := pgxscan.Get(ctx, db.pool, &out, `
		UPDATE phone_topups SET
			phone_number = $2,
			sim_card_id = $3,
			name = $4,
			status = $5,
			ws_status = $6,
			top_up_amount = $7,
			top_up_date = $8,
			renewal_date = $9,
			price = $10,
			notes = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING `+topUpColumns,
		id, rec.PhoneNumber, rec.SimCardID, rec.Name, rec.Status, rec.WsStatus,
		rec.TopUpAmount, rec.TopUpDate, rec.RenewalDate, rec.Price, rec.Notes)
	if err != nil {
		return PhoneTopUp{}, wrap(fn, ErrUpdateFailed, err)
	}
	return out, nil
}

// UpdateTopUpByPhone overwrites every mutable field of the record keyed by phoneNumber.
func (db *DB) UpdateTopUpByPhone(ctx context.Context, phoneNumber string, rec PhoneTopUp) (PhoneTopUp, error) {
	const fn = "DB:UpdateTopUpByPhone"
	var out PhoneTopUp
	err := pgxscan.Get(ctx, db.pool, &out, `
		UPDATE phone_topups SET
			sim_card_id = $2,
			name = $3,
			status = $4,
			ws_status = $5,
			top_up_amount = $6,
			top_up_date = $7,
			renewal_date = $8,
			price = $9,
			notes = $10,
			updated_at = now()
		WHERE phone_number = $1
		RETURNING `+topUpColumns,
		phoneNumber, rec.SimCardID, rec.Name, rec.Status, rec.WsStatus,
		rec.TopUpAmount, rec.TopUpDate, rec.RenewalDate, rec.Price, rec.Notes)
	if err != nil {
		return PhoneTopUp{}, wrap(fn, ErrUpdateFailed, err)
	}
	return out, nil
}

func (db *DB) DeleteTopUp(ctx context.Context, id string) error {
	const fn = "DB:DeleteTopUp"
	tag, err := db.pool.Exec(ctx, `DELETE FROM phone_topups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

// CountTopUps doubles as the connection check behind /health.
func (db *DB) CountTopUps(ctx context.Context) (int, error) {
	const fn = "DB:CountTopUps"
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM phone_topups`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return count, nil
}

// TopUpStats summarises the SIM inventory. Upcoming renewals fall within
// seven days of now, inclusive.
func (db *DB) TopUpStats(ctx context.Context, now time.Time) (TopUpStats, error) {
	const fn = "DB:TopUpStats"
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	var counts struct {
		Total            int `db:"total"`
		Active           int `db:"active"`
		Terminated       int `db:"terminated"`
		WsBanned         int `db:"ws_banned"`
		UpcomingRenewals int `db:"upcoming_renewals"`
	}
	err := pgxscan.Get(ctx, db.pool, &counts, `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Active') AS active,
			COUNT(*) FILTER (WHERE status LIKE '%Terminated%') AS terminated,
			COUNT(*) FILTER (WHERE ws_status IN ('Banned', 'Permanent Banned')) AS ws_banned,
			COUNT(*) FILTER (WHERE renewal_date >= $1::date AND renewal_date <= $2::date) AS upcoming_renewals
		FROM phone_topups
	`, from, to)
	if err != nil {
		return TopUpStats{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}

	return TopUpStats{
		Total:            counts.Total,
		Active:           counts.Active,
		Terminated:       counts.Terminated,
		WsBanned:         counts.WsBanned,
		UpcomingRenewals: counts.UpcomingRenewals,
		MonthlyCost:      MonthlyCost(counts.Active),
	}, nil
}

// MonthlyCost renders active × CostPerActiveSIM as e.g. "RM15.00".
func MonthlyCost(active int) string {
	return "RM" + CostPerActiveSIM.Mul(decimal.NewFromInt(int64(active))).StringFixed(2)
}
