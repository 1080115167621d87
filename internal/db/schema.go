package db

import "time"

type DeviceRecord struct {
	ID             string    `db:"id"`
	Owner          string    `db:"owner"`
	Phone          string    `db:"phone"`
	Company        string    `db:"company"`
	SlaveID        string    `db:"slave_id"`
	DeviceID       string    `db:"device_id"`
	TotalDatabased int       `db:"total_databased"`
	Product        string    `db:"product"`
	Status         string    `db:"status"`
	Notes          *string   `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type PhoneTopUp struct {
	ID          string     `db:"id"`
	PhoneNumber string     `db:"phone_number"`
	SimCardID   *int       `db:"sim_card_id"`
	Name        *string    `db:"name"`
	Status      string     `db:"status"`
	WsStatus    *string    `db:"ws_status"`
	TopUpAmount string     `db:"top_up_amount"`
	TopUpDate   *time.Time `db:"top_up_date"`
	RenewalDate *time.Time `db:"renewal_date"`
	Price       string     `db:"price"`
	Notes       *string    `db:"notes"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// TopUpFilter narrows ListTopUps. Empty fields and the value "All" match everything.
type TopUpFilter struct {
	Status   string
	WsStatus string
	Search   string
}

type DeviceStats struct {
	Total        int
	Paired       int
	Banned       int
	ProductCount map[string]int
	OwnerCount   map[string]int
	Recent       []DeviceRecord
}

type TopUpStats struct {
	Total            int
	Active           int
	Terminated       int
	WsBanned         int
	UpcomingRenewals int
	MonthlyCost      string
}
