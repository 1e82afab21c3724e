package entity

import "time"

// Customer represents a buyer. State decides the buyer-side GST jurisdiction.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	City      string
	State     string
	Pincode   string
	GSTIN     string // optional; unregistered customers have none
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
