package entity

import "time"

// Company represents the seller profile printed on invoices.
// State decides the seller-side GST jurisdiction.
type Company struct {
	ID          string
	Name        string
	Address     string
	City        string
	State       string
	Pincode     string
	Country     string
	GSTIN       string
	Phone       string
	Email       string
	BankName    string
	BankAccount string
	BankIFSC    string
	Terms       string // free text printed on the invoice footer
	LogoPath    string
	SignPath    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
