package entity

import "github.com/shopspring/decimal"

// InvoiceLine is a persisted, fully priced invoice line.
// Exactly one of (CGST+SGST) or IGST is non-zero, matching the invoice regime.
type InvoiceLine struct {
	ID            string
	InvoiceID     string
	ProductID     string
	ProductName   string
	HSNCode       string
	Quantity      int64
	UnitPrice     decimal.Decimal
	TaxRate       decimal.Decimal
	TaxableAmount decimal.Decimal // UnitPrice * Quantity
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	LineTotal     decimal.Decimal // taxable + tax
}
