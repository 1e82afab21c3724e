package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice types. Only sales_invoice moves stock out; purchase_invoice moves it in.
const (
	TypeQuotation       = "quotation"
	TypeSalesOrder      = "sales_order"
	TypeSalesInvoice    = "sales_invoice"
	TypePurchaseInvoice = "purchase_invoice"
)

// ValidInvoiceType reports whether t is one of the known invoice types.
func ValidInvoiceType(t string) bool {
	switch t {
	case TypeQuotation, TypeSalesOrder, TypeSalesInvoice, TypePurchaseInvoice:
		return true
	}
	return false
}

// Tax regimes. Decided once per invoice from seller vs buyer state.
const (
	RegimeIntraState = "intra_state" // CGST + SGST
	RegimeInterState = "inter_state" // IGST
)

// Invoice is the persisted header of a computed invoice.
// Immutable after creation except TotalReceived/TotalPending, which change
// only through the payment-update path.
type Invoice struct {
	ID           string
	CompanyID    string
	CustomerID   string
	CustomerName string
	Type         string
	Regime       string
	TaxableTotal decimal.Decimal
	CGSTTotal    decimal.Decimal
	SGSTTotal    decimal.Decimal
	IGSTTotal    decimal.Decimal
	GrandTotal   decimal.Decimal
	// Nil when no payment tracking applies (quotations, orders).
	TotalReceived *decimal.Decimal
	TotalPending  *decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaxTotal returns the total tax charged, whichever regime applies.
func (i *Invoice) TaxTotal() decimal.Decimal {
	return i.CGSTTotal.Add(i.SGSTTotal).Add(i.IGSTTotal)
}
