package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackHSNCode is used when a product carries no HSN code.
// 9999 is the "unclassified" chapter accepted in GST filings.
const FallbackHSNCode = "9999"

// Product represents a sellable item in the catalog.
// Stock is a single per-company figure; it only matters for invoice types
// that move inventory (sales_invoice decrements, purchase_invoice increments).
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Price       decimal.Decimal // unit sale price, non-negative
	TaxRate     decimal.Decimal // GST percentage: 0, 5, 12, 18, 28
	HSNCode     string          // tariff code; empty means FallbackHSNCode
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
