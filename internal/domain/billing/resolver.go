package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

// DraftLine is a raw (product, quantity) pair as submitted by the caller.
// Quantity arrives as a decimal so non-integer input can be rejected here
// instead of being silently truncated at the transport boundary.
type DraftLine struct {
	ProductID string
	Quantity  decimal.Decimal
}

// ResolvedLine is a draft line priced against the catalog.
// TaxableAmount is exact (UnitPrice * Quantity, no rounding).
type ResolvedLine struct {
	ProductID     string
	ProductName   string
	HSNCode       string
	Quantity      int64
	UnitPrice     decimal.Decimal
	TaxRate       decimal.Decimal
	TaxableAmount decimal.Decimal
}

// ResolveLines resolves draft lines against the catalog snapshot.
// Pure function: stock is only read, never decremented — the persistence
// layer applies the decrement atomically after a successful resolve.
//
// Failures are *ValidationError values:
//   - KindInvalidProduct: productID not in the catalog
//   - KindInvalidQuantity: quantity not a positive integer
//   - KindInsufficientStock: sales_invoice quantity above the stock snapshot
//   - KindEmptyInvoice: no lines submitted
func ResolveLines(draft []DraftLine, catalog []*entity.Product, invoiceType string) ([]ResolvedLine, error) {
	if len(draft) == 0 {
		return nil, &ValidationError{
			Kind:    KindEmptyInvoice,
			Index:   -1,
			Field:   "items",
			Message: "at least one item is required",
		}
	}

	byID := make(map[string]*entity.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	resolved := make([]ResolvedLine, 0, len(draft))
	for i, line := range draft {
		product, ok := byID[line.ProductID]
		if !ok || line.ProductID == "" {
			return nil, &ValidationError{
				Kind:    KindInvalidProduct,
				Index:   i,
				Field:   "product",
				Message: "select a valid product",
			}
		}
		if !line.Quantity.IsInteger() || !line.Quantity.IsPositive() {
			return nil, &ValidationError{
				Kind:    KindInvalidQuantity,
				Index:   i,
				Field:   "quantity",
				Message: "quantity must be a positive integer",
			}
		}
		qty := line.Quantity.IntPart()
		if invoiceType == entity.TypeSalesInvoice && qty > product.Stock {
			return nil, &ValidationError{
				Kind:    KindInsufficientStock,
				Index:   i,
				Field:   "quantity",
				Message: fmt.Sprintf("insufficient stock for %s (%d available)", product.Name, product.Stock),
			}
		}

		hsn := product.HSNCode
		if hsn == "" {
			hsn = entity.FallbackHSNCode
		}
		resolved = append(resolved, ResolvedLine{
			ProductID:     product.ID,
			ProductName:   product.Name,
			HSNCode:       hsn,
			Quantity:      qty,
			UnitPrice:     product.Price,
			TaxRate:       product.TaxRate,
			TaxableAmount: product.Price.Mul(decimal.NewFromInt(qty)),
		})
	}
	return resolved, nil
}
