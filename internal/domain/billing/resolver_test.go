package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

func testCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID:      "p-pen",
			Name:    "Ball Pen",
			Price:   decimal.NewFromInt(10),
			TaxRate: decimal.NewFromInt(12),
			HSNCode: "9608",
			Stock:   100,
		},
		{
			ID:      "p-lamp",
			Name:    "Desk Lamp",
			Price:   decimal.NewFromInt(1000),
			TaxRate: decimal.NewFromInt(18),
			HSNCode: "9405",
			Stock:   3,
		},
		{
			ID:      "p-misc",
			Name:    "Misc Item",
			Price:   decimal.NewFromFloat(49.50),
			TaxRate: decimal.NewFromInt(5),
			HSNCode: "", // no HSN on record
			Stock:   10,
		},
	}
}

func TestResolveLines_OK(t *testing.T) {
	lines, err := billing.ResolveLines([]billing.DraftLine{
		{ProductID: "p-lamp", Quantity: decimal.NewFromInt(2)},
		{ProductID: "p-pen", Quantity: decimal.NewFromInt(5)},
	}, testCatalog(), entity.TypeQuotation)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Desk Lamp", lines[0].ProductName)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, "9405", lines[0].HSNCode)
	// taxable = unit price * quantity, exact
	assert.True(t, lines[0].TaxableAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, lines[1].TaxableAmount.Equal(decimal.NewFromInt(50)))
}

func TestResolveLines_FallbackHSN(t *testing.T) {
	lines, err := billing.ResolveLines([]billing.DraftLine{
		{ProductID: "p-misc", Quantity: decimal.NewFromInt(1)},
	}, testCatalog(), entity.TypeQuotation)
	require.NoError(t, err)
	// missing HSN is not an error: the fallback code is substituted
	assert.Equal(t, entity.FallbackHSNCode, lines[0].HSNCode)
}

func TestResolveLines_InvalidProduct(t *testing.T) {
	_, err := billing.ResolveLines([]billing.DraftLine{
		{ProductID: "p-pen", Quantity: decimal.NewFromInt(1)},
		{ProductID: "no-such-product", Quantity: decimal.NewFromInt(1)},
	}, testCatalog(), entity.TypeQuotation)
	require.Error(t, err)

	ve, ok := billing.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, billing.KindInvalidProduct, ve.Kind)
	assert.Equal(t, 1, ve.Index) // the offending line, not the first
}

func TestResolveLines_InvalidQuantity(t *testing.T) {
	cases := map[string]decimal.Decimal{
		"zero":       decimal.Zero,
		"negative":   decimal.NewFromInt(-3),
		"fractional": decimal.NewFromFloat(1.5),
	}
	for name, qty := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := billing.ResolveLines([]billing.DraftLine{
				{ProductID: "p-pen", Quantity: qty},
			}, testCatalog(), entity.TypeSalesInvoice)
			require.Error(t, err)
			assert.True(t, billing.IsKind(err, billing.KindInvalidQuantity))
		})
	}
}

// Scenario: a sales invoice asking for 5 units of a product with stock 3.
func TestResolveLines_InsufficientStock(t *testing.T) {
	_, err := billing.ResolveLines([]billing.DraftLine{
		{ProductID: "p-lamp", Quantity: decimal.NewFromInt(5)},
	}, testCatalog(), entity.TypeSalesInvoice)
	require.Error(t, err)

	ve, ok := billing.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, billing.KindInsufficientStock, ve.Kind)
	assert.Contains(t, ve.Message, "Desk Lamp")
	assert.Contains(t, ve.Message, "3 available")
}

// The stock check only binds sales invoices; quotations, orders and
// purchases may exceed the snapshot.
func TestResolveLines_StockCheckOnlyForSalesInvoice(t *testing.T) {
	for _, typ := range []string{entity.TypeQuotation, entity.TypeSalesOrder, entity.TypePurchaseInvoice} {
		lines, err := billing.ResolveLines([]billing.DraftLine{
			{ProductID: "p-lamp", Quantity: decimal.NewFromInt(50)},
		}, testCatalog(), typ)
		require.NoError(t, err, typ)
		assert.Equal(t, int64(50), lines[0].Quantity)
	}
}

func TestResolveLines_EmptyInvoice(t *testing.T) {
	_, err := billing.ResolveLines(nil, testCatalog(), entity.TypeSalesInvoice)
	require.Error(t, err)
	assert.True(t, billing.IsKind(err, billing.KindEmptyInvoice))
}
