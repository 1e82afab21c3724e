package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

// resolvedLine builds a ResolvedLine the way the resolver would.
func resolvedLine(hsn string, qty int64, price, rate int64) billing.ResolvedLine {
	p := decimal.NewFromInt(price)
	return billing.ResolvedLine{
		ProductID:     "p-" + hsn,
		ProductName:   "Product " + hsn,
		HSNCode:       hsn,
		Quantity:      qty,
		UnitPrice:     p,
		TaxRate:       decimal.NewFromInt(rate),
		TaxableAmount: p.Mul(decimal.NewFromInt(qty)),
	}
}

// Scenario A: seller Gujarat, buyer Gujarat, one line (price 1000, qty 2,
// rate 18%) -> taxable 2000, cgst 180, sgst 180, grand total 2360.
func TestComputeTax_IntraState(t *testing.T) {
	c := billing.ComputeTax(
		[]billing.ResolvedLine{resolvedLine("9405", 2, 1000, 18)},
		"Gujarat", "Gujarat",
	)

	assert.Equal(t, entity.RegimeIntraState, c.Regime)
	require.Len(t, c.Lines, 1)
	line := c.Lines[0]
	assert.True(t, line.TaxableAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, line.CGSTAmount.Equal(decimal.NewFromInt(180)))
	assert.True(t, line.SGSTAmount.Equal(decimal.NewFromInt(180)))
	assert.True(t, line.IGSTAmount.IsZero())
	assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(2360)))
	assert.True(t, c.Totals.Grand.Equal(decimal.NewFromInt(2360)))
}

// Scenario B: same line, buyer in Maharashtra -> igst 360, grand total 2360.
func TestComputeTax_InterState(t *testing.T) {
	c := billing.ComputeTax(
		[]billing.ResolvedLine{resolvedLine("9405", 2, 1000, 18)},
		"Gujarat", "Maharashtra",
	)

	assert.Equal(t, entity.RegimeInterState, c.Regime)
	line := c.Lines[0]
	assert.True(t, line.CGSTAmount.IsZero())
	assert.True(t, line.SGSTAmount.IsZero())
	assert.True(t, line.IGSTAmount.Equal(decimal.NewFromInt(360)))
	assert.True(t, c.Totals.Grand.Equal(decimal.NewFromInt(2360)))
}

func TestComputeTax_StateComparisonNormalized(t *testing.T) {
	// Case and surrounding/internal whitespace do not flip the regime.
	c := billing.ComputeTax(
		[]billing.ResolvedLine{resolvedLine("9405", 1, 100, 18)},
		"  gujarat ", "GUJARAT",
	)
	assert.Equal(t, entity.RegimeIntraState, c.Regime)

	c = billing.ComputeTax(
		[]billing.ResolvedLine{resolvedLine("9405", 1, 100, 18)},
		"Tamil  Nadu", "tamil nadu",
	)
	assert.Equal(t, entity.RegimeIntraState, c.Regime)
}

func TestComputeTax_CGSTEqualsSGSTEverywhere(t *testing.T) {
	lines := []billing.ResolvedLine{
		resolvedLine("9608", 3, 10, 12),
		resolvedLine("9405", 2, 1000, 18),
		resolvedLine("9608", 7, 25, 12),
	}
	c := billing.ComputeTax(lines, "Kerala", "Kerala")

	for _, l := range c.Lines {
		assert.True(t, l.CGSTAmount.Equal(l.SGSTAmount))
	}
	for _, g := range c.HSNSummary {
		assert.True(t, g.CGSTAmount.Equal(g.SGSTAmount))
	}
}

func TestComputeTax_HSNAggregation(t *testing.T) {
	lines := []billing.ResolvedLine{
		resolvedLine("9608", 3, 10, 12),   // taxable 30
		resolvedLine("9405", 2, 1000, 18), // taxable 2000
		resolvedLine("9608", 7, 25, 12),   // taxable 175
	}
	c := billing.ComputeTax(lines, "Gujarat", "Maharashtra")

	require.Len(t, c.HSNSummary, 2)
	// summary is sorted by HSN code
	assert.Equal(t, "9405", c.HSNSummary[0].HSNCode)
	assert.Equal(t, "9608", c.HSNSummary[1].HSNCode)

	pens := c.HSNSummary[1]
	assert.True(t, pens.TaxableAmount.Equal(decimal.NewFromInt(205)))
	// igst = 205 * 12 / 100 = 24.6
	assert.True(t, pens.IGSTAmount.Equal(decimal.NewFromFloat(24.6)))

	// sum of HSN entry totals equals the invoice grand total
	var sum decimal.Decimal
	for _, g := range c.HSNSummary {
		sum = sum.Add(g.Total)
	}
	assert.True(t, sum.Equal(c.Totals.Grand))
}

func TestComputeTax_TotalsConsistent(t *testing.T) {
	lines := []billing.ResolvedLine{
		resolvedLine("9608", 3, 10, 12),
		resolvedLine("9405", 2, 1000, 18),
	}
	for _, buyer := range []string{"Gujarat", "Maharashtra"} {
		c := billing.ComputeTax(lines, "Gujarat", buyer)
		assert.True(t, c.Totals.Grand.Equal(c.Totals.Taxable.Add(c.Totals.Tax)), buyer)
		tax := c.CGSTTotal().Add(c.SGSTTotal()).Add(c.IGSTTotal())
		assert.True(t, tax.Equal(c.Totals.Tax), buyer)
	}
}

// Re-running the computation on the same input yields identical totals.
func TestComputeTax_Idempotent(t *testing.T) {
	lines := []billing.ResolvedLine{
		resolvedLine("9608", 3, 10, 12),
		resolvedLine("9405", 2, 1000, 18),
	}
	a := billing.ComputeTax(lines, "Gujarat", "Maharashtra")
	b := billing.ComputeTax(lines, "Gujarat", "Maharashtra")

	assert.True(t, a.Totals.Grand.Equal(b.Totals.Grand))
	assert.True(t, a.Totals.Tax.Equal(b.Totals.Tax))
	assert.True(t, a.Totals.Taxable.Equal(b.Totals.Taxable))
	require.Equal(t, len(a.HSNSummary), len(b.HSNSummary))
	for i := range a.HSNSummary {
		assert.True(t, a.HSNSummary[i].Total.Equal(b.HSNSummary[i].Total))
	}
}

func TestComputeTax_NoIntermediateRounding(t *testing.T) {
	// 3 * 33.33 at 18% inter-state: igst = 99.99 * 0.18 = 17.9982,
	// kept exact until presentation.
	p := decimal.NewFromFloat(33.33)
	line := billing.ResolvedLine{
		ProductID: "p", HSNCode: "9999", Quantity: 3,
		UnitPrice:     p,
		TaxRate:       decimal.NewFromInt(18),
		TaxableAmount: p.Mul(decimal.NewFromInt(3)),
	}
	c := billing.ComputeTax([]billing.ResolvedLine{line}, "Gujarat", "Maharashtra")
	assert.True(t, c.Lines[0].IGSTAmount.Equal(decimal.NewFromFloat(17.9982)))
	assert.Equal(t, "18.00", c.Lines[0].IGSTAmount.Round(2).StringFixed(2))
}
