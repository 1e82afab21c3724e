package billing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

var (
	oneHundred = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// TaxedLine is a resolved line with its regime-appropriate tax split applied.
// Intra-state: CGST == SGST == taxable * rate / 200. Inter-state: IGST ==
// taxable * rate / 100. The unused components stay zero.
type TaxedLine struct {
	ResolvedLine
	CGSTAmount decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTAmount decimal.Decimal
	LineTotal  decimal.Decimal
}

// HSNSummaryEntry aggregates all lines sharing one HSN code.
type HSNSummaryEntry struct {
	HSNCode       string
	TaxableAmount decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	Total         decimal.Decimal
}

// Totals are the invoice-wide sums.
type Totals struct {
	Taxable decimal.Decimal
	Tax     decimal.Decimal
	Grand   decimal.Decimal
}

// Computation is the full output of the tax engine.
type Computation struct {
	Regime     string
	Lines      []TaxedLine
	HSNSummary []HSNSummaryEntry
	Totals     Totals
}

// SameState compares two free-text state names the way the jurisdiction check
// needs: case-insensitive with whitespace normalized. No canonical state list
// is applied, so "Gujarat" vs "GJ" counts as different states.
func SameState(a, b string) bool {
	return strings.EqualFold(normalizeState(a), normalizeState(b))
}

func normalizeState(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ComputeTax applies the GST split to every resolved line and aggregates by
// HSN code. The regime is decided once from seller vs buyer state and applied
// uniformly. Total function: valid resolved lines can never fail here.
// All arithmetic is exact; callers round to two decimals at presentation.
func ComputeTax(lines []ResolvedLine, sellerState, buyerState string) Computation {
	regime := entity.RegimeInterState
	if SameState(sellerState, buyerState) {
		regime = entity.RegimeIntraState
	}

	taxed := make([]TaxedLine, 0, len(lines))
	groups := make(map[string]*HSNSummaryEntry)
	var totals Totals

	for _, line := range lines {
		tl := TaxedLine{ResolvedLine: line}
		if regime == entity.RegimeIntraState {
			half := line.TaxableAmount.Mul(line.TaxRate).Div(twoHundred)
			tl.CGSTAmount = half
			tl.SGSTAmount = half
		} else {
			tl.IGSTAmount = line.TaxableAmount.Mul(line.TaxRate).Div(oneHundred)
		}
		lineTax := tl.CGSTAmount.Add(tl.SGSTAmount).Add(tl.IGSTAmount)
		tl.LineTotal = line.TaxableAmount.Add(lineTax)
		taxed = append(taxed, tl)

		g, ok := groups[line.HSNCode]
		if !ok {
			g = &HSNSummaryEntry{HSNCode: line.HSNCode}
			groups[line.HSNCode] = g
		}
		g.TaxableAmount = g.TaxableAmount.Add(line.TaxableAmount)
		g.CGSTAmount = g.CGSTAmount.Add(tl.CGSTAmount)
		g.SGSTAmount = g.SGSTAmount.Add(tl.SGSTAmount)
		g.IGSTAmount = g.IGSTAmount.Add(tl.IGSTAmount)
		g.Total = g.Total.Add(tl.LineTotal)

		totals.Taxable = totals.Taxable.Add(line.TaxableAmount)
		totals.Tax = totals.Tax.Add(lineTax)
		totals.Grand = totals.Grand.Add(tl.LineTotal)
	}

	summary := make([]HSNSummaryEntry, 0, len(groups))
	for _, g := range groups {
		summary = append(summary, *g)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].HSNCode < summary[j].HSNCode })

	return Computation{
		Regime:     regime,
		Lines:      taxed,
		HSNSummary: summary,
		Totals:     totals,
	}
}

// CGSTTotal sums the CGST component across all lines (zero for inter-state).
func (c Computation) CGSTTotal() decimal.Decimal {
	var sum decimal.Decimal
	for _, l := range c.Lines {
		sum = sum.Add(l.CGSTAmount)
	}
	return sum
}

// SGSTTotal sums the SGST component across all lines (zero for inter-state).
func (c Computation) SGSTTotal() decimal.Decimal {
	var sum decimal.Decimal
	for _, l := range c.Lines {
		sum = sum.Add(l.SGSTAmount)
	}
	return sum
}

// IGSTTotal sums the IGST component across all lines (zero for intra-state).
func (c Computation) IGSTTotal() decimal.Decimal {
	var sum decimal.Decimal
	for _, l := range c.Lines {
		sum = sum.Add(l.IGSTAmount)
	}
	return sum
}
