// Package pdf renders the printable GST invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + GSTIN  │  Document title + Date      │
//	│  ───────────────────────────────────────────────────────── │
//	│  SELLER: Address / Phone / Email                            │
//	│  BUYER: Name + GSTIN + address                              │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Qty | Item | HSN | Rate | Tax% | Amount             │
//	│  HSN SUMMARY: per-code taxable and tax                      │
//	│  TOTALS: Taxable / CGST+SGST or IGST / GRAND TOTAL          │
//	│  Amount in words                                            │
//	│  FOOTER: Bank details + Terms                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/vyapar-labs/gstbill-api/internal/application/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Printable document titles per invoice type.
var docTitles = map[string]string{
	entity.TypeQuotation:       "QUOTATION",
	entity.TypeSalesOrder:      "SALES ORDER",
	entity.TypeSalesInvoice:    "TAX INVOICE",
	entity.TypePurchaseInvoice: "PURCHASE INVOICE",
}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the document and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	lines []*entity.InvoiceLine,
	company *entity.Company,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTitles[invoice.Type], true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(company))
	m.AddRows(buyerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(invoice.Regime))
	for _, r := range tableLineRows(invoice.Regime, lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range hsnSummaryRows(invoice.Regime, lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(wordsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(company) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name + GSTIN (left), document title + date (right).
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	date := invoice.Date.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(company.GSTIN, "Unregistered"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docTitles[invoice.Type], props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("No: "+invoice.ID, props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sellerRow: seller contact line.
func sellerRow(company *entity.Company) core.Row {
	addr := strings.TrimSpace(strings.Join(nonEmptyParts(company.Address, company.City, company.State, company.Pincode), ", "))
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SELLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Phone: %s   |   Email: %s",
				nonEmpty(addr, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// buyerRow: buyer block.
func buyerRow(customer *entity.Customer) core.Row {
	addr := strings.TrimSpace(strings.Join(nonEmptyParts(customer.Address, customer.City, customer.State, customer.Pincode), ", "))
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   %s",
				nonEmpty(customer.GSTIN, "Unregistered"),
				nonEmpty(addr, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: item table header; tax columns follow the invoice regime.
func tableHeaderRow(regime string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	taxLabel := "CGST+SGST"
	if regime == entity.RegimeInterState {
		taxLabel = "IGST"
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 4, align.Left),
		h("HSN", 1, align.Center),
		h("Rate", 2, align.Right),
		h(taxLabel, 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableLineRows: one row per invoice line.
func tableLineRows(regime string, lines []*entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		tax := l.IGSTAmount
		if regime == entity.RegimeIntraState {
			tax = l.CGSTAmount.Add(l.SGSTAmount)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.HSNCode,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatINR(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatINR(tax),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatINR(l.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// hsnSummaryRows: per-HSN taxable and tax totals, rebuilt from the lines
// (the summary is derived data, never stored).
func hsnSummaryRows(regime string, lines []*entity.InvoiceLine) []core.Row {
	type hsnGroup struct {
		taxable decimal.Decimal
		tax     decimal.Decimal
		total   decimal.Decimal
	}
	groups := make(map[string]*hsnGroup)
	codes := make([]string, 0)
	for _, l := range lines {
		g, ok := groups[l.HSNCode]
		if !ok {
			g = &hsnGroup{}
			groups[l.HSNCode] = g
			codes = append(codes, l.HSNCode)
		}
		g.taxable = g.taxable.Add(l.TaxableAmount)
		g.tax = g.tax.Add(l.CGSTAmount).Add(l.SGSTAmount).Add(l.IGSTAmount)
		g.total = g.total.Add(l.LineTotal)
	}
	sort.Strings(codes)

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("HSN SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, code := range codes {
		g := groups[code]
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(code, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New("Taxable: ₹"+formatINR(g.taxable), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("Tax: ₹"+formatINR(g.tax), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("Total: ₹"+formatINR(g.total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalsRow: totals block; CGST/SGST rows intra-state, IGST row inter-state.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Taxable Value:")}
	values := []core.Component{value("₹" + formatINR(invoice.TaxableTotal))}
	if invoice.Regime == entity.RegimeIntraState {
		labels = append(labels, label("CGST:"), label("SGST:"))
		values = append(values, value("₹"+formatINR(invoice.CGSTTotal)), value("₹"+formatINR(invoice.SGSTTotal)))
	} else {
		labels = append(labels, label("IGST:"))
		values = append(values, value("₹"+formatINR(invoice.IGSTTotal)))
	}
	labels = append(labels, grandLabel("GRAND TOTAL:"))
	values = append(values, grandValue("₹"+formatINR(invoice.GrandTotal)))

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// wordsRow: grand total spelled out.
func wordsRow(invoice *entity.Invoice) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(billing.AmountInWords(invoice.GrandTotal), props.Text{
			Style: fontstyle.Italic, Size: 8, Top: 2, Color: colorGray,
		}),
	))
}

// footerRows: bank details and terms.
func footerRows(company *entity.Company) []core.Row {
	var rows []core.Row
	if company.BankName != "" || company.BankAccount != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("BANK DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   A/C: %s   |   IFSC: %s",
				nonEmpty(company.BankName, "—"),
				nonEmpty(company.BankAccount, "—"),
				nonEmpty(company.BankIFSC, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	if company.Terms != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("TERMS & CONDITIONS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(company.Terms, props.Text{Size: 7, Top: 6, Color: colorGray}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonEmptyParts(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatINR renders a decimal with Indian digit grouping.
// Ex: 123456.5 → "1,23,456.50"
func formatINR(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	// Last three digits group together; the rest in pairs.
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
