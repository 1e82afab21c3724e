// Package tally renders invoices as Tally-importable XML vouchers
// (ENVELOPE / TALLYMESSAGE format understood by Tally's Import Data screen).
package tally

import (
	"fmt"

	"github.com/beevik/etree"

	appbilling "github.com/vyapar-labs/gstbill-api/internal/application/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

// Voucher types per invoice type, matching Tally's built-in voucher names.
var voucherTypes = map[string]string{
	entity.TypeQuotation:       "Quotation",
	entity.TypeSalesOrder:      "Sales Order",
	entity.TypeSalesInvoice:    "Sales",
	entity.TypePurchaseInvoice: "Purchase",
}

var _ appbilling.TallyExporter = (*XMLExporter)(nil)

// XMLExporter implements billing.TallyExporter using etree.
type XMLExporter struct{}

// NewXMLExporter builds the exporter.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportVoucher renders one invoice as an import envelope.
func (e *XMLExporter) ExportVoucher(
	invoice *entity.Invoice,
	lines []*entity.InvoiceLine,
	company *entity.Company,
	customer *entity.Customer,
) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	envelope := doc.CreateElement("ENVELOPE")

	header := envelope.CreateElement("HEADER")
	header.CreateElement("TALLYREQUEST").SetText("Import Data")

	body := envelope.CreateElement("BODY")
	importData := body.CreateElement("IMPORTDATA")

	reqDesc := importData.CreateElement("REQUESTDESC")
	reqDesc.CreateElement("REPORTNAME").SetText("Vouchers")
	staticVars := reqDesc.CreateElement("STATICVARIABLES")
	staticVars.CreateElement("SVCURRENTCOMPANY").SetText(company.Name)

	reqData := importData.CreateElement("REQUESTDATA")
	msg := reqData.CreateElement("TALLYMESSAGE")
	msg.CreateAttr("xmlns:UDF", "TallyUDF")

	voucher := msg.CreateElement("VOUCHER")
	voucher.CreateAttr("VCHTYPE", voucherTypes[invoice.Type])
	voucher.CreateAttr("ACTION", "Create")
	voucher.CreateElement("DATE").SetText(invoice.Date.Format("20060102"))
	voucher.CreateElement("VOUCHERTYPENAME").SetText(voucherTypes[invoice.Type])
	voucher.CreateElement("VOUCHERNUMBER").SetText(invoice.ID)
	voucher.CreateElement("PARTYLEDGERNAME").SetText(customer.Name)
	if customer.GSTIN != "" {
		voucher.CreateElement("PARTYGSTIN").SetText(customer.GSTIN)
	}
	voucher.CreateElement("STATENAME").SetText(customer.State)

	// Party ledger entry: the buyer is debited the grand total. Tally's sign
	// convention marks debits negative.
	party := voucher.CreateElement("ALLLEDGERENTRIES.LIST")
	party.CreateElement("LEDGERNAME").SetText(customer.Name)
	party.CreateElement("ISDEEMEDPOSITIVE").SetText("Yes")
	party.CreateElement("AMOUNT").SetText("-" + invoice.GrandTotal.StringFixed(2))

	// One inventory entry per line.
	for _, l := range lines {
		item := voucher.CreateElement("ALLINVENTORYENTRIES.LIST")
		item.CreateElement("STOCKITEMNAME").SetText(l.ProductName)
		item.CreateElement("ISDEEMEDPOSITIVE").SetText("No")
		item.CreateElement("RATE").SetText(l.UnitPrice.StringFixed(2))
		item.CreateElement("AMOUNT").SetText(l.TaxableAmount.StringFixed(2))
		item.CreateElement("ACTUALQTY").SetText(fmt.Sprintf("%d", l.Quantity))
		item.CreateElement("BILLEDQTY").SetText(fmt.Sprintf("%d", l.Quantity))
		if l.HSNCode != "" {
			item.CreateElement("GSTHSNCODE").SetText(l.HSNCode)
		}
	}

	// Tax ledgers follow the invoice regime.
	if invoice.Regime == entity.RegimeIntraState {
		addTaxLedger(voucher, "CGST", invoice.CGSTTotal.StringFixed(2))
		addTaxLedger(voucher, "SGST", invoice.SGSTTotal.StringFixed(2))
	} else {
		addTaxLedger(voucher, "IGST", invoice.IGSTTotal.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("tally: serialize voucher: %w", err)
	}
	return out, nil
}

func addTaxLedger(voucher *etree.Element, name, amount string) {
	entry := voucher.CreateElement("ALLLEDGERENTRIES.LIST")
	entry.CreateElement("LEDGERNAME").SetText(name)
	entry.CreateElement("ISDEEMEDPOSITIVE").SetText("No")
	entry.CreateElement("AMOUNT").SetText(amount)
}
