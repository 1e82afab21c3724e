package tally

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

func fixtureInvoice(regime string) (*entity.Invoice, []*entity.InvoiceLine, *entity.Company, *entity.Customer) {
	inv := &entity.Invoice{
		ID:           "inv-1",
		CompanyID:    "co-1",
		CustomerID:   "cus-1",
		CustomerName: "Mehta Traders",
		Type:         entity.TypeSalesInvoice,
		Regime:       regime,
		TaxableTotal: decimal.NewFromInt(2000),
		GrandTotal:   decimal.NewFromInt(2360),
		Date:         time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
	}
	if regime == entity.RegimeIntraState {
		inv.CGSTTotal = decimal.NewFromInt(180)
		inv.SGSTTotal = decimal.NewFromInt(180)
	} else {
		inv.IGSTTotal = decimal.NewFromInt(360)
	}
	lines := []*entity.InvoiceLine{
		{
			ID: "ln-1", InvoiceID: "inv-1", ProductID: "p-1",
			ProductName: "Desk Lamp", HSNCode: "9405", Quantity: 2,
			UnitPrice:     decimal.NewFromInt(1000),
			TaxRate:       decimal.NewFromInt(18),
			TaxableAmount: decimal.NewFromInt(2000),
			LineTotal:     decimal.NewFromInt(2360),
		},
	}
	company := &entity.Company{ID: "co-1", Name: "Vyapar Traders", State: "Gujarat"}
	customer := &entity.Customer{ID: "cus-1", Name: "Mehta Traders", State: "Gujarat", GSTIN: "24ABCDE1234F1Z5"}
	return inv, lines, company, customer
}

func TestExportVoucher_IntraState(t *testing.T) {
	inv, lines, company, customer := fixtureInvoice(entity.RegimeIntraState)

	out, err := NewXMLExporter().ExportVoucher(inv, lines, company, customer)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	voucher := doc.FindElement("//VOUCHER")
	require.NotNil(t, voucher)
	assert.Equal(t, "Sales", voucher.SelectAttrValue("VCHTYPE", ""))
	assert.Equal(t, "20240715", voucher.SelectElement("DATE").Text())
	assert.Equal(t, "Mehta Traders", voucher.SelectElement("PARTYLEDGERNAME").Text())
	assert.Equal(t, "24ABCDE1234F1Z5", voucher.SelectElement("PARTYGSTIN").Text())

	item := voucher.SelectElement("ALLINVENTORYENTRIES.LIST")
	require.NotNil(t, item)
	assert.Equal(t, "Desk Lamp", item.SelectElement("STOCKITEMNAME").Text())
	assert.Equal(t, "9405", item.SelectElement("GSTHSNCODE").Text())
	assert.Equal(t, "2000.00", item.SelectElement("AMOUNT").Text())

	// Intra-state voucher carries CGST and SGST ledgers, never IGST.
	var ledgers []string
	for _, e := range voucher.SelectElements("ALLLEDGERENTRIES.LIST") {
		ledgers = append(ledgers, e.SelectElement("LEDGERNAME").Text())
	}
	assert.Contains(t, ledgers, "CGST")
	assert.Contains(t, ledgers, "SGST")
	assert.NotContains(t, ledgers, "IGST")
}

func TestExportVoucher_InterState(t *testing.T) {
	inv, lines, company, customer := fixtureInvoice(entity.RegimeInterState)

	out, err := NewXMLExporter().ExportVoucher(inv, lines, company, customer)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	voucher := doc.FindElement("//VOUCHER")
	require.NotNil(t, voucher)

	var ledgers []string
	var igstAmount string
	for _, e := range voucher.SelectElements("ALLLEDGERENTRIES.LIST") {
		name := e.SelectElement("LEDGERNAME").Text()
		ledgers = append(ledgers, name)
		if name == "IGST" {
			igstAmount = e.SelectElement("AMOUNT").Text()
		}
	}
	assert.Contains(t, ledgers, "IGST")
	assert.NotContains(t, ledgers, "CGST")
	assert.NotContains(t, ledgers, "SGST")
	assert.Equal(t, "360.00", igstAmount)
}

func TestExportVoucher_PartyDebitIsNegative(t *testing.T) {
	inv, lines, company, customer := fixtureInvoice(entity.RegimeIntraState)

	out, err := NewXMLExporter().ExportVoucher(inv, lines, company, customer)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	for _, e := range doc.FindElements("//ALLLEDGERENTRIES.LIST") {
		if e.SelectElement("LEDGERNAME").Text() == "Mehta Traders" {
			assert.Equal(t, "-2360.00", e.SelectElement("AMOUNT").Text())
			assert.Equal(t, "Yes", e.SelectElement("ISDEEMEDPOSITIVE").Text())
			return
		}
	}
	t.Fatal("party ledger entry not found")
}

func TestExportVoucher_UnregisteredCustomerOmitsGSTIN(t *testing.T) {
	inv, lines, company, customer := fixtureInvoice(entity.RegimeIntraState)
	customer.GSTIN = ""

	out, err := NewXMLExporter().ExportVoucher(inv, lines, company, customer)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Nil(t, doc.FindElement("//PARTYGSTIN"))
}
