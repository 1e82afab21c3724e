package dto

import (
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest one draft line of POST /api/invoices.
// Quantity is decimal so fractional input reaches the resolver and is
// rejected there instead of being truncated by JSON decoding.
type InvoiceItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateInvoiceRequest body for POST /api/invoices.
// TotalReceived nil means no payment tracking (quotations, orders).
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerId"`
	Type          string               `json:"type"`
	Items         []InvoiceItemRequest `json:"items"`
	TotalReceived *decimal.Decimal     `json:"totalReceived,omitempty"`
}

// UpdatePaymentRequest body for PUT /api/invoices/:id.
type UpdatePaymentRequest struct {
	TotalReceived decimal.Decimal `json:"totalReceived"`
}

// InvoiceLineResponse one computed line in responses. Amounts are rounded to
// two decimals here, at the presentation boundary.
type InvoiceLineResponse struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	HSNCode       string          `json:"hsnCode"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
}

// HSNSummaryResponse one HSN aggregation row.
type HSNSummaryResponse struct {
	HSNCode       string          `json:"hsnCode"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"`
	Total         decimal.Decimal `json:"total"`
}

// InvoiceResponse a computed invoice, suitable for persistence display and
// for the print surface.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	Type          string               `json:"type"`
	CustomerID    string               `json:"customerId"`
	Customer      string               `json:"customer"`
	Regime        string               `json:"regime"`
	Lines         []InvoiceLineResponse `json:"lines"`
	HSNSummary    []HSNSummaryResponse `json:"hsnSummary"`
	TaxableTotal  decimal.Decimal      `json:"taxableTotal"`
	CGSTTotal     decimal.Decimal      `json:"cgstTotal"`
	SGSTTotal     decimal.Decimal      `json:"sgstTotal"`
	IGSTTotal     decimal.Decimal      `json:"igstTotal"`
	Total         decimal.Decimal      `json:"total"`
	AmountInWords string               `json:"amountInWords"`
	TotalReceived *decimal.Decimal     `json:"totalReceived,omitempty"`
	TotalPending  *decimal.Decimal     `json:"totalPendingAmount,omitempty"`
	PaymentStatus string               `json:"paymentStatus"`
	Date          string               `json:"date"`
}

// InvoiceListResponse invoices in list/search responses (no lines).
type InvoiceListItem struct {
	ID            string           `json:"id"`
	Type          string           `json:"type"`
	Customer      string           `json:"customer"`
	Total         decimal.Decimal  `json:"total"`
	TotalReceived *decimal.Decimal `json:"totalReceived,omitempty"`
	TotalPending  *decimal.Decimal `json:"totalPendingAmount,omitempty"`
	PaymentStatus string           `json:"paymentStatus"`
	Date          string           `json:"date"`
}
