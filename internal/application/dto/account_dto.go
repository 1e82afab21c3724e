package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountEntryRequest body for POST /api/accounts.
type CreateAccountEntryRequest struct {
	AccountType string          `json:"accountType"`
	Type        string          `json:"type"` // credit | debit
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// AccountLedgerResponse entries plus the running balance per account,
// where balance = credits - debits.
type AccountLedgerResponse struct {
	Items    []AccountEntryResponse     `json:"items"`
	Balances map[string]decimal.Decimal `json:"balances"`
	Page     PageResponse               `json:"page"`
}

// AccountEntryResponse ledger entry in responses.
type AccountEntryResponse struct {
	ID          string          `json:"id"`
	AccountType string          `json:"accountType"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	InvoiceID   *string         `json:"invoiceId,omitempty"`
	Date        time.Time       `json:"date"`
}
