package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry directions.
const (
	EntryCredit = "credit"
	EntryDebit  = "debit"
)

// Account categories used by the ledger view.
const (
	AccountReceivable = "Accounts Receivable"
	AccountPayable    = "Accounts Payable"
	AccountSales      = "Sales"
	AccountExpenses   = "Expenses"
)

// AccountEntry is a credit/debit ledger record. Created manually or as a
// side effect of invoice creation (InvoiceID links back in that case).
type AccountEntry struct {
	ID          string
	CompanyID   string
	AccountType string
	Type        string // credit | debit
	Amount      decimal.Decimal // non-negative; direction comes from Type
	Description string
	InvoiceID   *string
	Date        time.Time
	CreatedAt   time.Time
}
