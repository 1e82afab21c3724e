package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
)

// InvoiceRepository persisted invoices and their lines.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error)
	ListByType(companyID, invoiceType string, limit, offset int) ([]*entity.Invoice, error)
	// SearchByCustomerName lists invoices whose customer name matches
	// (case-insensitive). Empty name means all invoices of the company.
	SearchByCustomerName(companyID, name string) ([]*entity.Invoice, error)
	// UpdatePayment writes the re-derived received/pending pair. It is the
	// only write path for payment fields.
	UpdatePayment(id string, received, pending decimal.Decimal, updatedAt time.Time) error
}
