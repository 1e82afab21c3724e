package billing

import (
	"context"

	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

// BillingTxRunner runs a function inside one transaction covering catalog
// stock, invoices and the ledger, so invoice creation is all-or-nothing.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
		accountRepo repository.AccountRepository,
	) error) error
}

// InvoicePDFGenerator renders a computed invoice into a printable PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		lines []*entity.InvoiceLine,
		company *entity.Company,
		customer *entity.Customer,
	) ([]byte, error)
}

// TallyExporter renders a computed invoice as a Tally-importable XML voucher.
type TallyExporter interface {
	ExportVoucher(
		invoice *entity.Invoice,
		lines []*entity.InvoiceLine,
		company *entity.Company,
		customer *entity.Customer,
	) ([]byte, error)
}
