package billing

import (
	"context"

	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

// ExportUseCase renders a stored invoice as a Tally-importable XML voucher.
type ExportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	exporter     TallyExporter
}

// NewExportUseCase builds the use case.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	exporter TallyExporter,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		exporter:     exporter,
	}
}

// ExportTallyXML loads the invoice and renders the voucher XML.
func (uc *ExportUseCase) ExportTallyXML(ctx context.Context, companyID, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportVoucher(inv, lines, company, customer)
}
