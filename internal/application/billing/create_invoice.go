package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vyapar-labs/gstbill-api/internal/application/dto"
	"github.com/vyapar-labs/gstbill-api/internal/domain"
	domainbilling "github.com/vyapar-labs/gstbill-api/internal/domain/billing"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

// InvoiceUseCase creates invoices through the resolve -> tax -> reconcile
// pipeline and persists the result (with its stock and ledger side effects)
// in one transaction. Every screen goes through this same pipeline.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateInvoice validates the draft, computes the tax split and payment
// state, and persists invoice + lines + stock adjustment + ledger entry
// atomically. The computation core never touches storage: the catalog
// snapshot is fully materialized before it runs.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !entity.ValidInvoiceType(in.Type) || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	// Catalog snapshot for the resolver (read outside the tx; the conditional
	// stock decrement inside the tx is what settles concurrent depletion).
	ids := make([]string, 0, len(in.Items))
	draft := make([]domainbilling.DraftLine, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
		draft = append(draft, domainbilling.DraftLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	catalog, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, p := range catalog {
		if p.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	resolved, err := domainbilling.ResolveLines(draft, catalog, in.Type)
	if err != nil {
		return nil, err
	}
	comp := domainbilling.ComputeTax(resolved, company.State, customer.State)
	settlement, err := domainbilling.Reconcile(comp.Totals.Grand, in.TotalReceived)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Type:          in.Type,
		Regime:        comp.Regime,
		TaxableTotal:  comp.Totals.Taxable.Round(2),
		CGSTTotal:     comp.CGSTTotal().Round(2),
		SGSTTotal:     comp.SGSTTotal().Round(2),
		IGSTTotal:     comp.IGSTTotal().Round(2),
		GrandTotal:    comp.Totals.Grand.Round(2),
		TotalReceived: settlement.TotalReceived,
		TotalPending:  settlement.TotalPending,
		Date:          now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	lines := make([]*entity.InvoiceLine, 0, len(comp.Lines))
	for _, l := range comp.Lines {
		lines = append(lines, &entity.InvoiceLine{
			ID:            uuid.New().String(),
			InvoiceID:     inv.ID,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			HSNCode:       l.HSNCode,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			TaxRate:       l.TaxRate,
			TaxableAmount: l.TaxableAmount.Round(2),
			CGSTAmount:    l.CGSTAmount.Round(2),
			SGSTAmount:    l.SGSTAmount.Round(2),
			IGSTAmount:    l.IGSTAmount.Round(2),
			LineTotal:     l.LineTotal.Round(2),
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
		accountRepo repository.AccountRepository,
	) error {
		// Stock moves only for invoice types that bear stock. The decrement
		// is conditional in SQL, so a concurrent submission that drained the
		// stock since the snapshot fails here and rolls everything back.
		for _, l := range lines {
			switch in.Type {
			case entity.TypeSalesInvoice:
				if err := productRepo.AdjustStock(l.ProductID, -l.Quantity); err != nil {
					return err
				}
			case entity.TypePurchaseInvoice:
				if err := productRepo.AdjustStock(l.ProductID, l.Quantity); err != nil {
					return err
				}
			}
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, l := range lines {
			if err := invoiceRepo.CreateLine(l); err != nil {
				return err
			}
		}
		// Payment received at creation time lands in the ledger as a credit
		// against Accounts Receivable, linked back to the invoice.
		if inv.TotalReceived != nil && inv.TotalReceived.IsPositive() {
			entry := &entity.AccountEntry{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				AccountType: entity.AccountReceivable,
				Type:        entity.EntryCredit,
				Amount:      *inv.TotalReceived,
				Description: "Payment received against invoice for " + customer.Name,
				InvoiceID:   &inv.ID,
				Date:        now,
				CreatedAt:   now,
			}
			if err := accountRepo.Create(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, lines), nil
}

// GetInvoice returns an invoice with its full line detail.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, lines), nil
}

// ListByType lists invoices of one type, newest first.
func (uc *InvoiceUseCase) ListByType(ctx context.Context, companyID, invoiceType string, limit, offset int) ([]dto.InvoiceListItem, error) {
	if !entity.ValidInvoiceType(invoiceType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invoiceRepo.ListByType(companyID, invoiceType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceListItem, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceListItem(inv))
	}
	return items, nil
}

// SearchByCustomer lists invoices matching a customer name; empty name means
// every invoice of the company.
func (uc *InvoiceUseCase) SearchByCustomer(ctx context.Context, companyID, customerName string) ([]dto.InvoiceListItem, error) {
	list, err := uc.invoiceRepo.SearchByCustomerName(companyID, customerName)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceListItem, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceListItem(inv))
	}
	return items, nil
}

// UpdatePayment re-derives the payment state for a new received amount.
// This is the only path that mutates a persisted invoice, and it revalidates
// against the stored grand total so received can never exceed it.
func (uc *InvoiceUseCase) UpdatePayment(ctx context.Context, companyID, id string, in dto.UpdatePaymentRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	proposed := in.TotalReceived
	settlement, err := domainbilling.Reconcile(inv.GrandTotal, &proposed)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.invoiceRepo.UpdatePayment(id, *settlement.TotalReceived, *settlement.TotalPending, now); err != nil {
		return nil, err
	}
	inv.TotalReceived = settlement.TotalReceived
	inv.TotalPending = settlement.TotalPending
	inv.UpdatedAt = now

	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, lines), nil
}

func toInvoiceListItem(inv *entity.Invoice) dto.InvoiceListItem {
	return dto.InvoiceListItem{
		ID:            inv.ID,
		Type:          inv.Type,
		Customer:      inv.CustomerName,
		Total:         inv.GrandTotal,
		TotalReceived: inv.TotalReceived,
		TotalPending:  inv.TotalPending,
		PaymentStatus: domainbilling.PaymentStatus(inv.GrandTotal, inv.TotalReceived),
		Date:          inv.Date.Format("2006-01-02"),
	}
}

func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceLine) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		Type:          inv.Type,
		CustomerID:    inv.CustomerID,
		Customer:      inv.CustomerName,
		Regime:        inv.Regime,
		TaxableTotal:  inv.TaxableTotal,
		CGSTTotal:     inv.CGSTTotal,
		SGSTTotal:     inv.SGSTTotal,
		IGSTTotal:     inv.IGSTTotal,
		Total:         inv.GrandTotal,
		AmountInWords: domainbilling.AmountInWords(inv.GrandTotal),
		TotalReceived: inv.TotalReceived,
		TotalPending:  inv.TotalPending,
		PaymentStatus: domainbilling.PaymentStatus(inv.GrandTotal, inv.TotalReceived),
		Date:          inv.Date.Format("2006-01-02"),
		Lines:         make([]dto.InvoiceLineResponse, 0, len(lines)),
	}

	// Rebuild the HSN summary from the persisted lines; it is derived data
	// and never stored.
	groups := make(map[string]*dto.HSNSummaryResponse)
	order := make([]string, 0)
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			HSNCode:       l.HSNCode,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			TaxRate:       l.TaxRate,
			TaxableAmount: l.TaxableAmount,
			CGSTAmount:    l.CGSTAmount,
			SGSTAmount:    l.SGSTAmount,
			IGSTAmount:    l.IGSTAmount,
			LineTotal:     l.LineTotal,
		})
		g, ok := groups[l.HSNCode]
		if !ok {
			g = &dto.HSNSummaryResponse{HSNCode: l.HSNCode}
			groups[l.HSNCode] = g
			order = append(order, l.HSNCode)
		}
		g.TaxableAmount = g.TaxableAmount.Add(l.TaxableAmount)
		g.CGSTAmount = g.CGSTAmount.Add(l.CGSTAmount)
		g.SGSTAmount = g.SGSTAmount.Add(l.SGSTAmount)
		g.IGSTAmount = g.IGSTAmount.Add(l.IGSTAmount)
		g.Total = g.Total.Add(l.LineTotal)
	}
	for _, code := range order {
		resp.HSNSummary = append(resp.HSNSummary, *groups[code])
	}
	return resp
}
