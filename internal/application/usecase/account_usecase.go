package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vyapar-labs/gstbill-api/internal/application/dto"
	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

// AccountUseCase manual ledger entries and the ledger view.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase builds the use case.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

func validAccountType(t string) bool {
	switch t {
	case entity.AccountReceivable, entity.AccountPayable, entity.AccountSales, entity.AccountExpenses:
		return true
	}
	return false
}

// Create records a manual credit or debit. Amounts are non-negative; the
// direction comes from the entry type.
func (uc *AccountUseCase) Create(companyID string, in dto.CreateAccountEntryRequest) (*dto.AccountEntryResponse, error) {
	if !validAccountType(in.AccountType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.EntryCredit && in.Type != entity.EntryDebit {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	entry := &entity.AccountEntry{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		AccountType: in.AccountType,
		Type:        in.Type,
		Amount:      in.Amount.Round(2),
		Description: in.Description,
		Date:        now,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toAccountEntryResponse(entry), nil
}

// List returns the company's ledger entries with the per-account balance
// (credits minus debits) computed over the returned page.
func (uc *AccountUseCase) List(companyID string, limit, offset int) (*dto.AccountLedgerResponse, error) {
	entries, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountEntryResponse, 0, len(entries))
	balances := make(map[string]decimal.Decimal)
	for _, e := range entries {
		items = append(items, *toAccountEntryResponse(e))
		bal := balances[e.AccountType]
		if e.Type == entity.EntryCredit {
			bal = bal.Add(e.Amount)
		} else {
			bal = bal.Sub(e.Amount)
		}
		balances[e.AccountType] = bal
	}
	return &dto.AccountLedgerResponse{
		Items:    items,
		Balances: balances,
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAccountEntryResponse(e *entity.AccountEntry) *dto.AccountEntryResponse {
	return &dto.AccountEntryResponse{
		ID:          e.ID,
		AccountType: e.AccountType,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		InvoiceID:   e.InvoiceID,
		Date:        e.Date,
	}
}
