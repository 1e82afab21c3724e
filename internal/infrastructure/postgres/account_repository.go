package postgres

import (
	"context"
	"fmt"

	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implements AccountRepository over PostgreSQL (pool or tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository builds the adapter. Pass a pool or a tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persists a ledger entry.
func (r *AccountRepo) Create(entry *entity.AccountEntry) error {
	query := `
		INSERT INTO account_entries (id, company_id, account_type, type, amount, description, invoice_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.AccountType, entry.Type, entry.Amount,
		entry.Description, entry.InvoiceID, entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account entry: %w", err)
	}
	return nil
}

// ListByCompany lists ledger entries newest first with pagination.
func (r *AccountRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.AccountEntry, error) {
	query := `
		SELECT id, company_id, account_type, type, amount, description, invoice_id, date, created_at
		FROM account_entries WHERE company_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list account entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccountEntry
	for rows.Next() {
		var e entity.AccountEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.AccountType, &e.Type, &e.Amount,
			&e.Description, &e.InvoiceID, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
