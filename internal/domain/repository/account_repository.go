package repository

import "github.com/vyapar-labs/gstbill-api/internal/domain/entity"

// AccountRepository ledger entries.
type AccountRepository interface {
	Create(entry *entity.AccountEntry) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.AccountEntry, error)
}
