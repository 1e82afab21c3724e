package repository

import "github.com/vyapar-labs/gstbill-api/internal/domain/entity"

// ProductRepository catalog persistence.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDs returns the products for the given IDs (missing IDs are simply
	// absent from the result; the resolver reports them as invalid).
	GetByIDs(ids []string) ([]*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// AdjustStock applies a stock delta atomically. A negative delta only
	// succeeds when the row still has enough stock; otherwise it returns
	// domain.ErrInsufficientStock and the surrounding tx must roll back.
	AdjustStock(id string, delta int64) error
}
