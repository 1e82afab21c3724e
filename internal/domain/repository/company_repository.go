package repository

import "github.com/vyapar-labs/gstbill-api/internal/domain/entity"

// CompanyRepository seller profile persistence.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
}
