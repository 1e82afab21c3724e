package repository

import "github.com/vyapar-labs/gstbill-api/internal/domain/entity"

// CustomerRepository buyer records.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndName(companyID, name string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
