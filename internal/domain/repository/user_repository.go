package repository

import "github.com/vyapar-labs/gstbill-api/internal/domain/entity"

// UserRepository account holders.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
