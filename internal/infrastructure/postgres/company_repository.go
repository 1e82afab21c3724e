package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository over PostgreSQL (pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, address, city, state, pincode, country, gstin, phone, email, bank_name, bank_account, bank_ifsc, terms, logo_path, sign_path, created_at, updated_at`

// Create persists a new company profile.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.State,
		company.Pincode, company.Country, company.GSTIN, company.Phone, company.Email,
		company.BankName, company.BankAccount, company.BankIFSC, company.Terms,
		company.LogoPath, company.SignPath, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches one company profile by ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(),
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.City, &c.State, &c.Pincode, &c.Country,
		&c.GSTIN, &c.Phone, &c.Email, &c.BankName, &c.BankAccount, &c.BankIFSC,
		&c.Terms, &c.LogoPath, &c.SignPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update rewrites the company profile.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, city = $4, state = $5, pincode = $6, country = $7, gstin = $8,
			phone = $9, email = $10, bank_name = $11, bank_account = $12, bank_ifsc = $13, terms = $14,
			logo_path = $15, sign_path = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.City, company.State,
		company.Pincode, company.Country, company.GSTIN, company.Phone, company.Email,
		company.BankName, company.BankAccount, company.BankIFSC, company.Terms,
		company.LogoPath, company.SignPath, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
