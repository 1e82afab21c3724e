package usecase

import (
	"time"

	"github.com/vyapar-labs/gstbill-api/internal/application/dto"
	"github.com/vyapar-labs/gstbill-api/internal/domain"
	"github.com/vyapar-labs/gstbill-api/internal/domain/entity"
	"github.com/vyapar-labs/gstbill-api/internal/domain/repository"
)

// CompanyUseCase reads and updates the seller profile.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get returns the caller's company profile.
func (uc *CompanyUseCase) Get(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update replaces the profile fields. State is required because it decides
// the seller-side GST jurisdiction on every invoice.
func (uc *CompanyUseCase) Update(companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.CompanyName == "" || in.State == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.CompanyName
	company.Address = in.Address
	company.Country = in.Country
	company.State = in.State
	company.City = in.City
	company.Pincode = in.Pincode
	company.GSTIN = in.GSTIN
	company.Phone = in.Phone
	company.Email = in.Email
	company.BankName = in.BankName
	company.BankAccount = in.BankAccount
	company.BankIFSC = in.BankIFSC
	company.Terms = in.Terms
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:          c.ID,
		CompanyName: c.Name,
		Address:     c.Address,
		Country:     c.Country,
		State:       c.State,
		City:        c.City,
		Pincode:     c.Pincode,
		GSTIN:       c.GSTIN,
		Phone:       c.Phone,
		Email:       c.Email,
		BankName:    c.BankName,
		BankAccount: c.BankAccount,
		BankIFSC:    c.BankIFSC,
		Terms:       c.Terms,
	}
}
