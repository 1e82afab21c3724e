package dto

// UpdateCompanyRequest body for PUT /api/company (seller profile).
type UpdateCompanyRequest struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	GSTIN       string `json:"GSTIN,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankName    string `json:"bankName,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
	BankIFSC    string `json:"bankIFSC,omitempty"`
	Terms       string `json:"terms,omitempty"`
}

// CompanyResponse seller profile in responses.
type CompanyResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	GSTIN       string `json:"GSTIN,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankName    string `json:"bankName,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
	BankIFSC    string `json:"bankIFSC,omitempty"`
	Terms       string `json:"terms,omitempty"`
}
