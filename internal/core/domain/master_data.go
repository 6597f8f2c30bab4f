package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is master data. The billing engine references projects by name or id
// without enforcing the link.
type Project struct {
	ProjectID       string          `json:"projectID"`
	ProjectName     string          `json:"projectName"`
	ClientName      string          `json:"clientName"`
	SiteAddress     string          `json:"siteAddress"`
	OfficeAddress   string          `json:"officeAddress"`
	ContactNumber   string          `json:"contactNumber"`
	LocationLink1   string          `json:"locationLink1"`
	LocationLink2   string          `json:"locationLink2"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget"`
	StartDate       time.Time       `json:"startDate"`
	Status          string          `json:"status"`
	Note            string          `json:"note"`
	AuditFields
}

// Contractor is master data describing a party that raises bills.
type Contractor struct {
	ContractorID    string          `json:"contractorID"`
	ContractorName  string          `json:"contractorName"`
	Project         string          `json:"project"`
	Trade           string          `json:"trade"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	EstimatedQty    decimal.Decimal `json:"estimatedQty"`
	EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
	Mobile          string          `json:"mobile"`
	Email           string          `json:"email"`
	Address         string          `json:"address"`
	AuditFields
}
