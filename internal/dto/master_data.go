package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to register a project.
type CreateProjectRequest struct {
	ProjectName     string          `json:"projectName" binding:"required"`
	ClientName      string          `json:"clientName"`
	SiteAddress     string          `json:"siteAddress"`
	OfficeAddress   string          `json:"officeAddress"`
	ContactNumber   string          `json:"contactNumber"`
	LocationLink1   string          `json:"locationLink1"`
	LocationLink2   string          `json:"locationLink2"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget" binding:"gte=0"`
	StartDate       time.Time       `json:"startDate"`
	Status          string          `json:"status"`
	Note            string          `json:"note"`
}

// UpdateProjectRequest replaces every editable field of a project.
type UpdateProjectRequest struct {
	ProjectName     string          `json:"projectName" binding:"required"`
	ClientName      string          `json:"clientName"`
	SiteAddress     string          `json:"siteAddress"`
	OfficeAddress   string          `json:"officeAddress"`
	ContactNumber   string          `json:"contactNumber"`
	LocationLink1   string          `json:"locationLink1"`
	LocationLink2   string          `json:"locationLink2"`
	EstimatedBudget decimal.Decimal `json:"estimatedBudget" binding:"gte=0"`
	StartDate       time.Time       `json:"startDate"`
	Status          string          `json:"status"`
	Note            string          `json:"note"`
}

// CreateContractorRequest defines the data needed to register a contractor.
type CreateContractorRequest struct {
	ContractorName string          `json:"contractorName" binding:"required"`
	Project        string          `json:"project"`
	Trade          string          `json:"trade"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	EstimatedQty   decimal.Decimal `json:"estimatedQty" binding:"gte=0"`
	Mobile         string          `json:"mobile"`
	Email          string          `json:"email" binding:"omitempty,email"`
	Address        string          `json:"address"`
}

// UpdateContractorRequest replaces every editable field of a contractor.
// The estimated amount is recomputed from unitPrice and estimatedQty.
type UpdateContractorRequest struct {
	ContractorName string          `json:"contractorName" binding:"required"`
	Project        string          `json:"project"`
	Trade          string          `json:"trade"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	EstimatedQty   decimal.Decimal `json:"estimatedQty" binding:"gte=0"`
	Mobile         string          `json:"mobile"`
	Email          string          `json:"email" binding:"omitempty,email"`
	Address        string          `json:"address"`
}

// UpsertUserRequest assigns a role to a principal.
type UpsertUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"required,oneof=admin projectManager qc billingEngineer siteEngineer viewer"`
	IsActive *bool  `json:"isActive"` // Defaults to true
}
