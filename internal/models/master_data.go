package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
type Project struct {
	ProjectID       string          `db:"project_id"`
	ProjectName     string          `db:"project_name"`
	ClientName      string          `db:"client_name"`
	SiteAddress     string          `db:"site_address"`
	OfficeAddress   string          `db:"office_address"`
	ContactNumber   string          `db:"contact_number"`
	LocationLink1   string          `db:"location_link_1"`
	LocationLink2   string          `db:"location_link_2"`
	EstimatedBudget decimal.Decimal `db:"estimated_budget"`
	StartDate       *time.Time      `db:"start_date"` // Nullable
	Status          string          `db:"status"`
	Note            string          `db:"note"`
	AuditFields
}

// Contractor is a row of the contractors table.
type Contractor struct {
	ContractorID    string          `db:"contractor_id"`
	ContractorName  string          `db:"contractor_name"`
	Project         string          `db:"project"`
	Trade           string          `db:"trade"`
	Unit            string          `db:"unit"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	EstimatedQty    decimal.Decimal `db:"estimated_qty"`
	EstimatedAmount decimal.Decimal `db:"estimated_amount"`
	Mobile          string          `db:"mobile"`
	Email           string          `db:"email"`
	Address         string          `db:"address"`
	AuditFields
}

// User is a row of the users table.
type User struct {
	UserID   string `db:"user_id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
