package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a row of the bills table.
type Bill struct {
	BillID             string          `db:"bill_id"`
	BillNumber         string          `db:"bill_number"`
	Contractor         string          `db:"contractor"`
	Project            string          `db:"project"`
	ProjectDate        time.Time       `db:"project_date"`
	Trade              string          `db:"trade"`
	Unit               string          `db:"unit"`
	UnitPrice          decimal.Decimal `db:"unit_price"`
	Quantity           decimal.Decimal `db:"quantity"`
	Total              decimal.Decimal `db:"total"`
	Description        string          `db:"description"`
	Location           string          `db:"location"`
	AuthorizedEngineer string          `db:"authorized_engineer"`
	ApprovalColumns
	AuditFields
}
