package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a single contractor charge: unit price times quantity.
type Bill struct {
	PayableUnit
	ProjectDate        time.Time       `json:"projectDate"`
	Trade              string          `json:"trade"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Quantity           decimal.Decimal `json:"quantity"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	AuthorizedEngineer string          `json:"authorizedEngineer"`
}

// BillNumber is the display number payments reference.
func (b Bill) BillNumber() string {
	return b.DisplayNumber
}
