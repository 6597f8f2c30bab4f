package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LabourEntry is one day's line in a weekly labour record.
type LabourEntry struct {
	Date       time.Time       `json:"date"`
	LabourType string          `json:"labourType"`
	Duty       string          `json:"duty"`
	Persons    decimal.Decimal `json:"noOfPersons"`
	Rate       decimal.Decimal `json:"rate"`
	Hours      decimal.Decimal `json:"hours"`
	Amount     decimal.Decimal `json:"amount"` // Persons x Rate x Hours
}

// WeeklyRecord (NMR) aggregates a week of labour entries into one payable unit.
type WeeklyRecord struct {
	PayableUnit
	Trade         string        `json:"trade"`
	EngineerName  string        `json:"engineerName"`
	WeekStartDate time.Time     `json:"weekStartDate"`
	WeekEndDate   time.Time     `json:"weekEndDate"`
	Entries       []LabourEntry `json:"entries"`
}
