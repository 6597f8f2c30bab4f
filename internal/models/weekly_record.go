package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeeklyRecord is a row of the weekly_records table (an NMR).
type WeeklyRecord struct {
	RecordID      string          `db:"record_id"`
	NMRNumber     string          `db:"nmr_number"`
	Project       string          `db:"project"`
	Contractor    string          `db:"contractor"`
	Trade         string          `db:"trade"`
	EngineerName  string          `db:"engineer_name"`
	WeekStartDate time.Time       `db:"week_start_date"`
	WeekEndDate   time.Time       `db:"week_end_date"`
	Total         decimal.Decimal `db:"total"`
	ApprovalColumns
	AuditFields
}

// LabourEntry is a row of weekly_record_entries. Position keeps entry order.
type LabourEntry struct {
	RecordID    string          `db:"record_id"`
	Position    int             `db:"position"`
	EntryDate   time.Time       `db:"entry_date"`
	LabourType  string          `db:"labour_type"`
	Duty        string          `db:"duty"`
	NoOfPersons decimal.Decimal `db:"no_of_persons"`
	Rate        decimal.Decimal `db:"rate"`
	Hours       decimal.Decimal `db:"hours"`
	Amount      decimal.Decimal `db:"amount"`
}
