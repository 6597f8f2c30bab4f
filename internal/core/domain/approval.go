package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decision is the outcome recorded at a single approval stage.
type Decision string

const (
	DecisionPending  Decision = "PENDING"
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// StageName identifies one of the three approval gates.
type StageName string

const (
	StagePM      StageName = "PM"
	StageQC      StageName = "QC"
	StageBilling StageName = "BILLING"
)

// Stage holds the sign-off state of one gate. Billing never carries a debit.
type Stage struct {
	Decision Decision        `json:"decision"`
	Debit    decimal.Decimal `json:"debit"`
	Note     string          `json:"note"`
}

// Approved reports whether the stage has been signed off.
func (s Stage) Approved() bool {
	return s.Decision == DecisionApproved
}

// Status is the approval state of a payable unit. It is never stored on its
// own; it is derived from the three stages.
type Status uint8

const (
	StatusPendingPM Status = iota
	StatusPendingQC
	StatusPendingBilling
	StatusApproved
	StatusRejected
)

var statusNames = map[Status]string{
	StatusPendingPM:      "Pending PM",
	StatusPendingQC:      "Pending QC",
	StatusPendingBilling: "Pending Billing",
	StatusApproved:       "Approved",
	StatusRejected:       "Rejected",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText renders the status with its display name.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", uint8(s))
	}
	return []byte(name), nil
}

// UnmarshalText parses a display name back into a Status.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus converts a display name ("Pending QC", "Approved", ...) into a Status.
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// PayableUnit is the approval and settlement state shared by Bill and WeeklyRecord.
type PayableUnit struct {
	ID            string          `json:"id"`
	DisplayNumber string          `json:"displayNumber"`
	Project       string          `json:"project"`
	Contractor    string          `json:"contractor"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	PM            Stage           `json:"pm"`
	QC            Stage           `json:"qc"`
	Billing       Stage           `json:"billing"`
	FinalAmount   decimal.Decimal `json:"finalAmount"`
	Version       int64           `json:"version"`
	AuditFields
}

// Status derives the unit's approval state from its stages: the first stage in
// PM, QC, Billing order that is rejected or still pending decides the result.
func (u PayableUnit) Status() Status {
	stages := []struct {
		stage   Stage
		pending Status
	}{
		{u.PM, StatusPendingPM},
		{u.QC, StatusPendingQC},
		{u.Billing, StatusPendingBilling},
	}
	for _, s := range stages {
		switch s.stage.Decision {
		case DecisionRejected:
			return StatusRejected
		case DecisionApproved:
			continue
		default:
			return s.pending
		}
	}
	return StatusApproved
}

// NewPendingStages returns the three stages of a freshly raised unit.
func NewPendingStages() (pm, qc, billing Stage) {
	pending := Stage{Decision: DecisionPending, Debit: decimal.Zero}
	return pending, pending, pending
}
