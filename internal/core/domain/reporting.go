package domain

import "github.com/shopspring/decimal"

// UnitSummary aggregates one kind of payable unit for the dashboard.
type UnitSummary struct {
	Count      int             `json:"count"`
	ByStatus   map[string]int  `json:"byStatus"`
	BaseTotal  decimal.Decimal `json:"baseTotal"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// SettlementSummary aggregates payments against approved bills.
type SettlementSummary struct {
	PaymentCount  int             `json:"paymentCount"`
	ApprovedTotal decimal.Decimal `json:"approvedTotal"` // Sum of final amounts of approved bills
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// Summary is the dashboard view over bills, NMRs and payments.
type Summary struct {
	Bills         UnitSummary       `json:"bills"`
	WeeklyRecords UnitSummary       `json:"weeklyRecords"`
	Settlement    SettlementSummary `json:"settlement"`
}

// NewUnitSummary returns an empty summary with every status bucket present.
func NewUnitSummary() UnitSummary {
	byStatus := make(map[string]int, len(statusNames))
	for _, name := range statusNames {
		byStatus[name] = 0
	}
	return UnitSummary{ByStatus: byStatus, BaseTotal: decimal.Zero, FinalTotal: decimal.Zero}
}

// Add folds one unit into the summary.
func (s *UnitSummary) Add(u PayableUnit) {
	s.Count++
	s.ByStatus[u.Status().String()]++
	s.BaseTotal = s.BaseTotal.Add(u.BaseAmount)
	s.FinalTotal = s.FinalTotal.Add(u.FinalAmount)
}
