package dto

import (
	"time"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LabourEntryRequest is one line of a weekly record. Amount is always recomputed.
type LabourEntryRequest struct {
	Date        time.Time       `json:"date"`
	LabourType  string          `json:"labourType"`
	Duty        string          `json:"duty"`
	NoOfPersons decimal.Decimal `json:"noOfPersons" binding:"gte=0"`
	Rate        decimal.Decimal `json:"rate" binding:"gte=0"`
	Hours       decimal.Decimal `json:"hours" binding:"gte=0"`
}

// CreateWeeklyRecordRequest defines the data needed to raise an NMR.
type CreateWeeklyRecordRequest struct {
	Project       string               `json:"project" binding:"required"`
	Contractor    string               `json:"contractor" binding:"required"`
	Trade         string               `json:"trade"`
	EngineerName  string               `json:"engineerName"`
	WeekStartDate time.Time            `json:"weekStartDate" binding:"required"`
	WeekEndDate   time.Time            `json:"weekEndDate" binding:"required"`
	Entries       []LabourEntryRequest `json:"entries" binding:"dive"`
}

// WeeklyRecordResponse defines the data returned for an NMR.
type WeeklyRecordResponse struct {
	ID            string               `json:"id"`
	NMRNumber     string               `json:"nmrNumber"`
	Project       string               `json:"project"`
	Contractor    string               `json:"contractor"`
	Trade         string               `json:"trade"`
	EngineerName  string               `json:"engineerName"`
	WeekStartDate time.Time            `json:"weekStartDate"`
	WeekEndDate   time.Time            `json:"weekEndDate"`
	Entries       []domain.LabourEntry `json:"entries"`
	Total         decimal.Decimal      `json:"total"`
	PM            StageResponse        `json:"pm"`
	QC            StageResponse        `json:"qc"`
	Billing       StageResponse        `json:"billing"`
	FinalAmount   decimal.Decimal      `json:"finalAmount"`
	Status        string               `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// WeeklyRecordApprovalResponse wraps an NMR after an approval call.
type WeeklyRecordApprovalResponse struct {
	WeeklyRecord WeeklyRecordResponse `json:"weeklyRecord"`
	Warnings     []string             `json:"warnings,omitempty"`
}

// ListWeeklyRecordsResponse wraps one page of NMRs.
type ListWeeklyRecordsResponse struct {
	WeeklyRecords []WeeklyRecordResponse `json:"weeklyRecords"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToLabourEntries converts request lines to domain entries without amounts.
func ToLabourEntries(reqs []LabourEntryRequest) []domain.LabourEntry {
	entries := make([]domain.LabourEntry, len(reqs))
	for i, r := range reqs {
		entries[i] = domain.LabourEntry{
			Date:       r.Date,
			LabourType: r.LabourType,
			Duty:       r.Duty,
			Persons:    r.NoOfPersons,
			Rate:       r.Rate,
			Hours:      r.Hours,
		}
	}
	return entries
}

// ToWeeklyRecordResponse converts a domain.WeeklyRecord to its DTO
func ToWeeklyRecordResponse(r *domain.WeeklyRecord) WeeklyRecordResponse {
	return WeeklyRecordResponse{
		ID:            r.ID,
		NMRNumber:     r.DisplayNumber,
		Project:       r.Project,
		Contractor:    r.Contractor,
		Trade:         r.Trade,
		EngineerName:  r.EngineerName,
		WeekStartDate: r.WeekStartDate,
		WeekEndDate:   r.WeekEndDate,
		Entries:       r.Entries,
		Total:         r.BaseAmount,
		PM:            ToStageResponse(r.PM),
		QC:            ToStageResponse(r.QC),
		Billing:       ToStageResponse(r.Billing),
		FinalAmount:   r.FinalAmount,
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListWeeklyRecordsResponse converts a page of domain NMRs
func ToListWeeklyRecordsResponse(records []domain.WeeklyRecord, nextToken *string) ListWeeklyRecordsResponse {
	res := make([]WeeklyRecordResponse, len(records))
	for i := range records {
		res[i] = ToWeeklyRecordResponse(&records[i])
	}
	return ListWeeklyRecordsResponse{WeeklyRecords: res, NextToken: nextToken}
}
