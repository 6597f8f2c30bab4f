package mapping

import (
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelApprovalColumns flattens the stages of a payable unit.
func ToModelApprovalColumns(u domain.PayableUnit) models.ApprovalColumns {
	return models.ApprovalColumns{
		PMDecision:      string(u.PM.Decision),
		PMDebit:         u.PM.Debit,
		PMNote:          u.PM.Note,
		QCDecision:      string(u.QC.Decision),
		QCDebit:         u.QC.Debit,
		QCNote:          u.QC.Note,
		BillingDecision: string(u.Billing.Decision),
		BillingNote:     u.Billing.Note,
		FinalAmount:     u.FinalAmount,
		Status:          u.Status().String(),
		Version:         u.Version,
	}
}

// applyApprovalColumns copies the stage columns onto u. The stored status
// column is ignored; status is always derived.
func applyApprovalColumns(u *domain.PayableUnit, m models.ApprovalColumns) {
	u.PM = domain.Stage{Decision: domain.Decision(m.PMDecision), Debit: m.PMDebit, Note: m.PMNote}
	u.QC = domain.Stage{Decision: domain.Decision(m.QCDecision), Debit: m.QCDebit, Note: m.QCNote}
	u.Billing = domain.Stage{Decision: domain.Decision(m.BillingDecision), Debit: decimal.Zero, Note: m.BillingNote}
	u.FinalAmount = m.FinalAmount
	u.Version = m.Version
}

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:             d.ID,
		BillNumber:         d.DisplayNumber,
		Contractor:         d.Contractor,
		Project:            d.Project,
		ProjectDate:        d.ProjectDate,
		Trade:              d.Trade,
		Unit:               d.Unit,
		UnitPrice:          d.UnitPrice,
		Quantity:           d.Quantity,
		Total:              d.BaseAmount,
		Description:        d.Description,
		Location:           d.Location,
		AuthorizedEngineer: d.AuthorizedEngineer,
		ApprovalColumns:    ToModelApprovalColumns(d.PayableUnit),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	d := domain.Bill{
		PayableUnit: domain.PayableUnit{
			ID:            m.BillID,
			DisplayNumber: m.BillNumber,
			Project:       m.Project,
			Contractor:    m.Contractor,
			BaseAmount:    m.Total,
			AuditFields:   ToDomainAuditFields(m.AuditFields),
		},
		ProjectDate:        m.ProjectDate,
		Trade:              m.Trade,
		Unit:               m.Unit,
		UnitPrice:          m.UnitPrice,
		Quantity:           m.Quantity,
		Description:        m.Description,
		Location:           m.Location,
		AuthorizedEngineer: m.AuthorizedEngineer,
	}
	applyApprovalColumns(&d.PayableUnit, m.ApprovalColumns)
	return d
}

// ToDomainBillSlice converts a slice of model Bills to a slice of domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}

// ToModelWeeklyRecord converts a domain WeeklyRecord to its row and entry rows.
func ToModelWeeklyRecord(d domain.WeeklyRecord) (models.WeeklyRecord, []models.LabourEntry) {
	record := models.WeeklyRecord{
		RecordID:        d.ID,
		NMRNumber:       d.DisplayNumber,
		Project:         d.Project,
		Contractor:      d.Contractor,
		Trade:           d.Trade,
		EngineerName:    d.EngineerName,
		WeekStartDate:   d.WeekStartDate,
		WeekEndDate:     d.WeekEndDate,
		Total:           d.BaseAmount,
		ApprovalColumns: ToModelApprovalColumns(d.PayableUnit),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	entries := make([]models.LabourEntry, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = models.LabourEntry{
			RecordID:    d.ID,
			Position:    i,
			EntryDate:   e.Date,
			LabourType:  e.LabourType,
			Duty:        e.Duty,
			NoOfPersons: e.Persons,
			Rate:        e.Rate,
			Hours:       e.Hours,
			Amount:      e.Amount,
		}
	}
	return record, entries
}

// ToDomainWeeklyRecord converts a model WeeklyRecord and its entries, ordered by position.
func ToDomainWeeklyRecord(m models.WeeklyRecord, entries []models.LabourEntry) domain.WeeklyRecord {
	d := domain.WeeklyRecord{
		PayableUnit: domain.PayableUnit{
			ID:            m.RecordID,
			DisplayNumber: m.NMRNumber,
			Project:       m.Project,
			Contractor:    m.Contractor,
			BaseAmount:    m.Total,
			AuditFields:   ToDomainAuditFields(m.AuditFields),
		},
		Trade:         m.Trade,
		EngineerName:  m.EngineerName,
		WeekStartDate: m.WeekStartDate,
		WeekEndDate:   m.WeekEndDate,
		Entries:       make([]domain.LabourEntry, len(entries)),
	}
	for i, e := range entries {
		d.Entries[i] = domain.LabourEntry{
			Date:       e.EntryDate,
			LabourType: e.LabourType,
			Duty:       e.Duty,
			Persons:    e.NoOfPersons,
			Rate:       e.Rate,
			Hours:      e.Hours,
			Amount:     e.Amount,
		}
	}
	applyApprovalColumns(&d.PayableUnit, m.ApprovalColumns)
	return d
}
