package mapping

import (
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:          d.ID,
		PaymentID:   d.PaymentID,
		BillID:      d.BillID,
		BillNumber:  d.BillNumber,
		PaymentDate: d.PaymentDate,
		PaidAmount:  d.PaidAmount,
		Project:     d.Project,
		Contractor:  d.Contractor,
		BillTotal:   d.BillTotal,
		Balance:     d.Balance,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:          m.ID,
		PaymentID:   m.PaymentID,
		BillID:      m.BillID,
		BillNumber:  m.BillNumber,
		PaymentDate: m.PaymentDate,
		PaidAmount:  m.PaidAmount,
		Project:     m.Project,
		Contractor:  m.Contractor,
		BillTotal:   m.BillTotal,
		Balance:     m.Balance,
		Status:      domain.PaymentStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
