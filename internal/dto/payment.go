package dto

import (
	"time"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records cash received against an approved bill.
type CreatePaymentRequest struct {
	BillNumber  string          `json:"billNumber" binding:"required"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"` // Defaults to today
	PaidAmount  decimal.Decimal `json:"paidAmount" binding:"gt=0"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit      int    `form:"limit,default=20" binding:"gte=0,lte=100"`
	NextToken  string `form:"nextToken"`
	BillNumber string `form:"billNumber"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID          string               `json:"id"`
	PaymentID   string               `json:"paymentId"`
	BillNumber  string               `json:"billNumber"`
	PaymentDate time.Time            `json:"paymentDate"`
	PaidAmount  decimal.Decimal      `json:"paidAmount"`
	Project     string               `json:"project"`
	Contractor  string               `json:"contractor"`
	BillTotal   decimal.Decimal      `json:"billTotal"`
	Balance     decimal.Decimal      `json:"balance"`
	Status      domain.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// ListPaymentsResponse wraps one page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		PaymentID:   p.PaymentID,
		BillNumber:  p.BillNumber,
		PaymentDate: p.PaymentDate,
		PaidAmount:  p.PaidAmount,
		Project:     p.Project,
		Contractor:  p.Contractor,
		BillTotal:   p.BillTotal,
		Balance:     p.Balance,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToListPaymentsResponse converts a page of domain payments
func ToListPaymentsResponse(payments []domain.Payment, nextToken *string) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: res, NextToken: nextToken}
}
