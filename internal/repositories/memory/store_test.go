package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBill(id, number string, base int64) domain.Bill {
	pm, qc, billing := domain.NewPendingStages()
	return domain.Bill{PayableUnit: domain.PayableUnit{
		ID:            id,
		DisplayNumber: number,
		Project:       "Tower A",
		Contractor:    "Acme",
		BaseAmount:    decimal.NewFromInt(base),
		FinalAmount:   decimal.NewFromInt(base),
		PM:            pm,
		QC:            qc,
		Billing:       billing,
		Version:       1,
	}}
}

func newPayment(id, paymentID, billID string, paid, total int64) domain.Payment {
	return domain.Payment{
		ID:          id,
		PaymentID:   paymentID,
		BillID:      billID,
		PaymentDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		PaidAmount:  decimal.NewFromInt(paid),
		BillTotal:   decimal.NewFromInt(total),
	}
}

func TestSaveBillRejectsReusedNumber(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SaveBill(ctx, newBill("b1", "BILL-1", 100)))
	err := s.SaveBill(ctx, newBill("b2", "BILL-1", 100))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)

	// Numbers stay claimed after deletion.
	require.NoError(t, s.DeleteBill(ctx, "b1", false))
	err = s.SaveBill(ctx, newBill("b3", "BILL-1", 100))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)
}

func TestFindBill(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveBill(ctx, newBill("b1", "BILL-1", 100)))

	byNumber, err := s.FindBillByNumber(ctx, "BILL-1")
	require.NoError(t, err)
	assert.Equal(t, "b1", byNumber.ID)

	_, err = s.FindBillByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.FindBillByNumber(ctx, "BILL-404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateBillApprovalChecksVersion(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	bill := newBill("b1", "BILL-1", 1000)
	require.NoError(t, s.SaveBill(ctx, bill))

	next := bill
	next.PM = domain.Stage{Decision: domain.DecisionApproved, Debit: decimal.NewFromInt(50)}
	next.FinalAmount = decimal.NewFromInt(950)
	next.Project = "ignored"
	require.NoError(t, s.UpdateBillApproval(ctx, next))

	stored, err := s.FindBillByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, domain.StatusPendingQC, stored.Status())
	assert.True(t, decimal.NewFromInt(950).Equal(stored.FinalAmount))
	assert.Equal(t, "Tower A", stored.Project, "only approval fields are written")

	// A second writer holding the old snapshot loses.
	err = s.UpdateBillApproval(ctx, next)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestListBillsNewestFirstWithCursor(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.SaveBill(ctx, newBill(fmt.Sprintf("b%d", i), fmt.Sprintf("BILL-%d", i), 10)))
	}

	first, next, err := s.ListBills(ctx, portsrepo.ListUnitsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "BILL-5", first[0].DisplayNumber)
	assert.Equal(t, "BILL-4", first[1].DisplayNumber)
	require.NotNil(t, next)

	second, next, err := s.ListBills(ctx, portsrepo.ListUnitsParams{Limit: 2, AfterNumber: *next})
	require.NoError(t, err)
	assert.Equal(t, "BILL-3", second[0].DisplayNumber)
	require.NotNil(t, next)

	last, next, err := s.ListBills(ctx, portsrepo.ListUnitsParams{Limit: 2, AfterNumber: *next})
	require.NoError(t, err)
	assert.Len(t, last, 1)
	assert.Nil(t, next)
}

func TestListBillsFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	pending := newBill("b1", "BILL-1", 10)
	rejected := newBill("b2", "BILL-2", 10)
	rejected.PM.Decision = domain.DecisionRejected
	require.NoError(t, s.SaveBill(ctx, pending))
	require.NoError(t, s.SaveBill(ctx, rejected))

	status := domain.StatusRejected
	bills, _, err := s.ListBills(ctx, portsrepo.ListUnitsParams{Status: &status})
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "b2", bills[0].ID)
}

func TestSavePaymentRechecksOverpayment(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveBill(ctx, newBill("b1", "BILL-1", 950)))

	require.NoError(t, s.SavePayment(ctx, newPayment("p1", "PAY-1", "b1", 600, 950)))
	err := s.SavePayment(ctx, newPayment("p2", "PAY-2", "b1", 351, 950))
	assert.ErrorIs(t, err, apperrors.ErrOverpaymentRejected)
	require.NoError(t, s.SavePayment(ctx, newPayment("p3", "PAY-3", "b1", 350, 950)))

	total, count, err := s.SumPaymentsForBill(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(950).Equal(total))
	assert.Equal(t, 2, count)

	err = s.SavePayment(ctx, newPayment("p4", "PAY-4", "missing", 1, 10))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBillPolicies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveBill(ctx, newBill("b1", "BILL-1", 100)))
	require.NoError(t, s.SavePayment(ctx, newPayment("p1", "PAY-1", "b1", 40, 100)))

	err := s.DeleteBill(ctx, "b1", false)
	assert.ErrorIs(t, err, apperrors.ErrHasDependents)
	_, err = s.FindBillByID(ctx, "b1")
	assert.NoError(t, err, "restricted delete leaves the bill in place")

	require.NoError(t, s.DeleteBill(ctx, "b1", true))
	_, err = s.FindPaymentByID(ctx, "p1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.FindBillByNumber(ctx, "BILL-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPaymentsByBillNumber(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveBill(ctx, newBill("b1", "BILL-1", 100)))
	require.NoError(t, s.SaveBill(ctx, newBill("b2", "BILL-2", 100)))
	p1 := newPayment("p1", "PAY-1", "b1", 10, 100)
	p1.BillNumber = "BILL-1"
	p2 := newPayment("p2", "PAY-2", "b2", 10, 100)
	p2.BillNumber = "BILL-2"
	require.NoError(t, s.SavePayment(ctx, p1))
	require.NoError(t, s.SavePayment(ctx, p2))

	payments, next, err := s.ListPayments(ctx, portsrepo.ListPaymentsParams{BillNumber: "BILL-2"})
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, payments, 1)
	assert.Equal(t, "PAY-2", payments[0].PaymentID)
}

func TestWeeklyRecordEntriesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	pm, qc, billing := domain.NewPendingStages()
	record := domain.WeeklyRecord{
		PayableUnit: domain.PayableUnit{ID: "w1", DisplayNumber: "NMR-1", PM: pm, QC: qc, Billing: billing, Version: 1},
		Entries:     []domain.LabourEntry{{LabourType: "Mason", Amount: decimal.NewFromInt(8000)}},
	}
	require.NoError(t, s.SaveWeeklyRecord(ctx, record))
	record.Entries[0].LabourType = "changed"

	stored, err := s.FindWeeklyRecordByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Mason", stored.Entries[0].LabourType)

	require.NoError(t, s.DeleteWeeklyRecord(ctx, "w1"))
	assert.ErrorIs(t, s.DeleteWeeklyRecord(ctx, "w1"), apperrors.ErrNotFound)
}

func TestUserUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveUser(ctx, domain.User{UserID: "u1", Role: domain.RoleQC, IsActive: true}))
	require.NoError(t, s.SaveUser(ctx, domain.User{UserID: "u1", Role: domain.RoleAdmin, IsActive: true}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
}

func TestUpdateMasterDataRequiresExisting(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	err := s.UpdateProject(ctx, domain.Project{ProjectID: "p1", ProjectName: "Tower A"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	err = s.UpdateContractor(ctx, domain.Contractor{ContractorID: "c1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, s.SaveProject(ctx, domain.Project{ProjectID: "p1", ProjectName: "Tower A"}))
	require.NoError(t, s.UpdateProject(ctx, domain.Project{ProjectID: "p1", ProjectName: "Tower B", ContactNumber: "080 2222"}))
	got, err := s.FindProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tower B", got.ProjectName)
	assert.Equal(t, "080 2222", got.ContactNumber)
}
