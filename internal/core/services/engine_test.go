package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/core/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/repositories/memory"
	"github.com/SscSPs/construction_billing_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	adminID   = "user-admin"
	pmID      = "user-pm"
	qcID      = "user-qc"
	billerID  = "user-billing"
	siteID    = "user-site"
	viewerID  = "user-viewer"
	strangeID = "user-unknown"

	deletionSecret = "correct horse"
)

type EngineTestSuite struct {
	suite.Suite
	ctx        context.Context
	secretHash string
	store      *memory.Store
	svc        *portssvc.ServiceContainer
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupSuite() {
	hash, err := utils.HashSecret(deletionSecret)
	s.Require().NoError(err)
	s.secretHash = hash
	s.ctx = context.Background()
}

func (s *EngineTestSuite) SetupTest() {
	s.newEngine(config.DebitPolicyClamp, config.DeletePolicyRestrict)
}

func (s *EngineTestSuite) newEngine(debit config.DebitPolicy, del config.DeletePolicy) {
	s.store = memory.NewStore()
	roles := map[string]domain.Role{
		adminID:  domain.RoleAdmin,
		pmID:     domain.RoleProjectManager,
		qcID:     domain.RoleQC,
		billerID: domain.RoleBillingEngineer,
		siteID:   domain.RoleSiteEngineer,
		viewerID: domain.RoleViewer,
	}
	for id, role := range roles {
		s.Require().NoError(s.store.SaveUser(s.ctx, domain.User{UserID: id, Role: role, IsActive: true}))
	}
	cfg := &config.Config{
		DeletionSecretHash: s.secretHash,
		DebitPolicy:        debit,
		DeletePolicy:       del,
	}
	s.svc = services.NewServiceContainer(cfg, memory.NewRepositoryProvider(s.store), nil)
}

func (s *EngineTestSuite) amountEqual(expected int64, actual decimal.Decimal) {
	s.True(decimal.NewFromInt(expected).Equal(actual), "expected %d, got %s", expected, actual.String())
}

func (s *EngineTestSuite) createBill(unitPrice, quantity int64) *domain.Bill {
	bill, err := s.svc.Bill.CreateBill(s.ctx, dto.CreateBillRequest{
		Contractor:  "Acme Masonry",
		Project:     "Tower A",
		ProjectDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Trade:       "Masonry",
		Unit:        "sqft",
		UnitPrice:   decimal.NewFromInt(unitPrice),
		Quantity:    decimal.NewFromInt(quantity),
	}, siteID)
	s.Require().NoError(err)
	return bill
}

func stage(approved bool, debit int64) dto.StageApprovalRequest {
	return dto.StageApprovalRequest{Approved: dto.BoolPtr(approved), Debit: decimal.NewFromInt(debit)}
}

func billing(approved bool) dto.BillingApprovalRequest {
	return dto.BillingApprovalRequest{Approved: dto.BoolPtr(approved)}
}

// approvedBill walks a bill through all three stages.
func (s *EngineTestSuite) approvedBill(unitPrice, quantity, pmDebit, qcDebit int64) *domain.Bill {
	bill := s.createBill(unitPrice, quantity)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, pmDebit), pmID)
	s.Require().NoError(err)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, qcDebit), qcID)
	s.Require().NoError(err)
	approved, _, err := s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), billerID)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusApproved, approved.Status())
	return approved
}

func (s *EngineTestSuite) pay(billNumber string, amount int64) (*domain.Payment, error) {
	return s.svc.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		BillNumber: billNumber,
		PaidAmount: decimal.NewFromInt(amount),
	}, billerID)
}

// --- Creation ---

func (s *EngineTestSuite) TestCreateBill_StartsPendingPM() {
	bill := s.createBill(100, 10)

	s.amountEqual(1000, bill.BaseAmount)
	s.amountEqual(1000, bill.FinalAmount)
	s.Equal(domain.StatusPendingPM, bill.Status())
	s.Regexp(`^BILL-\d{13}-\d{4}$`, bill.DisplayNumber)
	s.Equal(siteID, bill.CreatedBy)
	s.NotEmpty(bill.ID)
}

func (s *EngineTestSuite) TestCreateBill_Forbidden() {
	for _, actor := range []string{viewerID, strangeID, qcID} {
		_, err := s.svc.Bill.CreateBill(s.ctx, dto.CreateBillRequest{
			Contractor: "Acme", Project: "Tower A",
			UnitPrice: decimal.NewFromInt(1), Quantity: decimal.NewFromInt(1),
		}, actor)
		s.ErrorIs(err, apperrors.ErrForbidden, actor)
	}
}

func (s *EngineTestSuite) TestCreateBill_InvalidAmount() {
	_, err := s.svc.Bill.CreateBill(s.ctx, dto.CreateBillRequest{
		Contractor: "Acme", Project: "Tower A",
		UnitPrice: decimal.NewFromInt(-1), Quantity: decimal.NewFromInt(3),
	}, adminID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *EngineTestSuite) TestAmountsBeyondFourDecimalPlacesRejected() {
	_, err := s.svc.Bill.CreateBill(s.ctx, dto.CreateBillRequest{
		Contractor: "Acme", Project: "Tower A",
		UnitPrice: decimal.RequireFromString("0.33335"), Quantity: decimal.NewFromInt(3),
	}, siteID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	bill := s.createBill(10, 10)
	tinyDebit := dto.StageApprovalRequest{Approved: dto.BoolPtr(true), Debit: decimal.RequireFromString("0.00001")}
	_, _, err = s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, tinyDebit, pmID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	approved := s.approvedBill(10, 10, 0, 0)
	_, err = s.svc.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		BillNumber: approved.DisplayNumber,
		PaidAmount: decimal.RequireFromString("99.99995"),
	}, billerID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	payment, err := s.svc.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		BillNumber: approved.DisplayNumber,
		PaidAmount: decimal.RequireFromString("99.9999"),
	}, billerID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPartial, payment.Status)
	s.True(decimal.RequireFromString("0.0001").Equal(payment.Balance))
}

func (s *EngineTestSuite) TestCreateBill_UniqueNumbers() {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		bill := s.createBill(1, 1)
		s.False(seen[bill.DisplayNumber], bill.DisplayNumber)
		seen[bill.DisplayNumber] = true
	}
}

// --- Scenario A ---

func (s *EngineTestSuite) TestScenarioA_FullApproval() {
	bill := s.createBill(100, 10)
	s.amountEqual(1000, bill.BaseAmount)

	afterPM, warnings, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 50), pmID)
	s.Require().NoError(err)
	s.Empty(warnings)
	s.amountEqual(950, afterPM.FinalAmount)
	s.Equal(domain.StatusPendingQC, afterPM.Status())

	afterQC, _, err := s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), qcID)
	s.Require().NoError(err)
	s.amountEqual(950, afterQC.FinalAmount)
	s.Equal(domain.StatusPendingBilling, afterQC.Status())

	approved, _, err := s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), billerID)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, approved.Status())
	s.amountEqual(950, approved.FinalAmount)

	stored, err := s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, stored.Status())
	s.Equal(int64(4), stored.Version)
	s.Equal(billerID, stored.LastUpdatedBy)
}

// --- Scenario B ---

func (s *EngineTestSuite) TestScenarioB_PaymentsSettleBill() {
	bill := s.approvedBill(100, 10, 50, 0)

	first, err := s.pay(bill.DisplayNumber, 600)
	s.Require().NoError(err)
	s.amountEqual(950, first.BillTotal)
	s.amountEqual(350, first.Balance)
	s.Equal(domain.PaymentPartial, first.Status)
	s.Regexp(`^PAY-\d{13}-\d{4}$`, first.PaymentID)
	s.Equal("Tower A", first.Project)
	s.Equal("Acme Masonry", first.Contractor)

	second, err := s.pay(bill.DisplayNumber, 350)
	s.Require().NoError(err)
	s.amountEqual(0, second.Balance)
	s.Equal(domain.PaymentCompleted, second.Status)

	_, err = s.pay(bill.DisplayNumber, 1)
	s.ErrorIs(err, apperrors.ErrOverpaymentRejected)

	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.amountEqual(950, ledger.TotalPaid)
	s.amountEqual(0, ledger.Balance)
	s.Equal(domain.PaymentCompleted, ledger.Status)
	s.Equal(2, ledger.PaymentCount)
}

// --- Scenario C ---

func (s *EngineTestSuite) TestScenarioC_WeeklyRecordTotal() {
	record, err := s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project:       "Tower A",
		Contractor:    "Acme Labour",
		WeekStartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		WeekEndDate:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Entries: []dto.LabourEntryRequest{{
			LabourType:  "Helper",
			NoOfPersons: decimal.NewFromInt(2),
			Rate:        decimal.NewFromInt(500),
			Hours:       decimal.NewFromInt(8),
		}},
	}, siteID)
	s.Require().NoError(err)

	s.Require().Len(record.Entries, 1)
	s.amountEqual(8000, record.Entries[0].Amount)
	s.amountEqual(8000, record.BaseAmount)
	s.amountEqual(8000, record.FinalAmount)
	s.Equal(domain.StatusPendingPM, record.Status())
	s.Regexp(`^NMR-\d{13}-\d{4}$`, record.DisplayNumber)
}

func (s *EngineTestSuite) TestWeeklyRecord_Validation() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project: "Tower A", Contractor: "Acme", WeekStartDate: start, WeekEndDate: start.AddDate(0, 0, 6),
	}, siteID)
	s.ErrorIs(err, apperrors.ErrEmptyEntrySet)

	_, err = s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project: "Tower A", Contractor: "Acme", WeekStartDate: start, WeekEndDate: start.AddDate(0, 0, -1),
		Entries: []dto.LabourEntryRequest{{NoOfPersons: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1), Hours: decimal.NewFromInt(1)}},
	}, siteID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project: "Tower A", Contractor: "Acme", WeekStartDate: start, WeekEndDate: start,
		Entries: []dto.LabourEntryRequest{{NoOfPersons: decimal.NewFromInt(1), Rate: decimal.NewFromInt(-5), Hours: decimal.NewFromInt(1)}},
	}, siteID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *EngineTestSuite) TestWeeklyRecord_SharesPipeline() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	record, err := s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project: "Tower A", Contractor: "Acme", WeekStartDate: start, WeekEndDate: start.AddDate(0, 0, 6),
		Entries: []dto.LabourEntryRequest{
			{NoOfPersons: decimal.NewFromInt(3), Rate: decimal.NewFromInt(400), Hours: decimal.NewFromInt(8)},
			{NoOfPersons: decimal.NewFromInt(1), Rate: decimal.NewFromInt(600), Hours: decimal.NewFromInt(4)},
		},
	}, siteID)
	s.Require().NoError(err)
	s.amountEqual(12000, record.BaseAmount)

	_, _, err = s.svc.WeeklyRecord.ApproveWeeklyRecordQC(s.ctx, record.ID, stage(true, 0), qcID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)

	_, _, err = s.svc.WeeklyRecord.ApproveWeeklyRecordPM(s.ctx, record.ID, stage(true, 1000), pmID)
	s.Require().NoError(err)
	_, _, err = s.svc.WeeklyRecord.ApproveWeeklyRecordQC(s.ctx, record.ID, stage(true, 500), qcID)
	s.Require().NoError(err)
	approved, _, err := s.svc.WeeklyRecord.ApproveWeeklyRecordBilling(s.ctx, record.ID, billing(true), billerID)
	s.Require().NoError(err)

	s.Equal(domain.StatusApproved, approved.Status())
	s.amountEqual(10500, approved.FinalAmount)
	s.Len(approved.Entries, 2)
}

// --- Scenario D and ordering ---

func (s *EngineTestSuite) TestScenarioD_PMRejectionHaltsPipeline() {
	bill := s.createBill(100, 10)

	rejected, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(false, 200), pmID)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, rejected.Status())
	s.amountEqual(800, rejected.FinalAmount)

	for _, debit := range []int64{0, 10, 5000} {
		_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, debit), qcID)
		s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
	}
	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), billerID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
}

func (s *EngineTestSuite) TestQCBeforePMFails() {
	bill := s.createBill(10, 10)
	for _, approved := range []bool{true, false} {
		_, _, err := s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(approved, 3), qcID)
		s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
	}

	stored, err := s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), stored.Version, "failed transitions persist nothing")
}

func (s *EngineTestSuite) TestBillingBeforeQCFails() {
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), pmID)
	s.Require().NoError(err)

	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), billerID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
}

func (s *EngineTestSuite) TestApprovalRoleGating() {
	bill := s.createBill(10, 10)

	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), qcID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, _, err = s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), strangeID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, _, err = s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), adminID)
	s.Require().NoError(err)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), pmID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), qcID)
	s.Require().NoError(err)
	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), qcID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *EngineTestSuite) TestApprovePM_Idempotent() {
	bill := s.createBill(100, 10)

	first, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 75), pmID)
	s.Require().NoError(err)
	second, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 75), pmID)
	s.Require().NoError(err)

	s.Equal(first.Status(), second.Status())
	s.True(first.FinalAmount.Equal(second.FinalAmount))
	s.Equal(first.Version+1, second.Version, "a repeated call still re-persists")
}

func (s *EngineTestSuite) TestReapprovalAfterRejection() {
	bill := s.createBill(100, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), pmID)
	s.Require().NoError(err)
	rejected, _, err := s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(false, 40), qcID)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, rejected.Status())

	// QC cannot retry on its own; PM is the re-entry point.
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 40), qcID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)

	reopened, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 10), pmID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPendingQC, reopened.Status())
	s.Equal(domain.DecisionPending, reopened.QC.Decision)
	s.amountEqual(40, reopened.QC.Debit)
	s.amountEqual(950, reopened.FinalAmount)

	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), qcID)
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestApprovedUnitIsFrozen() {
	bill := s.approvedBill(10, 10, 0, 0)

	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(false, 0), pmID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 5), qcID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(true), billerID)
	s.ErrorIs(err, apperrors.ErrStageOutOfOrder)
}

func (s *EngineTestSuite) TestBillingRejection() {
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), pmID)
	s.Require().NoError(err)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), qcID)
	s.Require().NoError(err)

	rejected, _, err := s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, billing(false), billerID)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, rejected.Status())

	_, err = s.pay(bill.DisplayNumber, 1)
	s.ErrorIs(err, apperrors.ErrNotApproved)
}

func (s *EngineTestSuite) TestBillingOverride() {
	bill := s.createBill(100, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 33), pmID)
	s.Require().NoError(err)
	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 0), qcID)
	s.Require().NoError(err)

	tooHigh := decimal.NewFromInt(1001)
	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, dto.BillingApprovalRequest{Approved: dto.BoolPtr(true), FinalAmount: &tooHigh}, billerID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	mismatch := "Rejected"
	_, _, err = s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, dto.BillingApprovalRequest{Approved: dto.BoolPtr(true), Status: &mismatch}, billerID)
	s.ErrorIs(err, apperrors.ErrValidation)

	rounded := decimal.NewFromInt(970)
	approved, warnings, err := s.svc.Bill.ApproveBillBilling(s.ctx, bill.ID, dto.BillingApprovalRequest{Approved: dto.BoolPtr(true), FinalAmount: &rounded}, billerID)
	s.Require().NoError(err)
	s.Len(warnings, 1)
	s.amountEqual(970, approved.FinalAmount)
}

func (s *EngineTestSuite) TestDebitClampWarning() {
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 80), pmID)
	s.Require().NoError(err)

	clamped, warnings, err := s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 50), qcID)
	s.Require().NoError(err)
	s.Len(warnings, 1)
	s.amountEqual(0, clamped.FinalAmount)
	s.Equal(domain.StatusPendingBilling, clamped.Status())
}

func (s *EngineTestSuite) TestDebitRejectPolicy() {
	s.newEngine(config.DebitPolicyReject, config.DeletePolicyRestrict)
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 80), pmID)
	s.Require().NoError(err)

	_, _, err = s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, 50), qcID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	stored, err := s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPendingQC, stored.Status(), "rejected transition leaves the unit untouched")
	s.amountEqual(20, stored.FinalAmount)
}

func (s *EngineTestSuite) TestNegativeDebitRejected() {
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, -1), pmID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *EngineTestSuite) TestApproveUnknownBill() {
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, "missing", stage(true, 0), pmID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Payment ledger ---

func (s *EngineTestSuite) TestPayment_Preconditions() {
	bill := s.createBill(10, 10)

	_, err := s.pay(bill.DisplayNumber, 10)
	s.ErrorIs(err, apperrors.ErrNotApproved)

	_, err = s.pay("BILL-0000000000000-0000", 10)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.pay(bill.DisplayNumber, 0)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.svc.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{BillNumber: bill.DisplayNumber, PaidAmount: decimal.NewFromInt(1)}, qcID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *EngineTestSuite) TestLedgerConservation() {
	bill := s.approvedBill(37, 29, 13, 7) // final 1053
	final := bill.FinalAmount
	amounts := []int64{100, 250, 700, 9, 1, 500, 3}

	paid := decimal.Zero
	for _, amount := range amounts {
		payment, err := s.pay(bill.DisplayNumber, amount)
		if err != nil {
			s.ErrorIs(err, apperrors.ErrOverpaymentRejected)
		} else {
			paid = paid.Add(payment.PaidAmount)
			s.True(payment.Balance.Equal(final.Sub(paid)))
		}
		s.True(paid.LessThanOrEqual(final))
	}

	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.True(ledger.TotalPaid.Equal(paid))
	s.True(ledger.Balance.Equal(final.Sub(paid)))
}

func (s *EngineTestSuite) TestDeletePayment_LedgerSelfHeals() {
	bill := s.approvedBill(100, 10, 50, 0)
	first, err := s.pay(bill.DisplayNumber, 600)
	s.Require().NoError(err)
	_, err = s.pay(bill.DisplayNumber, 350)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Payment.DeletePayment(s.ctx, first.ID, deletionSecret, adminID))

	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.amountEqual(350, ledger.TotalPaid)
	s.amountEqual(600, ledger.Balance)
	s.Equal(domain.PaymentPartial, ledger.Status)

	// The freed balance can be paid again.
	again, err := s.pay(bill.DisplayNumber, 600)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, again.Status)
	s.NotEqual(first.PaymentID, again.PaymentID)
}

func (s *EngineTestSuite) TestLedgerPendingBeforeAnyPayment() {
	bill := s.approvedBill(10, 10, 0, 0)
	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, ledger.Status)
	s.Equal(0, ledger.PaymentCount)
	s.amountEqual(100, ledger.Balance)
}

func (s *EngineTestSuite) TestLedgerPendingForUnapprovedBill() {
	bill := s.createBill(10, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 100), pmID)
	s.Require().NoError(err)

	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.amountEqual(0, ledger.BillTotal)
	s.amountEqual(0, ledger.Balance)
	s.Equal(domain.PaymentPending, ledger.Status, "a bill still in review is never settled")

	other := s.createBill(10, 10)
	ledger, err = s.svc.Payment.GetBillLedger(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, ledger.Status)
	s.amountEqual(100, ledger.Balance)
}

func (s *EngineTestSuite) TestLedgerCompletedForZeroApprovedBill() {
	bill := s.approvedBill(10, 10, 100, 0)
	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, ledger.Status)
}

func (s *EngineTestSuite) TestListPaymentsByBill() {
	a := s.approvedBill(10, 10, 0, 0)
	b := s.approvedBill(10, 10, 0, 0)
	_, err := s.pay(a.DisplayNumber, 10)
	s.Require().NoError(err)
	_, err = s.pay(b.DisplayNumber, 20)
	s.Require().NoError(err)
	_, err = s.pay(a.DisplayNumber, 30)
	s.Require().NoError(err)

	resp, err := s.svc.Payment.ListPayments(s.ctx, dto.ListPaymentsParams{BillNumber: a.DisplayNumber})
	s.Require().NoError(err)
	s.Require().Len(resp.Payments, 2)
	s.True(resp.Payments[0].PaymentID > resp.Payments[1].PaymentID, "newest first")
	s.Nil(resp.NextToken)
}

// --- Scenario E and deletion ---

func (s *EngineTestSuite) TestScenarioE_WrongSecretLeavesRecord() {
	bill := s.createBill(10, 10)

	err := s.svc.Bill.DeleteBill(s.ctx, bill.ID, "wrong", adminID)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	stored, err := s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(bill.DisplayNumber, stored.DisplayNumber)
}

func (s *EngineTestSuite) TestDeletion_RoleCheckedBeforeSecret() {
	bill := s.createBill(10, 10)

	err := s.svc.Bill.DeleteBill(s.ctx, bill.ID, deletionSecret, pmID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	err = s.svc.Bill.DeleteBill(s.ctx, bill.ID, "wrong", pmID)
	s.ErrorIs(err, apperrors.ErrForbidden, "non-admins learn nothing about the secret")

	// A bad secret hides whether the target exists.
	err = s.svc.Bill.DeleteBill(s.ctx, "missing", "wrong", adminID)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	err = s.svc.Bill.DeleteBill(s.ctx, "missing", deletionSecret, adminID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.svc.Bill.DeleteBill(s.ctx, bill.ID, deletionSecret, adminID))
	_, err = s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EngineTestSuite) TestDeleteBill_RestrictWithPayments() {
	bill := s.approvedBill(10, 10, 0, 0)
	_, err := s.pay(bill.DisplayNumber, 10)
	s.Require().NoError(err)

	err = s.svc.Bill.DeleteBill(s.ctx, bill.ID, deletionSecret, adminID)
	s.ErrorIs(err, apperrors.ErrHasDependents)
}

func (s *EngineTestSuite) TestDeleteBill_CascadeRemovesPayments() {
	s.newEngine(config.DebitPolicyClamp, config.DeletePolicyCascade)
	bill := s.approvedBill(10, 10, 0, 0)
	payment, err := s.pay(bill.DisplayNumber, 10)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Bill.DeleteBill(s.ctx, bill.ID, deletionSecret, adminID))
	_, err = s.svc.Payment.GetPaymentByID(s.ctx, payment.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EngineTestSuite) TestDeletionDisabledWithoutSecret() {
	store := memory.NewStore()
	s.Require().NoError(store.SaveUser(s.ctx, domain.User{UserID: adminID, Role: domain.RoleAdmin, IsActive: true}))
	svc := services.NewServiceContainer(&config.Config{}, memory.NewRepositoryProvider(store), nil)

	project, err := svc.MasterData.CreateProject(s.ctx, dto.CreateProjectRequest{ProjectName: "Tower B"}, adminID)
	s.Require().NoError(err)

	s.ErrorIs(svc.MasterData.DeleteProject(s.ctx, project.ProjectID, "", adminID), apperrors.ErrUnauthorized)
	s.ErrorIs(svc.MasterData.DeleteProject(s.ctx, project.ProjectID, deletionSecret, adminID), apperrors.ErrUnauthorized)
}

func (s *EngineTestSuite) TestDeleteWeeklyRecordAndMasterData() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	record, err := s.svc.WeeklyRecord.CreateWeeklyRecord(s.ctx, dto.CreateWeeklyRecordRequest{
		Project: "Tower A", Contractor: "Acme", WeekStartDate: start, WeekEndDate: start,
		Entries: []dto.LabourEntryRequest{{NoOfPersons: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1), Hours: decimal.NewFromInt(1)}},
	}, adminID)
	s.Require().NoError(err)
	s.ErrorIs(s.svc.WeeklyRecord.DeleteWeeklyRecord(s.ctx, record.ID, "nope", adminID), apperrors.ErrUnauthorized)
	s.Require().NoError(s.svc.WeeklyRecord.DeleteWeeklyRecord(s.ctx, record.ID, deletionSecret, adminID))

	project, err := s.svc.MasterData.CreateProject(s.ctx, dto.CreateProjectRequest{ProjectName: "Tower A"}, pmID)
	s.Require().NoError(err)
	s.ErrorIs(s.svc.MasterData.DeleteProject(s.ctx, project.ProjectID, deletionSecret, pmID), apperrors.ErrForbidden)
	s.Require().NoError(s.svc.MasterData.DeleteProject(s.ctx, project.ProjectID, deletionSecret, adminID))

	contractor, err := s.svc.MasterData.CreateContractor(s.ctx, dto.CreateContractorRequest{
		ContractorName: "Acme", UnitPrice: decimal.NewFromInt(12), EstimatedQty: decimal.NewFromInt(10),
	}, adminID)
	s.Require().NoError(err)
	s.amountEqual(120, contractor.EstimatedAmount)
	s.Require().NoError(s.svc.MasterData.DeleteContractor(s.ctx, contractor.ContractorID, deletionSecret, adminID))

	s.Require().NoError(s.svc.User.DeleteUser(s.ctx, viewerID, deletionSecret, adminID))
	_, err = s.svc.User.GetUserByID(s.ctx, viewerID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EngineTestSuite) TestUpdateMasterData() {
	project, err := s.svc.MasterData.CreateProject(s.ctx, dto.CreateProjectRequest{ProjectName: "Tower A", ClientName: "Acme"}, adminID)
	s.Require().NoError(err)

	updated, err := s.svc.MasterData.UpdateProject(s.ctx, project.ProjectID, dto.UpdateProjectRequest{
		ProjectName:     "Tower A (Phase 2)",
		ClientName:      "Acme",
		OfficeAddress:   "12 MG Road",
		ContactNumber:   "+91 98450 00000",
		LocationLink1:   "https://maps.example.com/tower-a",
		EstimatedBudget: decimal.NewFromInt(500000),
	}, pmID)
	s.Require().NoError(err)
	s.Equal("Tower A (Phase 2)", updated.ProjectName)
	s.Equal(adminID, updated.CreatedBy, "creation audit is kept")
	s.Equal(pmID, updated.LastUpdatedBy)

	stored, err := s.svc.MasterData.GetProjectByID(s.ctx, project.ProjectID)
	s.Require().NoError(err)
	s.Equal("12 MG Road", stored.OfficeAddress)
	s.Equal("https://maps.example.com/tower-a", stored.LocationLink1)
	s.amountEqual(500000, stored.EstimatedBudget)

	_, err = s.svc.MasterData.UpdateProject(s.ctx, project.ProjectID, dto.UpdateProjectRequest{ProjectName: "Renamed"}, viewerID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.svc.MasterData.UpdateProject(s.ctx, "missing", dto.UpdateProjectRequest{ProjectName: "Renamed"}, adminID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.svc.MasterData.UpdateProject(s.ctx, project.ProjectID, dto.UpdateProjectRequest{
		ProjectName: "Renamed", EstimatedBudget: decimal.RequireFromString("0.00001"),
	}, adminID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	contractor, err := s.svc.MasterData.CreateContractor(s.ctx, dto.CreateContractorRequest{
		ContractorName: "Acme", UnitPrice: decimal.NewFromInt(12), EstimatedQty: decimal.NewFromInt(10),
	}, adminID)
	s.Require().NoError(err)

	changed, err := s.svc.MasterData.UpdateContractor(s.ctx, contractor.ContractorID, dto.UpdateContractorRequest{
		ContractorName: "Acme Masonry", UnitPrice: decimal.NewFromInt(15), EstimatedQty: decimal.NewFromInt(10),
	}, adminID)
	s.Require().NoError(err)
	s.amountEqual(150, changed.EstimatedAmount)

	storedContractor, err := s.svc.MasterData.GetContractorByID(s.ctx, contractor.ContractorID)
	s.Require().NoError(err)
	s.Equal("Acme Masonry", storedContractor.ContractorName)
	s.amountEqual(150, storedContractor.EstimatedAmount)

	_, err = s.svc.MasterData.UpdateContractor(s.ctx, contractor.ContractorID, dto.UpdateContractorRequest{ContractorName: "X"}, siteID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.svc.MasterData.UpdateContractor(s.ctx, "missing", dto.UpdateContractorRequest{ContractorName: "X"}, adminID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Concurrency ---

func (s *EngineTestSuite) TestConcurrentPaymentsNeverOverpay() {
	bill := s.approvedBill(100, 10, 50, 0) // final 950

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted, rejected := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.pay(bill.DisplayNumber, 100)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
				return
			}
			if s.ErrorIs(err, apperrors.ErrOverpaymentRejected) {
				rejected++
			}
		}()
	}
	wg.Wait()

	s.Equal(9, accepted)
	s.Equal(11, rejected)
	ledger, err := s.svc.Payment.GetBillLedger(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.amountEqual(900, ledger.TotalPaid)
	s.amountEqual(50, ledger.Balance)
}

func (s *EngineTestSuite) TestConcurrentApprovalsSerialize() {
	bill := s.createBill(100, 10)
	_, _, err := s.svc.Bill.ApproveBillPM(s.ctx, bill.ID, stage(true, 0), pmID)
	s.Require().NoError(err)

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(debit int64) {
			defer wg.Done()
			_, _, err := s.svc.Bill.ApproveBillQC(s.ctx, bill.ID, stage(true, debit), qcID)
			errs <- err
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err, "per-unit lock prevents version conflicts")
	}
	stored, err := s.svc.Bill.GetBillByID(s.ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal(int64(2+callers), stored.Version)
	s.True(stored.FinalAmount.Equal(stored.BaseAmount.Sub(stored.QC.Debit)))
}

// --- Listing and reporting ---

func (s *EngineTestSuite) TestListBills_PaginationAndFilter() {
	for i := 0; i < 5; i++ {
		s.createBill(1, int64(i+1))
	}
	_ = s.approvedBill(2, 2, 0, 0)

	page, err := s.svc.Bill.ListBills(s.ctx, dto.ListUnitsParams{Limit: 4})
	s.Require().NoError(err)
	s.Len(page.Bills, 4)
	s.Require().NotNil(page.NextToken)

	rest, err := s.svc.Bill.ListBills(s.ctx, dto.ListUnitsParams{Limit: 4, NextToken: *page.NextToken})
	s.Require().NoError(err)
	s.Len(rest.Bills, 2)
	s.Nil(rest.NextToken)
	s.True(page.Bills[3].BillNumber > rest.Bills[0].BillNumber)

	approved, err := s.svc.Bill.ListBills(s.ctx, dto.ListUnitsParams{Status: "Approved"})
	s.Require().NoError(err)
	s.Len(approved.Bills, 1)
	s.Equal("Approved", approved.Bills[0].Status)

	_, err = s.svc.Bill.ListBills(s.ctx, dto.ListUnitsParams{NextToken: "!!!"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EngineTestSuite) TestReportingSummary() {
	approved := s.approvedBill(100, 10, 50, 0) // 950
	_ = s.createBill(10, 10)                   // pending, 100
	_, err := s.pay(approved.DisplayNumber, 600)
	s.Require().NoError(err)

	summary, err := s.svc.Reporting.GetSummary(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, summary.Bills.Count)
	s.Equal(1, summary.Bills.ByStatus["Approved"])
	s.Equal(1, summary.Bills.ByStatus["Pending PM"])
	s.amountEqual(1100, summary.Bills.BaseTotal)
	s.amountEqual(950, summary.Settlement.ApprovedTotal)
	s.amountEqual(600, summary.Settlement.TotalPaid)
	s.amountEqual(350, summary.Settlement.Outstanding)
	s.Equal(1, summary.Settlement.PaymentCount)
	s.Equal(0, summary.WeeklyRecords.Count)
}
