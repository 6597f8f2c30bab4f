// Package memory is an in-process repository adapter. It backs the test suites
// and STORAGE_DRIVER=memory deployments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store holds every collection behind one RWMutex. Writes are atomic per call.
type Store struct {
	mu sync.RWMutex

	bills       map[string]domain.Bill
	billNumbers map[string]string // display number -> id
	records     map[string]domain.WeeklyRecord
	payments    map[string]domain.Payment
	projects    map[string]domain.Project
	contractors map[string]domain.Contractor
	users       map[string]domain.User

	// issued remembers every display number and payment id ever stored, so
	// deleted identifiers are never handed out again.
	issued map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		bills:       make(map[string]domain.Bill),
		billNumbers: make(map[string]string),
		records:     make(map[string]domain.WeeklyRecord),
		payments:    make(map[string]domain.Payment),
		projects:    make(map[string]domain.Project),
		contractors: make(map[string]domain.Contractor),
		users:       make(map[string]domain.User),
		issued:      make(map[string]struct{}),
	}
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:         s,
		WeeklyRecordRepo: s,
		PaymentRepo:      s,
		ProjectRepo:      s,
		ContractorRepo:   s,
		UserRepo:         s,
	}
}

var (
	_ portsrepo.BillRepositoryFacade         = (*Store)(nil)
	_ portsrepo.WeeklyRecordRepositoryFacade = (*Store)(nil)
	_ portsrepo.PaymentRepositoryFacade      = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade      = (*Store)(nil)
	_ portsrepo.ContractorRepositoryFacade   = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade         = (*Store)(nil)
)

func (s *Store) claim(identifier string) error {
	if _, taken := s.issued[identifier]; taken {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateIdentifier, identifier)
	}
	s.issued[identifier] = struct{}{}
	return nil
}

// applyApproval copies the approval fields of next onto stored after checking
// the optimistic version.
func applyApproval(stored *domain.PayableUnit, next domain.PayableUnit) error {
	if stored.Version != next.Version {
		return fmt.Errorf("%w: %s is at version %d, update expected %d", apperrors.ErrConflict, stored.DisplayNumber, stored.Version, next.Version)
	}
	stored.PM = next.PM
	stored.QC = next.QC
	stored.Billing = next.Billing
	stored.FinalAmount = next.FinalAmount
	stored.LastUpdatedAt = next.LastUpdatedAt
	stored.LastUpdatedBy = next.LastUpdatedBy
	stored.Version++
	return nil
}

// unitMatches applies the optional list filters.
func unitMatches(u domain.PayableUnit, params portsrepo.ListUnitsParams) bool {
	if params.AfterNumber != "" && u.DisplayNumber >= params.AfterNumber {
		return false
	}
	if params.Status != nil && u.Status() != *params.Status {
		return false
	}
	if params.Project != "" && u.Project != params.Project {
		return false
	}
	if params.Contractor != "" && u.Contractor != params.Contractor {
		return false
	}
	return true
}

// page trims a newest-first slice to limit and returns the cursor for the next page.
func page[T any](items []T, limit int, key func(T) string) ([]T, *string) {
	if limit <= 0 || len(items) <= limit {
		return items, nil
	}
	items = items[:limit]
	next := key(items[len(items)-1])
	return items, &next
}

// --- Bills ---

func (s *Store) SaveBill(ctx context.Context, bill domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bills[bill.ID]; exists {
		return fmt.Errorf("%w: bill %s", apperrors.ErrDuplicate, bill.ID)
	}
	if err := s.claim(bill.DisplayNumber); err != nil {
		return err
	}
	s.bills[bill.ID] = bill
	s.billNumbers[bill.DisplayNumber] = bill.ID
	return nil
}

func (s *Store) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.bills[billID]
	if !ok {
		return nil, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	return &bill, nil
}

func (s *Store) FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.billNumbers[billNumber]
	if !ok {
		return nil, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billNumber)
	}
	bill := s.bills[id]
	return &bill, nil
}

func (s *Store) ListBills(ctx context.Context, params portsrepo.ListUnitsParams) ([]domain.Bill, *string, error) {
	s.mu.RLock()
	bills := make([]domain.Bill, 0, len(s.bills))
	for _, b := range s.bills {
		if unitMatches(b.PayableUnit, params) {
			bills = append(bills, b)
		}
	}
	s.mu.RUnlock()

	sort.Slice(bills, func(i, j int) bool { return bills[i].DisplayNumber > bills[j].DisplayNumber })
	out, next := page(bills, params.Limit, func(b domain.Bill) string { return b.DisplayNumber })
	return out, next, nil
}

func (s *Store) UpdateBillApproval(ctx context.Context, bill domain.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.bills[bill.ID]
	if !ok {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, bill.ID)
	}
	if err := applyApproval(&stored.PayableUnit, bill.PayableUnit); err != nil {
		return err
	}
	s.bills[bill.ID] = stored
	return nil
}

func (s *Store) DeleteBill(ctx context.Context, billID string, cascadePayments bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill, ok := s.bills[billID]
	if !ok {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	var dependents []string
	for id, p := range s.payments {
		if p.BillID == billID {
			dependents = append(dependents, id)
		}
	}
	if len(dependents) > 0 && !cascadePayments {
		return fmt.Errorf("%w: bill %s has %d payments", apperrors.ErrHasDependents, bill.DisplayNumber, len(dependents))
	}
	for _, id := range dependents {
		delete(s.payments, id)
	}
	delete(s.bills, billID)
	delete(s.billNumbers, bill.DisplayNumber)
	return nil
}

// --- Weekly records ---

func copyEntries(entries []domain.LabourEntry) []domain.LabourEntry {
	if entries == nil {
		return nil
	}
	out := make([]domain.LabourEntry, len(entries))
	copy(out, entries)
	return out
}

func (s *Store) SaveWeeklyRecord(ctx context.Context, record domain.WeeklyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; exists {
		return fmt.Errorf("%w: weekly record %s", apperrors.ErrDuplicate, record.ID)
	}
	if err := s.claim(record.DisplayNumber); err != nil {
		return err
	}
	record.Entries = copyEntries(record.Entries)
	s.records[record.ID] = record
	return nil
}

func (s *Store) FindWeeklyRecordByID(ctx context.Context, recordID string) (*domain.WeeklyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[recordID]
	if !ok {
		return nil, fmt.Errorf("%w: weekly record %s", apperrors.ErrNotFound, recordID)
	}
	record.Entries = copyEntries(record.Entries)
	return &record, nil
}

func (s *Store) ListWeeklyRecords(ctx context.Context, params portsrepo.ListUnitsParams) ([]domain.WeeklyRecord, *string, error) {
	s.mu.RLock()
	records := make([]domain.WeeklyRecord, 0, len(s.records))
	for _, r := range s.records {
		if unitMatches(r.PayableUnit, params) {
			r.Entries = copyEntries(r.Entries)
			records = append(records, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].DisplayNumber > records[j].DisplayNumber })
	out, next := page(records, params.Limit, func(r domain.WeeklyRecord) string { return r.DisplayNumber })
	return out, next, nil
}

func (s *Store) UpdateWeeklyRecordApproval(ctx context.Context, record domain.WeeklyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.records[record.ID]
	if !ok {
		return fmt.Errorf("%w: weekly record %s", apperrors.ErrNotFound, record.ID)
	}
	if err := applyApproval(&stored.PayableUnit, record.PayableUnit); err != nil {
		return err
	}
	s.records[record.ID] = stored
	return nil
}

func (s *Store) DeleteWeeklyRecord(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[recordID]; !ok {
		return fmt.Errorf("%w: weekly record %s", apperrors.ErrNotFound, recordID)
	}
	delete(s.records, recordID)
	return nil
}

// --- Payments ---

func (s *Store) sumLocked(billID string) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, p := range s.payments {
		if p.BillID == billID {
			total = total.Add(p.PaidAmount)
			count++
		}
	}
	return total, count
}

func (s *Store) SavePayment(ctx context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bills[payment.BillID]; !ok {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, payment.BillID)
	}
	prior, _ := s.sumLocked(payment.BillID)
	if prior.Add(payment.PaidAmount).GreaterThan(payment.BillTotal) {
		return fmt.Errorf("%w: %s would exceed %s", apperrors.ErrOverpaymentRejected, prior.Add(payment.PaidAmount).String(), payment.BillTotal.String())
	}
	if err := s.claim(payment.PaymentID); err != nil {
		return err
	}
	s.payments[payment.ID] = payment
	return nil
}

func (s *Store) FindPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payment, ok := s.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, id)
	}
	return &payment, nil
}

func (s *Store) ListPayments(ctx context.Context, params portsrepo.ListPaymentsParams) ([]domain.Payment, *string, error) {
	s.mu.RLock()
	payments := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		if params.AfterID != "" && p.PaymentID >= params.AfterID {
			continue
		}
		if params.BillNumber != "" && p.BillNumber != params.BillNumber {
			continue
		}
		payments = append(payments, p)
	}
	s.mu.RUnlock()

	sort.Slice(payments, func(i, j int) bool { return payments[i].PaymentID > payments[j].PaymentID })
	out, next := page(payments, params.Limit, func(p domain.Payment) string { return p.PaymentID })
	return out, next, nil
}

func (s *Store) SumPaymentsForBill(ctx context.Context, billID string) (decimal.Decimal, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total, count := s.sumLocked(billID)
	return total, count, nil
}

func (s *Store) DeletePayment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, id)
	}
	delete(s.payments, id)
	return nil
}
