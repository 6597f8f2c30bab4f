package repositories

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
)

// ListUnitsParams selects a page of payable units, newest display number first.
type ListUnitsParams struct {
	Limit       int
	AfterNumber string         // Exclusive cursor: only units with a smaller display number
	Status      *domain.Status // Optional filter on the derived status
	Project     string         // Optional exact-match filter
	Contractor  string         // Optional exact-match filter
}

// BillReader defines read operations for bill data
type BillReader interface {
	// FindBillByID retrieves a bill by its opaque id.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBillByNumber retrieves a bill by its display number.
	FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error)

	// ListBills returns one page of bills and the display number to continue after, if any.
	ListBills(ctx context.Context, params ListUnitsParams) ([]domain.Bill, *string, error)
}

// BillWriter defines write operations for bill data
type BillWriter interface {
	// SaveBill inserts a new bill. A display number clash yields apperrors.ErrDuplicateIdentifier.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBillApproval writes the stage fields, final amount and derived status in one
	// statement, guarded by bill.Version. The stored version is incremented.
	UpdateBillApproval(ctx context.Context, bill domain.Bill) error

	// DeleteBill removes a bill. With cascadePayments false a bill that still has
	// payments is refused with apperrors.ErrHasDependents.
	DeleteBill(ctx context.Context, billID string, cascadePayments bool) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// WeeklyRecordReader defines read operations for NMR data
type WeeklyRecordReader interface {
	FindWeeklyRecordByID(ctx context.Context, recordID string) (*domain.WeeklyRecord, error)
	ListWeeklyRecords(ctx context.Context, params ListUnitsParams) ([]domain.WeeklyRecord, *string, error)
}

// WeeklyRecordWriter defines write operations for NMR data
type WeeklyRecordWriter interface {
	// SaveWeeklyRecord inserts a record together with its entries.
	SaveWeeklyRecord(ctx context.Context, record domain.WeeklyRecord) error

	// UpdateWeeklyRecordApproval behaves like BillWriter.UpdateBillApproval.
	UpdateWeeklyRecordApproval(ctx context.Context, record domain.WeeklyRecord) error

	DeleteWeeklyRecord(ctx context.Context, recordID string) error
}

// WeeklyRecordRepositoryFacade combines all NMR-related repository interfaces
type WeeklyRecordRepositoryFacade interface {
	WeeklyRecordReader
	WeeklyRecordWriter
}
