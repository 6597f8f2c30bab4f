package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_billing_app/internal/models"
	"github.com/SscSPs/construction_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBillRepository implements portsrepo.BillRepositoryFacade
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, contractor, project, project_date, trade, unit,
		unit_price, quantity, total, description, location, authorized_engineer, ` +
	approvalColumns + `, ` + auditColumns

func scanBill(row rowScanner) (models.Bill, error) {
	var m models.Bill
	dest := []any{
		&m.BillID, &m.BillNumber, &m.Contractor, &m.Project, &m.ProjectDate, &m.Trade, &m.Unit,
		&m.UnitPrice, &m.Quantity, &m.Total, &m.Description, &m.Location, &m.AuthorizedEngineer,
	}
	dest = append(dest, approvalDest(&m.ApprovalColumns)...)
	dest = append(dest, auditDest(&m.AuditFields)...)
	err := row.Scan(dest...)
	return m, err
}

// SaveBill inserts the bill and claims its number in one transaction.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := claimIdentifier(ctx, tx, m.BillNumber); err != nil {
		return err
	}

	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			$25, $26, $27, $28);
	`
	args := []any{
		m.BillID, m.BillNumber, m.Contractor, m.Project, m.ProjectDate, m.Trade, m.Unit,
		m.UnitPrice, m.Quantity, m.Total, m.Description, m.Location, m.AuthorizedEngineer,
	}
	args = append(args, approvalArgs(m.ApprovalColumns)...)
	args = append(args, auditArgs(m.AuditFields)...)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bill %s", apperrors.ErrDuplicateIdentifier, m.BillNumber)
		}
		return fmt.Errorf("failed to insert bill %s: %w", m.BillNumber, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find bill by ID %s", billID)
	}
	d := mapping.ToDomainBill(m)
	return &d, nil
}

func (r *PgxBillRepository) FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_number = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billNumber))
	if err != nil {
		return nil, notFoundOr(err, "failed to find bill by number %s", billNumber)
	}
	d := mapping.ToDomainBill(m)
	return &d, nil
}

func (r *PgxBillRepository) ListBills(ctx context.Context, params portsrepo.ListUnitsParams) ([]domain.Bill, *string, error) {
	args, pageSize := unitListArgs(params)
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE ` + unitListFilter("bill_number") + `
		ORDER BY bill_number DESC
		LIMIT $5;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	modelBills := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		modelBills = append(modelBills, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}

	var next *string
	if len(modelBills) > pageSize {
		modelBills = modelBills[:pageSize]
		cursor := modelBills[pageSize-1].BillNumber
		next = &cursor
	}
	return mapping.ToDomainBillSlice(modelBills), next, nil
}

// UpdateBillApproval rewrites the stage columns and derived status in one
// statement guarded by the expected version.
func (r *PgxBillRepository) UpdateBillApproval(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		UPDATE bills
		SET pm_decision = $1, pm_debit = $2, pm_note = $3,
			qc_decision = $4, qc_debit = $5, qc_note = $6,
			billing_decision = $7, billing_note = $8,
			final_amount = $9, status = $10,
			version = version + 1,
			last_updated_at = $11, last_updated_by = $12
		WHERE bill_id = $13 AND version = $14;
	`
	a := m.ApprovalColumns
	cmdTag, err := r.Pool.Exec(ctx, query,
		a.PMDecision, a.PMDebit, a.PMNote,
		a.QCDecision, a.QCDebit, a.QCNote,
		a.BillingDecision, a.BillingNote,
		a.FinalAmount, a.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.BillID, a.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill approval %s: %w", m.BillID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, `SELECT 1 FROM bills WHERE bill_id = $1;`, m.BillID, a.Version)
	}
	return nil
}

// missingOrStale explains a guarded update that touched no row.
func (r *BaseRepository) missingOrStale(ctx context.Context, existsQuery, id string, version int64) error {
	var one int
	if err := r.Pool.QueryRow(ctx, existsQuery, id).Scan(&one); err != nil {
		return notFoundOr(err, "failed to check %s", id)
	}
	return fmt.Errorf("%w: %s changed since version %d", apperrors.ErrConflict, id, version)
}

// DeleteBill removes the bill. Payments are either refused or removed with it.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string, cascadePayments bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	if err := tx.QueryRow(ctx, `SELECT bill_id FROM bills WHERE bill_id = $1 FOR UPDATE;`, billID).Scan(&locked); err != nil {
		return notFoundOr(err, "failed to lock bill %s", billID)
	}

	var paymentCount int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE bill_id = $1;`, billID).Scan(&paymentCount); err != nil {
		return fmt.Errorf("failed to count payments for bill %s: %w", billID, err)
	}
	if paymentCount > 0 {
		if !cascadePayments {
			return fmt.Errorf("%w: bill %s has %d payments", apperrors.ErrHasDependents, billID, paymentCount)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE bill_id = $1;`, billID); err != nil {
			return fmt.Errorf("failed to delete payments for bill %s: %w", billID, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID); err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	return r.Commit(ctx, tx)
}
