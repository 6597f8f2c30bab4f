package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_billing_app/internal/models"
	"github.com/SscSPs/construction_billing_app/internal/utils/mapping"
	"github.com/SscSPs/construction_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `id, payment_id, bill_id, bill_number, payment_date, paid_amount,
		project, contractor, bill_total, balance, status, ` + auditColumns

func scanPayment(row rowScanner) (models.Payment, error) {
	var m models.Payment
	dest := []any{
		&m.ID, &m.PaymentID, &m.BillID, &m.BillNumber, &m.PaymentDate, &m.PaidAmount,
		&m.Project, &m.Contractor, &m.BillTotal, &m.Balance, &m.Status,
	}
	dest = append(dest, auditDest(&m.AuditFields)...)
	err := row.Scan(dest...)
	return m, err
}

// SavePayment locks the bill row, re-checks the paid total against the
// payment's bill total and inserts the payment, all in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	if err := tx.QueryRow(ctx, `SELECT bill_id FROM bills WHERE bill_id = $1 FOR UPDATE;`, m.BillID).Scan(&locked); err != nil {
		return notFoundOr(err, "failed to lock bill %s", m.BillID)
	}

	var prior decimal.Decimal
	if err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(paid_amount), 0) FROM payments WHERE bill_id = $1;`, m.BillID).Scan(&prior); err != nil {
		return fmt.Errorf("failed to sum payments for bill %s: %w", m.BillID, err)
	}
	if total := prior.Add(m.PaidAmount); total.GreaterThan(m.BillTotal) {
		return fmt.Errorf("%w: %s would exceed %s", apperrors.ErrOverpaymentRejected, total.String(), m.BillTotal.String())
	}

	if err := claimIdentifier(ctx, tx, m.PaymentID); err != nil {
		return err
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	args := []any{
		m.ID, m.PaymentID, m.BillID, m.BillNumber, m.PaymentDate, m.PaidAmount,
		m.Project, m.Contractor, m.BillTotal, m.Balance, m.Status,
	}
	args = append(args, auditArgs(m.AuditFields)...)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s", apperrors.ErrDuplicateIdentifier, m.PaymentID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to find payment by ID %s", id)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, params portsrepo.ListPaymentsParams) ([]domain.Payment, *string, error) {
	pageSize := pagination.NormalizeLimit(params.Limit)
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE ($1 = '' OR payment_id < $1)
			AND ($2 = '' OR bill_number = $2)
		ORDER BY payment_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, params.AfterID, params.BillNumber, pageSize+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	var next *string
	if len(modelPayments) > pageSize {
		modelPayments = modelPayments[:pageSize]
		cursor := modelPayments[pageSize-1].PaymentID
		next = &cursor
	}
	return mapping.ToDomainPaymentSlice(modelPayments), next, nil
}

func (r *PgxPaymentRepository) SumPaymentsForBill(ctx context.Context, billID string) (decimal.Decimal, int, error) {
	var total decimal.Decimal
	var count int
	query := `SELECT COALESCE(SUM(paid_amount), 0), COUNT(*) FROM payments WHERE bill_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, billID).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum payments for bill %s: %w", billID, err)
	}
	return total, count, nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, id string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
