package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_billing_app/internal/models"
	"github.com/SscSPs/construction_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWeeklyRecordRepository struct {
	BaseRepository
}

func newPgxWeeklyRecordRepository(pool *pgxpool.Pool) portsrepo.WeeklyRecordRepositoryFacade {
	return &PgxWeeklyRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WeeklyRecordRepositoryFacade = (*PgxWeeklyRecordRepository)(nil)

const weeklyRecordColumns = `record_id, nmr_number, project, contractor, trade, engineer_name,
		week_start_date, week_end_date, total, ` + approvalColumns + `, ` + auditColumns

const entryColumns = `record_id, position, entry_date, labour_type, duty, no_of_persons, rate, hours, amount`

func scanWeeklyRecord(row rowScanner) (models.WeeklyRecord, error) {
	var m models.WeeklyRecord
	dest := []any{
		&m.RecordID, &m.NMRNumber, &m.Project, &m.Contractor, &m.Trade, &m.EngineerName,
		&m.WeekStartDate, &m.WeekEndDate, &m.Total,
	}
	dest = append(dest, approvalDest(&m.ApprovalColumns)...)
	dest = append(dest, auditDest(&m.AuditFields)...)
	err := row.Scan(dest...)
	return m, err
}

func scanEntry(row rowScanner) (models.LabourEntry, error) {
	var e models.LabourEntry
	err := row.Scan(&e.RecordID, &e.Position, &e.EntryDate, &e.LabourType, &e.Duty, &e.NoOfPersons, &e.Rate, &e.Hours, &e.Amount)
	return e, err
}

// SaveWeeklyRecord inserts the record, its entries and the claimed number in one transaction.
func (r *PgxWeeklyRecordRepository) SaveWeeklyRecord(ctx context.Context, record domain.WeeklyRecord) error {
	m, entries := mapping.ToModelWeeklyRecord(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := claimIdentifier(ctx, tx, m.NMRNumber); err != nil {
		return err
	}

	query := `
		INSERT INTO weekly_records (` + weeklyRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24);
	`
	args := []any{
		m.RecordID, m.NMRNumber, m.Project, m.Contractor, m.Trade, m.EngineerName,
		m.WeekStartDate, m.WeekEndDate, m.Total,
	}
	args = append(args, approvalArgs(m.ApprovalColumns)...)
	args = append(args, auditArgs(m.AuditFields)...)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: weekly record %s", apperrors.ErrDuplicateIdentifier, m.NMRNumber)
		}
		return fmt.Errorf("failed to insert weekly record %s: %w", m.NMRNumber, err)
	}

	batch := &pgx.Batch{}
	entryQuery := `INSERT INTO weekly_record_entries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	for _, e := range entries {
		batch.Queue(entryQuery, e.RecordID, e.Position, e.EntryDate, e.LabourType, e.Duty, e.NoOfPersons, e.Rate, e.Hours, e.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert weekly record entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWeeklyRecordRepository) FindWeeklyRecordByID(ctx context.Context, recordID string) (*domain.WeeklyRecord, error) {
	query := `SELECT ` + weeklyRecordColumns + ` FROM weekly_records WHERE record_id = $1;`
	m, err := scanWeeklyRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find weekly record by ID %s", recordID)
	}
	entries, err := r.entriesFor(ctx, []string{recordID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainWeeklyRecord(m, entries[recordID])
	return &d, nil
}

// entriesFor loads the entries of the given records keyed by record id, in position order.
func (r *PgxWeeklyRecordRepository) entriesFor(ctx context.Context, recordIDs []string) (map[string][]models.LabourEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM weekly_record_entries
		WHERE record_id = ANY($1)
		ORDER BY record_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly record entries: %w", err)
	}
	defer rows.Close()

	byRecord := make(map[string][]models.LabourEntry, len(recordIDs))
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly record entry: %w", err)
		}
		byRecord[e.RecordID] = append(byRecord[e.RecordID], e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating weekly record entries: %w", rows.Err())
	}
	return byRecord, nil
}

func (r *PgxWeeklyRecordRepository) ListWeeklyRecords(ctx context.Context, params portsrepo.ListUnitsParams) ([]domain.WeeklyRecord, *string, error) {
	args, pageSize := unitListArgs(params)
	query := `
		SELECT ` + weeklyRecordColumns + `
		FROM weekly_records
		WHERE ` + unitListFilter("nmr_number") + `
		ORDER BY nmr_number DESC
		LIMIT $5;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query weekly records: %w", err)
	}
	defer rows.Close()

	modelRecords := []models.WeeklyRecord{}
	for rows.Next() {
		m, err := scanWeeklyRecord(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan weekly record row: %w", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating weekly record rows: %w", rows.Err())
	}
	rows.Close()

	var next *string
	if len(modelRecords) > pageSize {
		modelRecords = modelRecords[:pageSize]
		cursor := modelRecords[pageSize-1].NMRNumber
		next = &cursor
	}

	ids := make([]string, len(modelRecords))
	for i, m := range modelRecords {
		ids[i] = m.RecordID
	}
	entries, err := r.entriesFor(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	records := make([]domain.WeeklyRecord, len(modelRecords))
	for i, m := range modelRecords {
		records[i] = mapping.ToDomainWeeklyRecord(m, entries[m.RecordID])
	}
	return records, next, nil
}

func (r *PgxWeeklyRecordRepository) UpdateWeeklyRecordApproval(ctx context.Context, record domain.WeeklyRecord) error {
	m, _ := mapping.ToModelWeeklyRecord(record)
	query := `
		UPDATE weekly_records
		SET pm_decision = $1, pm_debit = $2, pm_note = $3,
			qc_decision = $4, qc_debit = $5, qc_note = $6,
			billing_decision = $7, billing_note = $8,
			final_amount = $9, status = $10,
			version = version + 1,
			last_updated_at = $11, last_updated_by = $12
		WHERE record_id = $13 AND version = $14;
	`
	a := m.ApprovalColumns
	cmdTag, err := r.Pool.Exec(ctx, query,
		a.PMDecision, a.PMDebit, a.PMNote,
		a.QCDecision, a.QCDebit, a.QCNote,
		a.BillingDecision, a.BillingNote,
		a.FinalAmount, a.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.RecordID, a.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update weekly record approval %s: %w", m.RecordID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, `SELECT 1 FROM weekly_records WHERE record_id = $1;`, m.RecordID, a.Version)
	}
	return nil
}

// DeleteWeeklyRecord removes a record; its entries go with it via ON DELETE CASCADE.
func (r *PgxWeeklyRecordRepository) DeleteWeeklyRecord(ctx context.Context, recordID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM weekly_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete weekly record %s: %w", recordID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
