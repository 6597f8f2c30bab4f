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

// --- Projects ---

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, project_name, client_name, site_address, office_address, contact_number,
		location_link_1, location_link_2, estimated_budget, start_date, status, note, ` + auditColumns

func scanProject(row rowScanner) (models.Project, error) {
	var m models.Project
	dest := []any{
		&m.ProjectID, &m.ProjectName, &m.ClientName, &m.SiteAddress, &m.OfficeAddress, &m.ContactNumber,
		&m.LocationLink1, &m.LocationLink2, &m.EstimatedBudget, &m.StartDate, &m.Status, &m.Note,
	}
	err := row.Scan(append(dest, auditDest(&m.AuditFields)...)...)
	return m, err
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	args := []any{
		m.ProjectID, m.ProjectName, m.ClientName, m.SiteAddress, m.OfficeAddress, m.ContactNumber,
		m.LocationLink1, m.LocationLink2, m.EstimatedBudget, m.StartDate, m.Status, m.Note,
	}
	if _, err := r.Pool.Exec(ctx, query, append(args, auditArgs(m.AuditFields)...)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project %s", apperrors.ErrDuplicate, m.ProjectID)
		}
		return fmt.Errorf("failed to insert project %s: %w", m.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	m, err := scanProject(r.Pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE project_id = $1;`, projectID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find project by ID %s", projectID)
	}
	d := mapping.ToDomainProject(m)
	return &d, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY project_name, project_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, mapping.ToDomainProject(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		UPDATE projects
		SET project_name = $2, client_name = $3, site_address = $4, office_address = $5,
			contact_number = $6, location_link_1 = $7, location_link_2 = $8, estimated_budget = $9,
			start_date = $10, status = $11, note = $12, last_updated_at = $13, last_updated_by = $14
		WHERE project_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProjectID, m.ProjectName, m.ClientName, m.SiteAddress, m.OfficeAddress,
		m.ContactNumber, m.LocationLink1, m.LocationLink2, m.EstimatedBudget,
		m.StartDate, m.Status, m.Note, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", m.ProjectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Contractors ---

type PgxContractorRepository struct {
	BaseRepository
}

func newPgxContractorRepository(pool *pgxpool.Pool) portsrepo.ContractorRepositoryFacade {
	return &PgxContractorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractorRepositoryFacade = (*PgxContractorRepository)(nil)

const contractorColumns = `contractor_id, contractor_name, project, trade, unit, unit_price,
		estimated_qty, estimated_amount, mobile, email, address, ` + auditColumns

func scanContractor(row rowScanner) (models.Contractor, error) {
	var m models.Contractor
	dest := []any{
		&m.ContractorID, &m.ContractorName, &m.Project, &m.Trade, &m.Unit, &m.UnitPrice,
		&m.EstimatedQty, &m.EstimatedAmount, &m.Mobile, &m.Email, &m.Address,
	}
	err := row.Scan(append(dest, auditDest(&m.AuditFields)...)...)
	return m, err
}

func (r *PgxContractorRepository) SaveContractor(ctx context.Context, contractor domain.Contractor) error {
	m := mapping.ToModelContractor(contractor)
	query := `INSERT INTO contractors (` + contractorColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	args := []any{
		m.ContractorID, m.ContractorName, m.Project, m.Trade, m.Unit, m.UnitPrice,
		m.EstimatedQty, m.EstimatedAmount, m.Mobile, m.Email, m.Address,
	}
	if _, err := r.Pool.Exec(ctx, query, append(args, auditArgs(m.AuditFields)...)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: contractor %s", apperrors.ErrDuplicate, m.ContractorID)
		}
		return fmt.Errorf("failed to insert contractor %s: %w", m.ContractorID, err)
	}
	return nil
}

func (r *PgxContractorRepository) FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	m, err := scanContractor(r.Pool.QueryRow(ctx, `SELECT `+contractorColumns+` FROM contractors WHERE contractor_id = $1;`, contractorID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find contractor by ID %s", contractorID)
	}
	d := mapping.ToDomainContractor(m)
	return &d, nil
}

func (r *PgxContractorRepository) ListContractors(ctx context.Context) ([]domain.Contractor, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+contractorColumns+` FROM contractors ORDER BY contractor_name, contractor_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contractors: %w", err)
	}
	defer rows.Close()

	contractors := []domain.Contractor{}
	for rows.Next() {
		m, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor row: %w", err)
		}
		contractors = append(contractors, mapping.ToDomainContractor(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contractor rows: %w", rows.Err())
	}
	return contractors, nil
}

func (r *PgxContractorRepository) UpdateContractor(ctx context.Context, contractor domain.Contractor) error {
	m := mapping.ToModelContractor(contractor)
	query := `
		UPDATE contractors
		SET contractor_name = $2, project = $3, trade = $4, unit = $5, unit_price = $6,
			estimated_qty = $7, estimated_amount = $8, mobile = $9, email = $10, address = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE contractor_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ContractorID, m.ContractorName, m.Project, m.Trade, m.Unit, m.UnitPrice,
		m.EstimatedQty, m.EstimatedAmount, m.Mobile, m.Email, m.Address,
		m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update contractor %s: %w", m.ContractorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractorRepository) DeleteContractor(ctx context.Context, contractorID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM contractors WHERE contractor_id = $1;`, contractorID)
	if err != nil {
		return fmt.Errorf("failed to delete contractor %s: %w", contractorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
