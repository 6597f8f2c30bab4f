package repositories

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
)

// ProjectRepositoryFacade stores project master data.
type ProjectRepositoryFacade interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// UpdateProject replaces a stored project. A missing project yields apperrors.ErrNotFound.
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ContractorRepositoryFacade stores contractor master data.
type ContractorRepositoryFacade interface {
	SaveContractor(ctx context.Context, contractor domain.Contractor) error
	FindContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error)
	ListContractors(ctx context.Context) ([]domain.Contractor, error)
	// UpdateContractor replaces a stored contractor. A missing contractor yields apperrors.ErrNotFound.
	UpdateContractor(ctx context.Context, contractor domain.Contractor) error
	DeleteContractor(ctx context.Context, contractorID string) error
}

// UserRepositoryFacade stores principals and their roles.
type UserRepositoryFacade interface {
	// SaveUser inserts or updates a user keyed by UserID.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
