package services

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/dto"
)

// MasterDataSvcFacade manages projects and contractors.
type MasterDataSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, actorID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, secret string, actorID string) error

	CreateContractor(ctx context.Context, req dto.CreateContractorRequest, actorID string) (*domain.Contractor, error)
	GetContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error)
	ListContractors(ctx context.Context) ([]domain.Contractor, error)
	UpdateContractor(ctx context.Context, contractorID string, req dto.UpdateContractorRequest, actorID string) (*domain.Contractor, error)
	DeleteContractor(ctx context.Context, contractorID string, secret string, actorID string) error
}

// UserSvcFacade manages principals and doubles as the RoleProvider.
type UserSvcFacade interface {
	RoleProvider
	UpsertUser(ctx context.Context, userID string, req dto.UpsertUserRequest, actorID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string, secret string, actorID string) error
}

// ReportingSvc builds the dashboard summary.
type ReportingSvc interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
}
