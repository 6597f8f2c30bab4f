package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// masterDataService manages projects and contractors. Bills and NMRs refer to
// them by free text; nothing here is enforced against those references.
type masterDataService struct {
	BaseService
	projectRepo    portsrepo.ProjectRepositoryFacade
	contractorRepo portsrepo.ContractorRepositoryFacade
}

func NewMasterDataService(projectRepo portsrepo.ProjectRepositoryFacade, contractorRepo portsrepo.ContractorRepositoryFacade, options ...ServiceOption) portssvc.MasterDataSvcFacade {
	return &masterDataService{
		BaseService:    newBaseService(options),
		projectRepo:    projectRepo,
		contractorRepo: contractorRepo,
	}
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

func (s *masterDataService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, actorID string) (*domain.Project, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanManageMasterData, "create a project"); err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount("estimatedBudget", req.EstimatedBudget); err != nil {
		return nil, err
	}

	now := s.now()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		ProjectName:     req.ProjectName,
		ClientName:      req.ClientName,
		SiteAddress:     req.SiteAddress,
		OfficeAddress:   req.OfficeAddress,
		ContactNumber:   req.ContactNumber,
		LocationLink1:   req.LocationLink1,
		LocationLink2:   req.LocationLink2,
		EstimatedBudget: req.EstimatedBudget,
		StartDate:       req.StartDate,
		Status:          req.Status,
		Note:            req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, err
	}
	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *masterDataService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *masterDataService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// UpdateProject replaces the editable fields of a project. Creation audit
// fields are kept.
func (s *masterDataService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, actorID string) (*domain.Project, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanManageMasterData, "update a project"); err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount("estimatedBudget", req.EstimatedBudget); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, err
	}
	project.ProjectName = req.ProjectName
	project.ClientName = req.ClientName
	project.SiteAddress = req.SiteAddress
	project.OfficeAddress = req.OfficeAddress
	project.ContactNumber = req.ContactNumber
	project.LocationLink1 = req.LocationLink1
	project.LocationLink2 = req.LocationLink2
	project.EstimatedBudget = req.EstimatedBudget
	project.StartDate = req.StartDate
	project.Status = req.Status
	project.Note = req.Note
	project.LastUpdatedAt = s.now()
	project.LastUpdatedBy = actorID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogFailure(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

func (s *masterDataService) DeleteProject(ctx context.Context, projectID string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "project", actorID, secret); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.Metrics.Deletion("project", metrics.OutcomeAccepted)
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func (s *masterDataService) CreateContractor(ctx context.Context, req dto.CreateContractorRequest, actorID string) (*domain.Contractor, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanManageMasterData, "create a contractor"); err != nil {
		return nil, err
	}
	estimated, err := accounting.ComputeBillTotal(req.UnitPrice, req.EstimatedQty)
	if err != nil {
		return nil, err
	}

	now := s.now()
	contractor := domain.Contractor{
		ContractorID:    uuid.NewString(),
		ContractorName:  req.ContractorName,
		Project:         req.Project,
		Trade:           req.Trade,
		Unit:            req.Unit,
		UnitPrice:       req.UnitPrice,
		EstimatedQty:    req.EstimatedQty,
		EstimatedAmount: estimated,
		Mobile:          req.Mobile,
		Email:           req.Email,
		Address:         req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.contractorRepo.SaveContractor(ctx, contractor); err != nil {
		s.LogError(ctx, err, "Failed to save contractor", slog.String("contractor_id", contractor.ContractorID))
		return nil, err
	}
	s.LogInfo(ctx, "Contractor created", slog.String("contractor_id", contractor.ContractorID))
	return &contractor, nil
}

func (s *masterDataService) GetContractorByID(ctx context.Context, contractorID string) (*domain.Contractor, error) {
	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contractor", slog.String("contractor_id", contractorID))
		}
		return nil, err
	}
	return contractor, nil
}

func (s *masterDataService) ListContractors(ctx context.Context) ([]domain.Contractor, error) {
	contractors, err := s.contractorRepo.ListContractors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contractors")
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	if contractors == nil {
		return []domain.Contractor{}, nil
	}
	return contractors, nil
}

// UpdateContractor replaces the editable fields of a contractor and recomputes
// its estimated amount.
func (s *masterDataService) UpdateContractor(ctx context.Context, contractorID string, req dto.UpdateContractorRequest, actorID string) (*domain.Contractor, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanManageMasterData, "update a contractor"); err != nil {
		return nil, err
	}
	estimated, err := accounting.ComputeBillTotal(req.UnitPrice, req.EstimatedQty)
	if err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.FindContractorByID(ctx, contractorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contractor", slog.String("contractor_id", contractorID))
		}
		return nil, err
	}
	contractor.ContractorName = req.ContractorName
	contractor.Project = req.Project
	contractor.Trade = req.Trade
	contractor.Unit = req.Unit
	contractor.UnitPrice = req.UnitPrice
	contractor.EstimatedQty = req.EstimatedQty
	contractor.EstimatedAmount = estimated
	contractor.Mobile = req.Mobile
	contractor.Email = req.Email
	contractor.Address = req.Address
	contractor.LastUpdatedAt = s.now()
	contractor.LastUpdatedBy = actorID

	if err := s.contractorRepo.UpdateContractor(ctx, *contractor); err != nil {
		s.LogFailure(ctx, err, "Failed to update contractor", slog.String("contractor_id", contractorID))
		return nil, err
	}
	s.LogInfo(ctx, "Contractor updated", slog.String("contractor_id", contractorID))
	return contractor, nil
}

func (s *masterDataService) DeleteContractor(ctx context.Context, contractorID string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "contractor", actorID, secret); err != nil {
		return err
	}
	if err := s.contractorRepo.DeleteContractor(ctx, contractorID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete contractor", slog.String("contractor_id", contractorID))
		return err
	}
	s.Metrics.Deletion("contractor", metrics.OutcomeAccepted)
	s.LogInfo(ctx, "Contractor deleted", slog.String("contractor_id", contractorID))
	return nil
}
