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
)

type userService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	bootstrapAdmin string
}

// NewUserService creates the user service. bootstrapAdminID, when set, always
// resolves to admin so a fresh install can assign the first roles.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, bootstrapAdminID string, options ...ServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		BaseService:    newBaseService(options),
		userRepo:       userRepo,
		bootstrapAdmin: bootstrapAdminID,
	}
	if svc.Roles == nil {
		svc.Roles = svc
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RoleOf returns the effective role of userID. Unknown and inactive users are viewers.
func (s *userService) RoleOf(ctx context.Context, userID string) (domain.Role, error) {
	if userID == "" {
		return domain.RoleViewer, nil
	}
	if s.bootstrapAdmin != "" && userID == s.bootstrapAdmin {
		return domain.RoleAdmin, nil
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RoleViewer, nil
		}
		return "", err
	}
	return user.EffectiveRole(), nil
}

func (s *userService) UpsertUser(ctx context.Context, userID string, req dto.UpsertUserRequest, actorID string) (*domain.User, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanManageUsers, "manage users"); err != nil {
		return nil, err
	}
	role := domain.Role(req.Role)
	if userID == "" || !role.Valid() {
		return nil, fmt.Errorf("%w: user id and a known role are required", apperrors.ErrValidation)
	}

	now := s.now()
	user := domain.User{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		IsActive: req.IsActive == nil || *req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	switch {
	case err == nil:
		user.CreatedAt = existing.CreatedAt
		user.CreatedBy = existing.CreatedBy
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to load user", slog.String("target_user_id", userID))
		return nil, err
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	s.LogInfo(ctx, "User role assigned", slog.String("target_user_id", userID), slog.String("role", string(role)), slog.Bool("active", user.IsActive))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("target_user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "user", actorID, secret); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return err
	}
	s.Metrics.Deletion("user", metrics.OutcomeAccepted)
	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}
