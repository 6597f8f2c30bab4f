package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/middleware"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/utils/identifiers"
	"github.com/SscSPs/construction_billing_app/internal/utils/keylock"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Roles        portssvc.RoleProvider
	Deletion     portssvc.DeletionAuthorizer
	Metrics      *metrics.Metrics
	IDs          *identifiers.Allocator
	Locks        *keylock.KeyedMutex
	Clock        func() time.Time
	DebitPolicy  config.DebitPolicy
	DeletePolicy config.DeletePolicy
}

// ServiceOption is a functional option for configuring the shared service collaborators
type ServiceOption func(*BaseService)

// WithRoleProvider sets the source of caller roles.
func WithRoleProvider(roles portssvc.RoleProvider) ServiceOption {
	return func(s *BaseService) {
		s.Roles = roles
	}
}

// WithDeletionAuthorizer sets the guard consulted before every delete.
func WithDeletionAuthorizer(guard portssvc.DeletionAuthorizer) ServiceOption {
	return func(s *BaseService) {
		s.Deletion = guard
	}
}

// WithMetrics adds metrics recording.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithIdentifierAllocator shares one allocator between services.
func WithIdentifierAllocator(ids *identifiers.Allocator) ServiceOption {
	return func(s *BaseService) {
		s.IDs = ids
	}
}

// WithKeyLock shares the per-unit lock table. Services that touch the same
// unit must share it.
func WithKeyLock(locks *keylock.KeyedMutex) ServiceOption {
	return func(s *BaseService) {
		s.Locks = locks
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = now
	}
}

// WithDebitPolicy selects clamping or rejection of over-large debits.
func WithDebitPolicy(p config.DebitPolicy) ServiceOption {
	return func(s *BaseService) {
		s.DebitPolicy = p
	}
}

// WithDeletePolicy selects how bill deletion treats existing payments.
func WithDeletePolicy(p config.DeletePolicy) ServiceOption {
	return func(s *BaseService) {
		s.DeletePolicy = p
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		Clock:        time.Now,
		DebitPolicy:  config.DebitPolicyClamp,
		DeletePolicy: config.DeletePolicyRestrict,
	}
	for _, option := range options {
		option(&base)
	}
	if base.IDs == nil {
		base.IDs = identifiers.NewAllocator(base.Clock)
	}
	if base.Locks == nil {
		base.Locks = keylock.New()
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a rejected request, such as a failed authorization or validation.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs err at Warn for caller mistakes and at Error for everything else.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.IsClientError(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	return s.Clock().UTC()
}

// roleOf resolves the caller's role. Without a provider every caller is a viewer.
func (s *BaseService) roleOf(ctx context.Context, actorID string) (domain.Role, error) {
	if s.Roles == nil {
		return domain.RoleViewer, nil
	}
	role, err := s.Roles.RoleOf(ctx, actorID)
	if err != nil {
		return "", fmt.Errorf("resolve role of %q: %w", actorID, err)
	}
	return role, nil
}

// AuthorizeRole fails with apperrors.ErrForbidden unless allowed accepts the caller's role.
func (s *BaseService) AuthorizeRole(ctx context.Context, actorID string, allowed func(domain.Role) bool, action string) (domain.Role, error) {
	role, err := s.roleOf(ctx, actorID)
	if err != nil {
		return "", err
	}
	if !allowed(role) {
		err := fmt.Errorf("%w: role %q cannot %s", apperrors.ErrForbidden, role, action)
		s.LogWarn(ctx, err, "User not authorized", slog.String("user_id", actorID), slog.String("action", action))
		return "", err
	}
	return role, nil
}

// authorizeDeletion runs the deletion guard and records the outcome.
func (s *BaseService) authorizeDeletion(ctx context.Context, entity, actorID, secret string) error {
	if s.Deletion == nil {
		return fmt.Errorf("%w: deletion is not configured", apperrors.ErrForbidden)
	}
	if err := s.Deletion.AuthorizeDeletion(ctx, actorID, secret); err != nil {
		s.Metrics.Deletion(entity, metrics.OutcomeDenied)
		s.LogWarn(ctx, err, "Deletion denied", slog.String("entity", entity), slog.String("user_id", actorID))
		return err
	}
	return nil
}
