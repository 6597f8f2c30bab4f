package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/utils/pagination"
)

// Lock key prefixes. A bill and the payments against it share one key.
const (
	lockPrefixBill = "bill:"
	lockPrefixNMR  = "nmr:"
)

// unitAccess adapts one payable-unit kind to the shared approval flow.
type unitAccess[T any] struct {
	kind    string // "bill" or "weekly_record", used in logs and metrics
	lockKey func(id string) string
	load    func(ctx context.Context, id string) (*T, error)
	unit    func(*T) *domain.PayableUnit
	save    func(ctx context.Context, next T) error
}

// transition applies one stage decision to a snapshot of the unit.
type transition func(u *domain.PayableUnit, role domain.Role) ([]string, error)

// runApproval serializes one approval call for a unit: it loads the current
// snapshot under the unit's lock, applies the transition to a copy and persists
// the copy only if the transition succeeded.
func runApproval[T any](ctx context.Context, s *BaseService, acc unitAccess[T], id, actorID string, stage domain.StageName, permitted func(domain.Role) bool, apply transition) (*T, []string, error) {
	logAttrs := []any{slog.String("unit_kind", acc.kind), slog.String("unit_id", id), slog.String("stage", string(stage)), slog.String("user_id", actorID)}

	role, err := s.AuthorizeRole(ctx, actorID, permitted, fmt.Sprintf("approve %s at %s stage", acc.kind, stage))
	if err != nil {
		s.Metrics.Approval(acc.kind, string(stage), metrics.OutcomeDenied)
		return nil, nil, err
	}

	unlock := s.Locks.Lock(acc.lockKey(id))
	defer unlock()

	current, err := acc.load(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to load unit for approval", logAttrs...)
		return nil, nil, err
	}

	next := *current
	u := acc.unit(&next)
	expectedVersion := u.Version

	warnings, err := apply(u, role)
	if err != nil {
		s.Metrics.Approval(acc.kind, string(stage), metrics.OutcomeFailed)
		s.LogFailure(ctx, err, "Approval refused", logAttrs...)
		return nil, nil, err
	}

	u.LastUpdatedAt = s.now()
	u.LastUpdatedBy = actorID
	if err := acc.save(ctx, next); err != nil {
		s.LogFailure(ctx, err, "Failed to persist approval", logAttrs...)
		return nil, nil, err
	}
	u.Version = expectedVersion + 1

	outcome := metrics.OutcomeApproved
	if u.Status() == domain.StatusRejected {
		outcome = metrics.OutcomeRejected
	}
	s.Metrics.Approval(acc.kind, string(stage), outcome)
	for _, w := range warnings {
		s.GetLogger(ctx).Warn("Approval warning", append(logAttrs, slog.String("warning", w))...)
	}
	s.LogInfo(ctx, "Approval recorded", append(logAttrs,
		slog.String("status", u.Status().String()),
		slog.String("final_amount", u.FinalAmount.String()))...)
	return &next, warnings, nil
}

// toRepoListParams converts and validates list query parameters.
func toRepoListParams(limit int, nextToken, status string) (afterNumber string, statusFilter *domain.Status, pageSize int, err error) {
	pageSize = pagination.NormalizeLimit(limit)
	if nextToken != "" {
		afterNumber, err = pagination.DecodeToken(nextToken)
		if err != nil {
			return "", nil, 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	if status != "" {
		parsed, perr := domain.ParseStatus(status)
		if perr != nil {
			return "", nil, 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, perr)
		}
		statusFilter = &parsed
	}
	return afterNumber, statusFilter, pageSize, nil
}

// encodeNext turns a repository cursor into a response token.
func encodeNext(cursor *string) *string {
	if cursor == nil {
		return nil
	}
	token := pagination.EncodeToken(*cursor)
	return &token
}

// saveWithFreshNumber retries insertion with a newly allocated display number
// when the store reports a collision.
func saveWithFreshNumber(ctx context.Context, s *BaseService, prefix string, assign func(number string), save func(ctx context.Context) error) error {
	const attempts = 3
	var err error
	for i := 0; i < attempts; i++ {
		assign(s.IDs.Next(prefix))
		if err = save(ctx); !errors.Is(err, apperrors.ErrDuplicateIdentifier) {
			return err
		}
		s.LogWarn(ctx, err, "Identifier collision, allocating a new one", slog.String("prefix", prefix), slog.Int("attempt", i+1))
	}
	return err
}
