package services

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
)

// RoleProvider resolves the caller's role for authorization checks.
type RoleProvider interface {
	// RoleOf returns the effective role of userID. Unknown users are viewers.
	RoleOf(ctx context.Context, userID string) (domain.Role, error)
}

// DeletionAuthorizer guards every destructive operation.
type DeletionAuthorizer interface {
	// AuthorizeDeletion checks the caller's role first and the shared secret second.
	AuthorizeDeletion(ctx context.Context, actorID string, secret string) error
}
