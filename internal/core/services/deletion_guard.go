package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/utils"
)

// deletionGuard checks the caller's role before the shared secret, so a
// non-admin learns nothing about whether a secret is valid.
type deletionGuard struct {
	roles      portssvc.RoleProvider
	secretHash string
}

// NewDeletionGuard creates a guard validating secrets against a bcrypt hash.
// An empty hash refuses every deletion.
func NewDeletionGuard(roles portssvc.RoleProvider, secretHash string) portssvc.DeletionAuthorizer {
	return &deletionGuard{roles: roles, secretHash: secretHash}
}

var _ portssvc.DeletionAuthorizer = (*deletionGuard)(nil)

func (g *deletionGuard) AuthorizeDeletion(ctx context.Context, actorID string, secret string) error {
	role, err := g.roles.RoleOf(ctx, actorID)
	if err != nil {
		return fmt.Errorf("resolve role of %q: %w", actorID, err)
	}
	if !role.CanDelete() {
		return fmt.Errorf("%w: role %q cannot delete records", apperrors.ErrForbidden, role)
	}
	if g.secretHash == "" || secret == "" || !utils.CheckSecretHash(secret, g.secretHash) {
		return fmt.Errorf("%w: deletion secret rejected", apperrors.ErrUnauthorized)
	}
	return nil
}
