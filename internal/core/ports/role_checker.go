package ports

import (
	"context"

	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
)

// RoleChecker looks up whether a user holds a role. Used for agent
// eligibility checks, where the role claim must come from the user store
// rather than from the caller's own token.
type RoleChecker interface {
	UserHasRole(ctx context.Context, userID kernel.UUID, role actor.Role) (bool, error)
}
