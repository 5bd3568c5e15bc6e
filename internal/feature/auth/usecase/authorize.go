package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
)

// RoleLookup is the read side of the user directory needed for authorization.
type RoleLookup interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// RolePolicy is the allow-list of roles for a guarded route.
// It is built once when routes are composed and never mutated afterwards.
type RolePolicy struct {
	AllowedRoles map[string]struct{}
}

// NewRolePolicy builds a RolePolicy allowing the given roles.
func NewRolePolicy(roles ...string) RolePolicy {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return RolePolicy{AllowedRoles: allowed}
}

// Allows reports whether role is in the allow-list.
func (p RolePolicy) Allows(role string) bool {
	_, ok := p.AllowedRoles[role]
	return ok
}

// Authorize looks up userID and checks its current role against policy.
// A missing user and a disallowed role both return domain.ErrForbidden;
// lookup failures are returned wrapped.
func Authorize(ctx context.Context, users RoleLookup, policy RolePolicy, userID string) (*entity.User, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("failed to look up user for authorization: %w", err)
	}
	if !policy.Allows(user.Role) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
