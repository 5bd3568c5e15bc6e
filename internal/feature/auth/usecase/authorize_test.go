package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
)

func TestRolePolicy_Allows(t *testing.T) {
	t.Parallel()

	policy := NewRolePolicy(entity.RoleModerator, entity.RoleAdmin)

	assert.True(t, policy.Allows(entity.RoleAdmin))
	assert.True(t, policy.Allows(entity.RoleModerator))
	assert.False(t, policy.Allows(entity.RoleMember))
	assert.False(t, policy.Allows(""))
	assert.False(t, NewRolePolicy().Allows(entity.RoleAdmin), "empty policy allows nobody")
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	users := map[string]*entity.User{
		"member-1": {ID: "member-1", Role: entity.RoleMember},
		"admin-1":  {ID: "admin-1", Role: entity.RoleAdmin},
		"mod-1":    {ID: "mod-1", Role: entity.RoleModerator},
	}
	lookup := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}

	tests := []struct {
		name    string
		policy  RolePolicy
		userID  string
		wantErr error
	}{
		{"admin allowed on admin route", NewRolePolicy(entity.RoleAdmin), "admin-1", nil},
		{"member rejected on admin route", NewRolePolicy(entity.RoleAdmin), "member-1", domain.ErrForbidden},
		{"moderator rejected on admin route", NewRolePolicy(entity.RoleAdmin), "mod-1", domain.ErrForbidden},
		{"moderator allowed on moderator route", NewRolePolicy(entity.RoleModerator, entity.RoleAdmin), "mod-1", nil},
		{"admin allowed on moderator route", NewRolePolicy(entity.RoleModerator, entity.RoleAdmin), "admin-1", nil},
		{"unknown user rejected", NewRolePolicy(entity.RoleAdmin), "ghost", domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := Authorize(context.Background(), lookup, tt.policy, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, user.ID)
		})
	}
}

func TestAuthorize_LookupFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("database is down")
	lookup := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			return nil, storeErr
		},
	}

	_, err := Authorize(context.Background(), lookup, NewRolePolicy(entity.RoleAdmin), "admin-1")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}
