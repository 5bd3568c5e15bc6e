package cache

import (
	"strings"

	"auth_backend/internal/feature/auth/domain/entity"
)

// cachedUser is the projection stored in caches. It never carries the password hash.
type cachedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toCached(u *entity.User) cachedUser {
	return cachedUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func (c cachedUser) toEntity() *entity.User {
	return &entity.User{ID: c.ID, Name: c.Name, Email: c.Email, Role: c.Role}
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
