package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

const defaultSize = 1024

// MemoryUserRepository decorates a RoleLookup with an in-process expirable LRU.
// It is used when Redis is unavailable; entries are private to this process.
type MemoryUserRepository struct {
	inner usecase.RoleLookup
	cache *lru.LRU[string, cachedUser]
}

var _ usecase.RoleLookup = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository creates an LRU-backed decorator holding at most size
// entries for ttl each. Non-positive values fall back to defaults.
func NewMemoryUserRepository(inner usecase.RoleLookup, size int, ttl time.Duration) *MemoryUserRepository {
	if size <= 0 {
		size = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryUserRepository{
		inner: inner,
		cache: lru.NewLRU[string, cachedUser](size, nil, ttl),
	}
}

// FindByID serves from the LRU when possible and fills it on a hit in the inner repository.
func (m *MemoryUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if cu, ok := m.cache.Get(id); ok {
		return cu.toEntity(), nil
	}
	u, err := m.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.cache.Add(id, toCached(u))
	return u, nil
}

// Invalidate drops the cached entry for id.
func (m *MemoryUserRepository) Invalidate(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryUserRepository) Len() int {
	return m.cache.Len()
}
