// Package cache provides caching decorators for the user lookups made by the authorization guard.
//
// Any cache here trades freshness for latency: a role change becomes visible
// to the guard only after the cached entry expires, so the TTL is the
// staleness window.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

const (
	defaultTTL       = 30 * time.Second
	defaultNamespace = "authz:user"
)

// CachingUserRepository decorates a RoleLookup with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingUserRepository struct {
	inner     usecase.RoleLookup
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RoleLookup = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a RoleLookup with Redis caching.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses "authz:user".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RoleLookup, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a user, checking cache first then falling back to the database.
// Misses are not cached, so a freshly registered user is visible immediately.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out cachedUser
		if err := json.Unmarshal(b, &out); err == nil {
			return out.toEntity(), nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(toCached(u)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// Invalidate drops the cached entry for id.
func (c *CachingUserRepository) Invalidate(ctx context.Context, id string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

// cacheKey generates the cache key for a user id.
func (c *CachingUserRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(id))
}
