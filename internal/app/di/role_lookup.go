// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/cache"
)

const roleCacheNamespace = "authz:user"

// NewRoleLookup creates the RoleLookup used by the authorization gate.
// ttl が0の場合はキャッシュせず、毎回ストアを参照します。
// Redis が利用可能ならRedis実装を、そうでなければプロセス内LRUを返します。
func NewRoleLookup(rdb *redis.Client, repo usecase.RoleLookup, ttl time.Duration, size int) usecase.RoleLookup {
	if ttl <= 0 {
		return repo
	}
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, roleCacheNamespace)
	}
	return cache.NewMemoryUserRepository(repo, size, ttl)
}
