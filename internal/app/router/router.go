package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accesshandler "auth_backend/internal/feature/access/transport/handler"
	"auth_backend/internal/feature/auth/domain/entity"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/feature/auth/transport/middleware"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/platform/metrics"
	"auth_backend/internal/shared/ratelimiter"
)

// Deps はルーティングに必要な依存をまとめたものです。
type Deps struct {
	Auth   *authhandler.AuthHandler
	Health *handler.HealthHandler
	Tokens jwtmw.TokenVerifier
	Roles  usecase.RoleLookup

	// 以下は任意。nilなら該当機能を無効化します。
	Metrics     *metrics.Metrics
	AuthLimiter ratelimiter.Limiter
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	if len(d.CORSOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = d.CORSOrigins
		cfg.AddAllowHeaders("Authorization")
		r.Use(cors.New(cfg))
	}

	// 認証不要
	r.GET("/", handler.Root)
	// 導通確認用
	r.GET("/healthz", d.Health.Health)
	r.HEAD("/healthz", d.Health.Health)
	r.OPTIONS("/healthz", d.Health.Health)

	authGroup := r.Group("/api/auth")
	if d.AuthLimiter != nil {
		// クライアントIPごとの試行回数を制限
		authGroup.Use(ratelimiter.Middleware(d.AuthLimiter))
	}
	{
		// 新規ユーザー登録
		authGroup.POST("/register", d.Auth.Register)
		// ログイン（JWT 発行）
		authGroup.POST("/login", d.Auth.Login)
	}

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(d.Tokens))
	{
		api.GET("/users/current", d.Auth.CurrentUser)

		// ロールは毎リクエスト参照し、トークン発行後の変更も反映する
		moderators := usecase.NewRolePolicy(entity.RoleModerator, entity.RoleAdmin)
		api.GET("/moderator", middleware.RequireRole(d.Roles, moderators), accesshandler.Moderator)

		admins := usecase.NewRolePolicy(entity.RoleAdmin)
		api.GET("/admin", middleware.RequireRole(d.Roles, admins), accesshandler.Admin)
	}

	return r
}
