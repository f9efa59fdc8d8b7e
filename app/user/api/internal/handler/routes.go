// ============================================================================
// 路由注册
// ============================================================================
//
// 功能说明：
//   用户服务路由：
//   - 公开路由：登录
//   - 认证路由：登出、个人主页
//
// 中间件执行顺序：
//   CORS -> RequestID -> [JWT -> UserAuth] -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	userHandler "sportmeet/app/user/api/internal/handler/user"
	"sportmeet/app/user/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware(next)
	})

	// ==================== 公开路由（无需认证） ====================
	server.AddRoutes(
		[]rest.Route{
			// 登录
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/user/login",
				Handler: userHandler.LoginHandler(ctx),
			},
		},
	)

	// ==================== 需要认证的路由 ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.UserAuthMiddleware},
			[]rest.Route{
				// 登出
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/user/logout",
					Handler: userHandler.LogoutHandler(ctx),
				},
				// 个人主页
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/user/profile",
					Handler: userHandler.ProfileHandler(ctx),
				},
			}...,
		),
		rest.WithJwt(ctx.Config.Auth.AccessSecret),
	)
}
