// ============================================================================
// 路由注册
// ============================================================================
//
// 功能说明：
//   集中管理活动服务的所有 HTTP 路由：
//   - 公开路由（无需认证）：列表、详情、评论列表、健康检查
//   - 认证路由（JWT + 业务鉴权）：创建/更新/删除、报名/取消、评论写操作
//
// 路由命名规范：
//   - RESTful 风格
//   - 资源名使用复数：/activities
//   - 动作使用 HTTP 方法：GET/POST/PUT/DELETE
//
// 中间件执行顺序：
//   CORS -> RequestID -> [JWT -> UserAuth] -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	activityHandler "sportmeet/app/activity/api/internal/handler/activity"
	commentHandler "sportmeet/app/activity/api/internal/handler/comment"
	publicHandler "sportmeet/app/activity/api/internal/handler/public"
	registrationHandler "sportmeet/app/activity/api/internal/handler/registration"
	"sportmeet/app/activity/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 全局中间件 ====================
	// 按执行顺序添加：CORS -> RequestID
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware(next)
	})

	// ==================== 公开路由（无需认证） ====================
	server.AddRoutes(
		[]rest.Route{
			// 健康检查
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: publicHandler.HealthHandler(ctx),
			},
			// 活动列表
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/activities",
				Handler: publicHandler.ListActivityHandler(ctx),
			},
			// 活动详情
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/activities/:id",
				Handler: publicHandler.GetActivityHandler(ctx),
			},
			// 活动评论列表
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/activities/:id/comments",
				Handler: commentHandler.ListCommentHandler(ctx),
			},
		},
	)

	// ==================== 需要认证的路由 ====================
	// rest.WithJwt 校验签名并注入 claims，UserAuth 补充黑名单/用户状态校验
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.UserAuthMiddleware},
			[]rest.Route{
				// 创建活动
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/activities",
					Handler: activityHandler.CreateActivityHandler(ctx),
				},
				// 更新活动（创建者，部分字段）
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/activities/:id",
					Handler: activityHandler.UpdateActivityHandler(ctx),
				},
				// 删除活动（创建者）
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/activities/:id",
					Handler: activityHandler.DeleteActivityHandler(ctx),
				},
				// 报名活动
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/activities/:id/register",
					Handler: registrationHandler.RegisterActivityHandler(ctx),
				},
				// 取消报名
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/activities/:id/register",
					Handler: registrationHandler.UnregisterActivityHandler(ctx),
				},
				// 发表评论
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/activities/:id/comments",
					Handler: commentHandler.CreateCommentHandler(ctx),
				},
				// 删除评论（作者本人）
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/activities/:id/comments/:commentId",
					Handler: commentHandler.DeleteCommentHandler(ctx),
				},
			}...,
		),
		rest.WithJwt(ctx.Config.Auth.AccessSecret),
	)
}
