// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"net/http"
	"strings"

	"sportmeet/app/user/api/internal/svc"
	"sportmeet/app/user/api/internal/types"
	"sportmeet/common/utils/jwt"

	"github.com/zeromicro/go-zero/core/logx"
)

type LogoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	r      *http.Request
}

// 退出登录
func NewLogoutLogic(ctx context.Context, svcCtx *svc.ServiceContext, r *http.Request) *LogoutLogic {
	return &LogoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		r:      r,
	}
}

func (l *LogoutLogic) Logout() (resp *types.LogoutResponse, err error) {
	// 获取 Authorization Header
	authHeader := l.r.Header.Get("Authorization")
	if authHeader == "" {
		return &types.LogoutResponse{Result: true}, nil // 没有 token，视为已登出
	}

	// 去除 "Bearer " 前缀
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return &types.LogoutResponse{Result: true}, nil // 格式不对，忽略
	}
	token := parts[1]

	// Token 加入黑名单，剩余有效期内拒绝访问
	if err := jwt.BlacklistToken(l.ctx, l.svcCtx.RedisClient, token, l.svcCtx.Config.Auth.AccessSecret); err != nil {
		l.Errorf("Token拉黑失败: err=%v", err)
		// 拉黑失败不阻断登出流程，客户端照常丢弃 Token
	}

	return &types.LogoutResponse{Result: true}, nil
}
