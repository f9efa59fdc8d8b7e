// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"strings"

	"sportmeet/app/user/api/internal/svc"
	"sportmeet/app/user/api/internal/types"
	"sportmeet/common/errorx"
	"sportmeet/common/utils/jwt"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 用户登录
func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (resp *types.LoginResponse, err error) {
	// 1. 参数校验
	openID := strings.TrimSpace(req.OpenId)
	if openID == "" {
		return nil, errorx.ErrInvalidParams("openId不能为空")
	}
	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		// 首次登录未提供昵称时给默认昵称
		nickname = "用户" + openID[:min(8, len(openID))]
	}

	// 2. 按外部身份查找或创建用户
	user, err := l.svcCtx.UserModel.FindOrCreateByOpenID(l.ctx, openID, nickname, req.Avatar)
	if err != nil {
		l.Errorf("登录创建用户失败: openId=%s, err=%v", openID, err)
		return nil, errorx.ErrDBError(err)
	}
	if user.Status != 1 {
		return nil, errorx.New(errorx.CodeUserDisabled)
	}

	// 3. 签发 Token，jwtId 用于登出黑名单
	result, err := jwt.GenerateToken(int64(user.UserID), jwt.AuthConfig{
		Secret: l.svcCtx.Config.Auth.AccessSecret,
		Expire: l.svcCtx.Config.Auth.AccessExpire,
	}, uuid.New().String())
	if err != nil {
		l.Errorf("签发Token失败: userId=%d, err=%v", user.UserID, err)
		return nil, errorx.ErrInternalError()
	}

	return &types.LoginResponse{
		AccessToken: result.Token,
		ExpireAt:    result.ExpireAt,
		UserInfo: types.UserInfo{
			UserId:    user.UserID,
			OpenId:    user.OpenID,
			Nickname:  user.Nickname,
			Email:     user.Email,
			Avatar:    user.Avatar,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
