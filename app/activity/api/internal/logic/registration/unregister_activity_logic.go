// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package registration

import (
	"context"
	"errors"

	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消报名
func NewUnregisterActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterActivityLogic {
	return &UnregisterActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UnregisterActivityLogic) UnregisterActivity(req *types.UnregisterActivityRequest) (resp *types.UnregisterActivityResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// 2. 熔断保护下执行取消事务
	var current uint32
	err = l.svcCtx.RegistrationBreaker.DoWithFallbackAcceptable(
		func() error {
			var txErr error
			current, txErr = l.svcCtx.RegistrationModel.Cancel(l.ctx, req.Id, uint64(userID))
			return txErr
		},
		func(err error) error {
			return breaker.ErrServiceUnavailable
		},
		isBizOutcome,
	)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRegistrationNotFound):
			return nil, errorx.ErrRegistrationNotFound()
		case errors.Is(err, breaker.ErrServiceUnavailable):
			l.Errorf("取消报名熔断: activityId=%d, userId=%d", req.Id, userID)
			return nil, errorx.New(errorx.CodeServiceUnavailable)
		default:
			l.Errorf("取消报名失败: activityId=%d, userId=%d, err=%v", req.Id, userID, err)
			return nil, errorx.ErrDBError(err)
		}
	}

	// 3. 失效详情缓存（人数已变化）
	_ = l.svcCtx.ActivityCache.Invalidate(l.ctx, req.Id)

	// 4. 发布取消报名事件（异步，不阻塞）
	l.svcCtx.Producer.PublishMemberLeft(l.ctx, req.Id, uint64(userID))

	return &types.UnregisterActivityResponse{
		ActivityId:          req.Id,
		CurrentParticipants: current,
	}, nil
}
