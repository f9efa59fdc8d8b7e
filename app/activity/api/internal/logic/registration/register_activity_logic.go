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

type RegisterActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
func NewRegisterActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterActivityLogic {
	return &RegisterActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterActivityLogic) RegisterActivity(req *types.RegisterActivityRequest) (resp *types.RegisterActivityResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// ==================== 第一步：限流检查 ====================
	if !l.svcCtx.RegistrationLimiter.AllowCtx(l.ctx) {
		return nil, errorx.ErrTooManyRequests()
	}

	// ==================== 第二步：熔断保护下执行报名事务 ====================
	var (
		reg     *model.ActivityRegistration
		current uint32
	)
	err = l.svcCtx.RegistrationBreaker.DoWithFallbackAcceptable(
		func() error {
			var txErr error
			reg, current, txErr = l.svcCtx.RegistrationModel.Register(l.ctx, req.Id, uint64(userID))
			return txErr
		},
		func(err error) error {
			return breaker.ErrServiceUnavailable
		},
		isBizOutcome,
	)
	if err != nil {
		return nil, l.mapRegisterError(req.Id, userID, err)
	}

	// 3. 失效详情缓存（人数已变化）
	_ = l.svcCtx.ActivityCache.Invalidate(l.ctx, req.Id)

	// 4. 发布报名事件（异步，不阻塞）
	l.svcCtx.Producer.PublishMemberJoined(l.ctx, req.Id, uint64(userID))

	return &types.RegisterActivityResponse{
		ActivityId:          req.Id,
		CurrentParticipants: current,
		RegisteredAt:        reg.CreatedAt,
	}, nil
}

// mapRegisterError 报名业务错误转换
func (l *RegisterActivityLogic) mapRegisterError(activityID uint64, userID int64, err error) error {
	switch {
	case errors.Is(err, model.ErrActivityNotFound):
		return errorx.ErrActivityNotFound()
	case errors.Is(err, model.ErrActivityNotOpen):
		return errorx.ErrActivityNotOpen()
	case errors.Is(err, model.ErrActivityFull):
		return errorx.ErrActivityFull()
	case errors.Is(err, model.ErrAlreadyRegistered):
		return errorx.ErrAlreadyRegistered()
	case errors.Is(err, breaker.ErrServiceUnavailable):
		l.Errorf("报名熔断: activityId=%d, userId=%d", activityID, userID)
		return errorx.New(errorx.CodeServiceUnavailable)
	default:
		l.Errorf("报名失败: activityId=%d, userId=%d, err=%v", activityID, userID, err)
		return errorx.ErrDBError(err)
	}
}

// isBizOutcome 业务结果不计入熔断统计
// 满员、重复报名等是正常业务分支，只有存储层故障才应触发熔断
func isBizOutcome(err error) bool {
	if err == nil {
		return true
	}
	return errors.Is(err, model.ErrActivityNotFound) ||
		errors.Is(err, model.ErrActivityNotOpen) ||
		errors.Is(err, model.ErrActivityFull) ||
		errors.Is(err, model.ErrAlreadyRegistered) ||
		errors.Is(err, model.ErrRegistrationNotFound)
}
