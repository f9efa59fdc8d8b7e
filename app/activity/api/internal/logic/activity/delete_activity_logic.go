// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"errors"

	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 删除活动（创建者，软删除）
func NewDeleteActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteActivityLogic {
	return &DeleteActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteActivityLogic) DeleteActivity(req *types.DeleteActivityRequest) (resp *types.DeleteActivityResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// 2. 查询活动
	activity, err := l.svcCtx.ActivityModel.FindByID(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, model.ErrActivityNotFound) {
			return nil, errorx.ErrActivityNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}

	// 3. 仅创建者可删除
	if activity.CreatorID != uint64(userID) {
		return nil, errorx.ErrNotCreator()
	}

	// 4. 软删除
	if err := l.svcCtx.ActivityModel.SoftDelete(l.ctx, req.Id); err != nil {
		l.Errorf("删除活动失败: id=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	// 5. 失效详情缓存
	_ = l.svcCtx.ActivityCache.Invalidate(l.ctx, req.Id)

	return &types.DeleteActivityResponse{Result: true}, nil
}
