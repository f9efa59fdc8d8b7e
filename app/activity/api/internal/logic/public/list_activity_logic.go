// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package public

import (
	"context"
	"errors"

	"sportmeet/app/activity/api/internal/logic"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动列表
func NewListActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivityLogic {
	return &ListActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListActivityLogic) ListActivity(req *types.ListActivityRequest) (resp *types.ListActivityResponse, err error) {
	// 1. 状态筛选参数校验
	var status int8
	if req.Status != "" {
		status = model.StatusFromName(req.Status)
		if status == 0 {
			return nil, errorx.ErrInvalidParams("不支持的活动状态: " + req.Status)
		}
	}

	// 2. 查询列表
	result, err := l.svcCtx.ActivityModel.List(l.ctx, &model.ListQuery{
		Pagination: model.Pagination{Page: req.Page, PageSize: req.PageSize},
		Status:     status,
		CreatorID:  req.CreatorId,
		Sort:       req.Sort,
	})
	if err != nil {
		if errors.Is(err, model.ErrPageTooDeep) {
			return nil, errorx.ErrInvalidParams(err.Error())
		}
		l.Errorf("查询活动列表失败: err=%v", err)
		return nil, errorx.ErrDBError(err)
	}

	// 3. 转换响应
	return &types.ListActivityResponse{
		List:       logic.ConvertActivitiesToApi(result.List),
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}
