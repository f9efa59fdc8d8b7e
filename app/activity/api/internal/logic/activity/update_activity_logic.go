// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"errors"
	"strings"

	"sportmeet/app/activity/api/internal/logic"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 更新活动（创建者，部分字段）
func NewUpdateActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateActivityLogic {
	return &UpdateActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateActivityLogic) UpdateActivity(req *types.UpdateActivityRequest) (resp *types.UpdateActivityResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// 2. 查询活动（取最新版本号，不走缓存）
	activity, err := l.svcCtx.ActivityModel.FindByID(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, model.ErrActivityNotFound) {
			return nil, errorx.ErrActivityNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}

	// 3. 仅创建者可修改
	if activity.CreatorID != uint64(userID) {
		return nil, errorx.ErrNotCreator()
	}

	// 4. 组装更新字段，未提供的字段保持不变
	fields, err := l.buildUpdateFields(req, activity)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return &types.UpdateActivityResponse{
			ActivityInfo: logic.ConvertActivityToApi(activity),
		}, nil
	}

	// 5. 乐观锁更新
	if err := l.svcCtx.ActivityModel.UpdateFields(l.ctx, req.Id, activity.Version, fields); err != nil {
		if errors.Is(err, model.ErrActivityConcurrentUpdate) {
			return nil, errorx.NewWithMessage(errorx.CodeInvalidParams, "活动已被修改，请刷新后重试")
		}
		l.Errorf("更新活动失败: id=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	// 6. 失效详情缓存
	_ = l.svcCtx.ActivityCache.Invalidate(l.ctx, req.Id)

	// 7. 状态变为取消时发布事件
	if newStatus, ok := fields["status"].(int8); ok && newStatus == model.StatusCancelled {
		l.svcCtx.Producer.PublishActivityCancelled(l.ctx, req.Id, uint64(userID), "创建者取消活动")
	}

	// 8. 返回最新数据
	updated, err := l.svcCtx.ActivityModel.FindByID(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}
	return &types.UpdateActivityResponse{
		ActivityInfo: logic.ConvertActivityToApi(updated),
	}, nil
}

// buildUpdateFields 组装部分更新字段并校验
func (l *UpdateActivityLogic) buildUpdateFields(req *types.UpdateActivityRequest, activity *model.Activity) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errorx.ErrInvalidParams("活动标题不能为空")
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			return nil, errorx.ErrInvalidParams("活动地点不能为空")
		}
		fields["location"] = location
	}

	startTime := activity.StartTime
	endTime := activity.EndTime
	if req.StartTime != nil {
		startTime = *req.StartTime
		fields["start_time"] = startTime
	}
	if req.EndTime != nil {
		endTime = *req.EndTime
		fields["end_time"] = endTime
	}
	if endTime <= startTime {
		return nil, errorx.ErrInvalidParams("结束时间必须晚于开始时间")
	}

	if req.MaxParticipants != nil {
		if *req.MaxParticipants < 1 {
			return nil, errorx.ErrInvalidParams("最大参与人数至少为1")
		}
		// 名额不能压到已报名人数以下
		if *req.MaxParticipants < activity.CurrentParticipants {
			return nil, errorx.ErrInvalidParams("最大参与人数不能小于当前报名人数")
		}
		fields["max_participants"] = *req.MaxParticipants
	}
	if req.Fee != nil {
		if *req.Fee < 0 {
			return nil, errorx.ErrInvalidParams("费用不能为负数")
		}
		fields["fee"] = *req.Fee
	}

	if req.Status != nil {
		newStatus := model.StatusFromName(*req.Status)
		if newStatus == 0 {
			return nil, errorx.ErrInvalidParams("不支持的活动状态: " + *req.Status)
		}
		if !model.CanTransition(activity.Status, newStatus) {
			return nil, errorx.ErrStatusTransitInvalid()
		}
		fields["status"] = newStatus
	}

	return fields, nil
}
