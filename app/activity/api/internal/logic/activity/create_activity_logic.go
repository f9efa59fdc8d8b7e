// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"strings"

	"sportmeet/app/activity/api/internal/logic"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 创建活动
func NewCreateActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateActivityLogic {
	return &CreateActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateActivityLogic) CreateActivity(req *types.CreateActivityRequest) (resp *types.CreateActivityResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 2. 参数校验
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	// 3. 查询创建者信息（冗余到活动记录）
	creator, err := l.svcCtx.UserModel.FindByUserID(l.ctx, uint64(userID))
	if err != nil {
		l.Errorf("查询创建者失败: userID=%d, err=%v", userID, err)
		return nil, errorx.ErrDBError(err)
	}

	// 4. 写入活动
	activity := &model.Activity{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		CreatorID:       creator.UserID,
		CreatorName:     creator.Nickname,
		CreatorAvatar:   creator.Avatar,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        strings.TrimSpace(req.Location),
		MaxParticipants: req.MaxParticipants,
		Fee:             req.Fee,
		Status:          model.StatusOpen,
	}
	if err := l.svcCtx.ActivityModel.Create(l.ctx, activity); err != nil {
		l.Errorf("创建活动失败: userID=%d, err=%v", userID, err)
		return nil, errorx.ErrDBError(err)
	}

	// 5. 发布活动创建事件（异步，不阻塞）
	l.svcCtx.Producer.PublishActivityCreated(l.ctx, activity.ID, activity.CreatorID, activity.Title)

	return &types.CreateActivityResponse{
		ActivityInfo: logic.ConvertActivityToApi(activity),
	}, nil
}

// validateCreateRequest 创建活动参数校验
func validateCreateRequest(req *types.CreateActivityRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errorx.ErrInvalidParams("活动标题不能为空")
	}
	if strings.TrimSpace(req.Location) == "" {
		return errorx.ErrInvalidParams("活动地点不能为空")
	}
	if req.StartTime <= 0 || req.EndTime <= 0 {
		return errorx.ErrInvalidParams("活动时间不能为空")
	}
	if req.EndTime <= req.StartTime {
		return errorx.ErrInvalidParams("结束时间必须晚于开始时间")
	}
	if req.MaxParticipants < 1 {
		return errorx.ErrInvalidParams("最大参与人数至少为1")
	}
	if req.Fee < 0 {
		return errorx.ErrInvalidParams("费用不能为负数")
	}
	return nil
}
