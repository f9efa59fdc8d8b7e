// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"errors"

	activitymodel "sportmeet/app/activity/model"
	"sportmeet/app/user/api/internal/svc"
	"sportmeet/app/user/api/internal/types"
	"sportmeet/app/user/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

// profileSummaryLimit 个人主页活动摘要条数上限
const profileSummaryLimit = 20

type ProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 个人主页
func NewProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProfileLogic {
	return &ProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ProfileLogic) Profile() (resp *types.ProfileResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 2. 查询用户
	user, err := l.svcCtx.UserModel.FindByUserID(l.ctx, uint64(userID))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, errorx.New(errorx.CodeUserNotFound)
		}
		return nil, errorx.ErrDBError(err)
	}

	// 3. 我创建的活动
	created, err := l.svcCtx.ActivityModel.ListByCreator(l.ctx, user.UserID, 0, profileSummaryLimit)
	if err != nil {
		l.Errorf("查询创建的活动失败: userId=%d, err=%v", userID, err)
		return nil, errorx.ErrDBError(err)
	}
	createdCount, err := l.svcCtx.ActivityModel.CountByCreator(l.ctx, user.UserID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	// 4. 我报名的活动（生效报名）
	regs, err := l.svcCtx.RegistrationModel.ListActiveByUserID(l.ctx, user.UserID, 0, profileSummaryLimit)
	if err != nil {
		l.Errorf("查询报名记录失败: userId=%d, err=%v", userID, err)
		return nil, errorx.ErrDBError(err)
	}
	joinedCount, err := l.svcCtx.RegistrationModel.CountActiveByUserID(l.ctx, user.UserID)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	joined, err := l.buildJoinedSummaries(regs)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	return &types.ProfileResponse{
		UserInfo: types.UserInfo{
			UserId:    user.UserID,
			OpenId:    user.OpenID,
			Nickname:  user.Nickname,
			Email:     user.Email,
			Avatar:    user.Avatar,
			CreatedAt: user.CreatedAt,
		},
		CreatedActivities: convertSummaries(created),
		JoinedActivities:  joined,
		CreatedCount:      createdCount,
		JoinedCount:       joinedCount,
	}, nil
}

// buildJoinedSummaries 报名记录关联活动摘要，保持报名时间倒序
func (l *ProfileLogic) buildJoinedSummaries(regs []activitymodel.ActivityRegistration) ([]types.ActivitySummary, error) {
	if len(regs) == 0 {
		return []types.ActivitySummary{}, nil
	}

	ids := make([]uint64, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.ActivityID)
	}
	activities, err := l.svcCtx.ActivityModel.FindByIDs(l.ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*activitymodel.Activity, len(activities))
	for i := range activities {
		byID[activities[i].ID] = &activities[i]
	}

	result := make([]types.ActivitySummary, 0, len(regs))
	for _, reg := range regs {
		activity, ok := byID[reg.ActivityID]
		if !ok {
			// 活动已被删除，摘要中跳过
			continue
		}
		result = append(result, convertSummary(activity))
	}
	return result, nil
}

func convertSummaries(activities []activitymodel.Activity) []types.ActivitySummary {
	result := make([]types.ActivitySummary, 0, len(activities))
	for i := range activities {
		result = append(result, convertSummary(&activities[i]))
	}
	return result
}

func convertSummary(activity *activitymodel.Activity) types.ActivitySummary {
	return types.ActivitySummary{
		Id:                  activity.ID,
		Title:               activity.Title,
		Location:            activity.Location,
		StartTime:           activity.StartTime,
		Status:              activitymodel.StatusName[activity.Status],
		CurrentParticipants: activity.CurrentParticipants,
		MaxParticipants:     activity.MaxParticipants,
	}
}
