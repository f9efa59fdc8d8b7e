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
	usermodel "sportmeet/app/user/model"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动详情
func NewGetActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetActivityLogic {
	return &GetActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetActivityLogic) GetActivity(req *types.GetActivityRequest) (resp *types.GetActivityResponse, err error) {
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// 1. 查询活动（走缓存）
	activity, err := l.svcCtx.ActivityCache.GetByID(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, model.ErrActivityNotFound) {
			return nil, errorx.ErrActivityNotFound()
		}
		l.Errorf("查询活动详情失败: id=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	// 2. 查询生效报名列表
	regs, err := l.svcCtx.RegistrationModel.ListActiveByActivityID(l.ctx, req.Id)
	if err != nil {
		l.Errorf("查询报名列表失败: id=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	// 3. 批量补齐报名用户信息
	participants, err := l.buildParticipants(regs)
	if err != nil {
		return nil, errorx.ErrDBError(err)
	}

	// 4. 评论数
	commentCount, err := l.svcCtx.CommentModel.CountByActivityID(l.ctx, req.Id)
	if err != nil {
		l.Errorf("查询评论数失败: id=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	return &types.GetActivityResponse{
		ActivityInfo: logic.ConvertActivityToApi(activity),
		Participants: participants,
		CommentCount: commentCount,
	}, nil
}

// buildParticipants 报名记录关联用户信息
func (l *GetActivityLogic) buildParticipants(regs []model.ActivityRegistration) ([]types.ParticipantInfo, error) {
	if len(regs) == 0 {
		return []types.ParticipantInfo{}, nil
	}

	userIDs := make([]uint64, 0, len(regs))
	for _, reg := range regs {
		userIDs = append(userIDs, reg.UserID)
	}

	users, err := l.svcCtx.UserModel.FindByIDs(l.ctx, userIDs)
	if err != nil {
		l.Errorf("批量查询用户失败: err=%v", err)
		return nil, err
	}
	userMap := make(map[uint64]*usermodel.User, len(users))
	for _, u := range users {
		userMap[u.UserID] = u
	}

	participants := make([]types.ParticipantInfo, 0, len(regs))
	for _, reg := range regs {
		info := types.ParticipantInfo{
			UserId:       reg.UserID,
			RegisteredAt: reg.CreatedAt,
		}
		if u, ok := userMap[reg.UserID]; ok {
			info.Nickname = u.Nickname
			info.Avatar = u.Avatar
		}
		participants = append(participants, info)
	}
	return participants, nil
}
