// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package comment

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"sportmeet/app/activity/api/internal/logic"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateCommentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 发表评论
func NewCreateCommentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateCommentLogic {
	return &CreateCommentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateCommentLogic) CreateComment(req *types.CreateCommentRequest) (resp *types.CreateCommentResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	// 2. 参数校验
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errorx.ErrInvalidParams("评论内容不能为空")
	}
	if utf8.RuneCountInString(content) > model.MaxCommentLength {
		return nil, errorx.ErrInvalidParams("评论内容不能超过500字")
	}

	// 3. 活动必须存在
	if _, err := l.svcCtx.ActivityCache.GetByID(l.ctx, req.Id); err != nil {
		if errors.Is(err, model.ErrActivityNotFound) {
			return nil, errorx.ErrActivityNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}

	// 4. 查询评论人信息（冗余到评论记录）
	user, err := l.svcCtx.UserModel.FindByUserID(l.ctx, uint64(userID))
	if err != nil {
		l.Errorf("查询用户失败: userID=%d, err=%v", userID, err)
		return nil, errorx.ErrDBError(err)
	}

	// 5. 写入评论
	comment := &model.ActivityComment{
		ActivityID: req.Id,
		UserID:     user.UserID,
		UserName:   user.Nickname,
		UserAvatar: user.Avatar,
		Content:    content,
	}
	if err := l.svcCtx.CommentModel.Create(l.ctx, comment); err != nil {
		l.Errorf("创建评论失败: activityId=%d, userID=%d, err=%v", req.Id, userID, err)
		return nil, errorx.ErrDBError(err)
	}

	return &types.CreateCommentResponse{
		CommentInfo: logic.ConvertCommentToApi(comment),
	}, nil
}
