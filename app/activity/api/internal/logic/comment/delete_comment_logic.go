// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package comment

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

type DeleteCommentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 删除评论（仅作者本人）
func NewDeleteCommentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteCommentLogic {
	return &DeleteCommentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteCommentLogic) DeleteComment(req *types.DeleteCommentRequest) (resp *types.DeleteCommentResponse, err error) {
	// 1. 获取当前用户 ID
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.CommentId == 0 {
		return nil, errorx.ErrInvalidParams("评论ID不能为空")
	}

	// 2. 评论必须存在且属于该活动
	comment, err := l.svcCtx.CommentModel.FindByID(l.ctx, req.CommentId)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return nil, errorx.ErrCommentNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}
	if comment.ActivityID != req.Id {
		return nil, errorx.ErrCommentNotFound()
	}

	// 3. 删除（模型层带作者条件，非作者删除返回不存在）
	if err := l.svcCtx.CommentModel.Delete(l.ctx, req.CommentId, uint64(userID)); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			// 记录存在但不属于当前用户
			return nil, errorx.ErrForbidden()
		}
		l.Errorf("删除评论失败: commentId=%d, userID=%d, err=%v", req.CommentId, userID, err)
		return nil, errorx.ErrDBError(err)
	}

	return &types.DeleteCommentResponse{Result: true}, nil
}
