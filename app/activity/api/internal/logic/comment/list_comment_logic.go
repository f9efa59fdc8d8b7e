// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package comment

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

type ListCommentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动评论列表
func NewListCommentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListCommentLogic {
	return &ListCommentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListCommentLogic) ListComment(req *types.ListCommentRequest) (resp *types.ListCommentResponse, err error) {
	if req.Id == 0 {
		return nil, errorx.ErrInvalidParams("活动ID不能为空")
	}

	// 活动必须存在
	if _, err := l.svcCtx.ActivityCache.GetByID(l.ctx, req.Id); err != nil {
		if errors.Is(err, model.ErrActivityNotFound) {
			return nil, errorx.ErrActivityNotFound()
		}
		return nil, errorx.ErrDBError(err)
	}

	p := model.Pagination{Page: req.Page, PageSize: req.PageSize}
	p.Normalize()

	comments, total, err := l.svcCtx.CommentModel.ListByActivityID(l.ctx, req.Id, p.Offset(), p.PageSize)
	if err != nil {
		l.Errorf("查询评论列表失败: activityId=%d, err=%v", req.Id, err)
		return nil, errorx.ErrDBError(err)
	}

	return &types.ListCommentResponse{
		List:     logic.ConvertCommentsToApi(comments),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
