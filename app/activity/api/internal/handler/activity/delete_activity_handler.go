// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"net/http"

	"sportmeet/app/activity/api/internal/logic/activity"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 删除活动
func DeleteActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteActivityRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := activity.NewDeleteActivityLogic(r.Context(), svcCtx)
		resp, err := l.DeleteActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
