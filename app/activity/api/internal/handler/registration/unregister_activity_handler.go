// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package registration

import (
	"net/http"

	"sportmeet/app/activity/api/internal/logic/registration"
	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 取消报名
func UnregisterActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UnregisterActivityRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := registration.NewUnregisterActivityLogic(r.Context(), svcCtx)
		resp, err := l.UnregisterActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
