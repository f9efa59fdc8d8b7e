package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"
	"sportmeet/common/response"
	"sportmeet/common/utils/jwt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// UserAuthMiddleware 用户认证中间件
// 在 rest.WithJwt 校验签名之后执行，补充业务层校验：
//   - 上下文中必须有合法的 userId
//   - Token 未被登出拉黑
//   - 用户状态正常
type UserAuthMiddleware struct {
	db           *gorm.DB
	redis        *redis.Client
	accessSecret string
}

func NewUserAuthMiddleware(db *gorm.DB, rdb *redis.Client, accessSecret string) *UserAuthMiddleware {
	return &UserAuthMiddleware{db: db, redis: rdb, accessSecret: accessSecret}
}

func (m *UserAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.db == nil {
			response.Fail(w, errorx.ErrInternalError())
			return
		}

		ctx := r.Context()
		userId := ctxdata.GetUserIDFromCtx(ctx)
		if userId <= 0 {
			response.Fail(w, errorx.ErrUnauthorized())
			return
		}

		// 检查黑名单
		if m.redis != nil {
			token := r.Header.Get("Authorization")
			parts := strings.Split(token, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				isBlacklisted, _ := jwt.CheckTokenBlacklist(ctx, m.redis, parts[1], m.accessSecret)
				if isBlacklisted {
					response.Fail(w, errorx.ErrInvalidToken())
					return
				}
			}
		}

		var status int64
		err := m.db.WithContext(ctx).
			Table("users").
			Select("status").
			Where("user_id = ?", userId).
			Take(&status).Error
		if err != nil {
			// Token 有效但账号已不存在，按未授权处理而非存储故障
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(w, errorx.ErrUnauthorized())
				return
			}
			response.Fail(w, errorx.ErrDBError(err))
			return
		}

		if status != 1 {
			response.Fail(w, errorx.New(errorx.CodeUserDisabled))
			return
		}

		next(w, r.WithContext(ctx))
	}
}
