package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	usermodel "sportmeet/app/user/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usermodel.User{}))
	return db
}

func seedAuthUser(t *testing.T, db *gorm.DB, status int8) *usermodel.User {
	t.Helper()
	user := &usermodel.User{
		OpenID:   "ou_auth_test",
		Nickname: "小张",
		Status:   usermodel.UserStatusNormal,
	}
	require.NoError(t, db.Create(user).Error)
	// gorm 对零值字段会落默认值，禁用状态单独更新
	if status != usermodel.UserStatusNormal {
		require.NoError(t, db.Model(&usermodel.User{}).
			Where("user_id = ?", user.UserID).
			Update("status", status).Error)
		user.Status = status
	}
	return user
}

// doAuthRequest 以指定用户身份走一遍认证中间件
func doAuthRequest(m *UserAuthMiddleware, userID int64) (*httptest.ResponseRecorder, bool) {
	var nextCalled bool
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	if userID > 0 {
		req = req.WithContext(ctxdata.WithUserID(context.Background(), userID))
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, nextCalled
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestAuthNormalUserPasses(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedAuthUser(t, db, usermodel.UserStatusNormal)
	m := NewUserAuthMiddleware(db, nil, "test-secret")

	rec, nextCalled := doAuthRequest(m, int64(user.UserID))
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMissingIdentity(t *testing.T) {
	db := newAuthTestDB(t)
	m := NewUserAuthMiddleware(db, nil, "test-secret")

	rec, nextCalled := doAuthRequest(m, 0)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errorx.CodeUnauthorized, decodeCode(t, rec))
}

// Token 合法但账号已注销：应返回未授权，而不是存储故障
func TestAuthDeletedUserUnauthorized(t *testing.T) {
	db := newAuthTestDB(t)
	m := NewUserAuthMiddleware(db, nil, "test-secret")

	rec, nextCalled := doAuthRequest(m, 9999)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errorx.CodeUnauthorized, decodeCode(t, rec))
}

func TestAuthDisabledUserForbidden(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedAuthUser(t, db, usermodel.UserStatusDisabled)
	m := NewUserAuthMiddleware(db, nil, "test-secret")

	rec, nextCalled := doAuthRequest(m, int64(user.UserID))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, errorx.CodeUserDisabled, decodeCode(t, rec))
}
