package model

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // 唯一索引冲突统一转为 gorm.ErrDuplicatedKey
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestFindOrCreateByOpenID(t *testing.T) {
	db := newTestDB(t)
	model := NewUserModel(db)
	ctx := context.Background()

	// 首次登录创建
	user, err := model.FindOrCreateByOpenID(ctx, "ou_abc123", "小李", "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.Equal(t, UserStatusNormal, user.Status)

	// 再次登录返回同一用户，不更新昵称
	again, err := model.FindOrCreateByOpenID(ctx, "ou_abc123", "改名的小李", "")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, again.UserID)
	assert.Equal(t, "小李", again.Nickname)
}

func TestFindOrCreateConcurrent(t *testing.T) {
	db := newTestDB(t)
	model := NewUserModel(db)

	var wg sync.WaitGroup
	ids := make([]uint64, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			user, err := model.FindOrCreateByOpenID(context.Background(), "ou_race", "并发用户", "")
			if err == nil {
				ids[idx] = user.UserID
			}
		}(i)
	}
	wg.Wait()

	// 并发首次登录只产生一条记录
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	var count int64
	require.NoError(t, db.Model(&User{}).Where("open_id = ?", "ou_race").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindByUserID(t *testing.T) {
	db := newTestDB(t)
	model := NewUserModel(db)
	ctx := context.Background()

	_, err := model.FindByUserID(ctx, 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	user, err := model.FindOrCreateByOpenID(ctx, "ou_find", "查找用户", "")
	require.NoError(t, err)
	got, err := model.FindByUserID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ou_find", got.OpenID)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	model := NewUserModel(db)
	ctx := context.Background()

	user, err := model.FindOrCreateByOpenID(ctx, "ou_upd", "原昵称", "")
	require.NoError(t, err)

	require.NoError(t, model.UpdateProfile(ctx, user.UserID, map[string]interface{}{
		"nickname": "新昵称",
		"avatar":   "https://cdn.example.com/new.png",
	}))

	got, err := model.FindByUserID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "新昵称", got.Nickname)
	assert.Equal(t, "https://cdn.example.com/new.png", got.Avatar)
}
