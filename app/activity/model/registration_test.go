package model

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 初始化内存数据库
// 单连接串行化写入，模拟数据库层的事务隔离
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

	require.NoError(t, db.AutoMigrate(&Activity{}, &ActivityRegistration{}, &ActivityComment{}))
	return db
}

func seedActivity(t *testing.T, db *gorm.DB, maxParticipants uint32, status int8) *Activity {
	t.Helper()
	now := time.Now().Unix()
	activity := &Activity{
		Title:           "周末羽毛球",
		Description:     "约球，新手友好",
		CreatorID:       1,
		CreatorName:     "组局人",
		StartTime:       now + 86400,
		EndTime:         now + 90000,
		Location:        "市体育馆 3 号场",
		MaxParticipants: maxParticipants,
		Fee:             15,
		Status:          status,
	}
	require.NoError(t, NewActivityModel(db).Create(context.Background(), activity))
	return activity
}

func TestRegisterSuccess(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 10, StatusOpen)
	regModel := NewActivityRegistrationModel(db)

	reg, current, err := regModel.Register(context.Background(), activity.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), current)
	assert.Equal(t, RegistrationStatusActive, reg.Status)
	assert.Equal(t, activity.ID, reg.ActivityID)
	assert.Equal(t, uint64(100), reg.UserID)

	// 计数已落库
	got, err := NewActivityModel(db).FindByID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.CurrentParticipants)
}

func TestRegisterActivityNotFound(t *testing.T) {
	db := newTestDB(t)
	regModel := NewActivityRegistrationModel(db)

	_, _, err := regModel.Register(context.Background(), 99999, 100)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestRegisterActivityNotOpen(t *testing.T) {
	db := newTestDB(t)
	regModel := NewActivityRegistrationModel(db)

	closed := seedActivity(t, db, 10, StatusClosed)
	_, _, err := regModel.Register(context.Background(), closed.ID, 100)
	assert.ErrorIs(t, err, ErrActivityNotOpen)

	cancelled := seedActivity(t, db, 10, StatusCancelled)
	_, _, err = regModel.Register(context.Background(), cancelled.ID, 100)
	assert.ErrorIs(t, err, ErrActivityNotOpen)
}

func TestRegisterActivityFull(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 2, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	_, _, err := regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)
	_, current, err := regModel.Register(ctx, activity.ID, 101)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), current)

	_, _, err = regModel.Register(ctx, activity.ID, 102)
	assert.ErrorIs(t, err, ErrActivityFull)

	// 满员报名失败后计数不变
	got, err := NewActivityModel(db).FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.CurrentParticipants)
}

func TestRegisterIdempotent(t *testing.T) {
	db := newTestDB(t)
	// 名额 1：重复报名必须先于满员判定返回，且不占用新名额
	activity := seedActivity(t, db, 1, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	_, _, err := regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)

	_, _, err = regModel.Register(ctx, activity.ID, 100)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	got, err := NewActivityModel(db).FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.CurrentParticipants)
}

func TestCancelAndReRegister(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 1, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	// A 报名占满
	_, _, err := regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)

	// B 报名满员
	_, _, err = regModel.Register(ctx, activity.ID, 101)
	assert.ErrorIs(t, err, ErrActivityFull)

	// A 取消，名额释放
	current, err := regModel.Cancel(ctx, activity.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), current)

	// B 报名成功
	_, current, err = regModel.Register(ctx, activity.ID, 101)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), current)

	// A 的记录保留为取消态
	reg, err := regModel.FindByActivityUser(ctx, activity.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, RegistrationStatusCancelled, reg.Status)
	assert.NotZero(t, reg.CancelTime)
}

func TestReRegisterReactivatesRow(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 5, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	first, _, err := regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)

	_, err = regModel.Cancel(ctx, activity.ID, 100)
	require.NoError(t, err)

	second, _, err := regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)

	// 同一用户同一活动复用原记录，不产生新行
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, RegistrationStatusActive, second.Status)
	assert.Zero(t, second.CancelTime)

	var count int64
	require.NoError(t, db.Model(&ActivityRegistration{}).
		Where("activity_id = ?", activity.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCancelNotRegistered(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 5, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	// 从未报名
	_, err := regModel.Cancel(ctx, activity.ID, 200)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	// 重复取消
	_, _, err = regModel.Register(ctx, activity.ID, 100)
	require.NoError(t, err)
	_, err = regModel.Cancel(ctx, activity.ID, 100)
	require.NoError(t, err)
	_, err = regModel.Cancel(ctx, activity.ID, 100)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

// TestConcurrentRegistration 并发报名不超额
// 100 个用户抢 5 个名额，成功数必须精确等于名额数
func TestConcurrentRegistration(t *testing.T) {
	db := newTestDB(t)
	const capacity = 5
	const attackers = 100
	activity := seedActivity(t, db, capacity, StatusOpen)
	regModel := NewActivityRegistrationModel(db)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		full       int
		seenCounts = make(map[uint32]bool)
	)
	for i := 0; i < attackers; i++ {
		wg.Add(1)
		go func(userID uint64) {
			defer wg.Done()
			_, current, err := regModel.Register(context.Background(), activity.ID, userID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
				seenCounts[current] = true
			case err == ErrActivityFull:
				full++
			default:
				t.Errorf("unexpected error for user %d: %v", userID, err)
			}
		}(uint64(1000 + i))
	}
	wg.Wait()

	assert.Equal(t, capacity, succeeded, "成功报名数应精确等于名额数")
	assert.Equal(t, attackers-capacity, full)

	// 每次成功返回的人数来自事务内重读，并发下不会出现重复值
	assert.Len(t, seenCounts, capacity)
	for i := 1; i <= capacity; i++ {
		assert.True(t, seenCounts[uint32(i)], "缺少返回计数 %d", i)
	}

	// 计数、真实记录数、名额三者一致
	got, err := NewActivityModel(db).FindByID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(capacity), got.CurrentParticipants)

	realCount, err := regModel.CountActiveByActivityID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(capacity), realCount)
}

// TestConcurrentSameUser 同一用户并发重复报名只生效一次
func TestConcurrentSameUser(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 10, StatusOpen)
	regModel := NewActivityRegistrationModel(db)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := regModel.Register(context.Background(), activity.ID, 100)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	got, err := NewActivityModel(db).FindByID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.CurrentParticipants)
}

func TestListAndCountByUser(t *testing.T) {
	db := newTestDB(t)
	regModel := NewActivityRegistrationModel(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		activity := seedActivity(t, db, 10, StatusOpen)
		_, _, err := regModel.Register(ctx, activity.ID, 100)
		require.NoError(t, err)
	}
	extra := seedActivity(t, db, 10, StatusOpen)
	_, _, err := regModel.Register(ctx, extra.ID, 100)
	require.NoError(t, err)
	_, err = regModel.Cancel(ctx, extra.ID, 100)
	require.NoError(t, err)

	// 取消的报名不计入
	count, err := regModel.CountActiveByUserID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	regs, err := regModel.ListActiveByUserID(ctx, 100, 0, 10)
	require.NoError(t, err)
	assert.Len(t, regs, 3)
}

func TestCommentLifecycle(t *testing.T) {
	db := newTestDB(t)
	activity := seedActivity(t, db, 10, StatusOpen)
	commentModel := NewActivityCommentModel(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, commentModel.Create(ctx, &ActivityComment{
			ActivityID: activity.ID,
			UserID:     100,
			UserName:   "小王",
			Content:    fmt.Sprintf("第 %d 条评论", i+1),
		}))
	}

	comments, total, err := commentModel.ListByActivityID(ctx, activity.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, comments, 3)

	// 非作者删除无效
	err = commentModel.Delete(ctx, comments[0].ID, 999)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	// 作者删除生效
	require.NoError(t, commentModel.Delete(ctx, comments[0].ID, 100))
	_, total, err = commentModel.ListByActivityID(ctx, activity.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
