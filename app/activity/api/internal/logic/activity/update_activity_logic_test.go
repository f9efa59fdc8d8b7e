// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"testing"
	"time"

	"sportmeet/app/activity/api/internal/svc"
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
	"sportmeet/common/ctxdata"
	"sportmeet/common/errorx"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestSvcCtx 构造仅含数据层的服务上下文
// 缓存与事件发布为空实例，写路径对二者都做了降级处理
func newTestSvcCtx(t *testing.T) *svc.ServiceContext {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Activity{}, &model.ActivityRegistration{}, &model.ActivityComment{}))

	return &svc.ServiceContext{
		DB:                db,
		ActivityModel:     model.NewActivityModel(db),
		RegistrationModel: model.NewActivityRegistrationModel(db),
		CommentModel:      model.NewActivityCommentModel(db),
	}
}

func seedOwnedActivity(t *testing.T, svcCtx *svc.ServiceContext, creatorID uint64) *model.Activity {
	t.Helper()
	now := time.Now().Unix()
	activity := &model.Activity{
		Title:           "周三夜跑",
		Description:     "滨江大道 5 公里",
		CreatorID:       creatorID,
		CreatorName:     "组局人",
		StartTime:       now + 86400,
		EndTime:         now + 90000,
		Location:        "滨江大道北门",
		MaxParticipants: 10,
		Status:          model.StatusOpen,
	}
	require.NoError(t, svcCtx.ActivityModel.Create(context.Background(), activity))
	return activity
}

func ctxWithUser(userID int64) context.Context {
	return ctxdata.WithUserID(context.Background(), userID)
}

// 非创建者修改活动：拒绝且字段不变
func TestUpdateActivityNonCreatorForbidden(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	activity := seedOwnedActivity(t, svcCtx, 100)

	newTitle := "被篡改的标题"
	logic := NewUpdateActivityLogic(ctxWithUser(200), svcCtx)
	resp, err := logic.UpdateActivity(&types.UpdateActivityRequest{
		Id:    activity.ID,
		Title: &newTitle,
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.CodeNotCreator))

	// 字段与版本号均未变化
	got, err := svcCtx.ActivityModel.FindByID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.Title, got.Title)
	assert.Equal(t, activity.Version, got.Version)
}

func TestUpdateActivityCreatorSucceeds(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	activity := seedOwnedActivity(t, svcCtx, 100)

	newTitle := "周三夜跑（改期）"
	logic := NewUpdateActivityLogic(ctxWithUser(100), svcCtx)
	resp, err := logic.UpdateActivity(&types.UpdateActivityRequest{
		Id:    activity.ID,
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)

	got, err := svcCtx.ActivityModel.FindByID(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, newTitle, got.Title)
	assert.Equal(t, activity.Version+1, got.Version)
}

// 非创建者删除活动：拒绝且活动仍可见
func TestDeleteActivityNonCreatorForbidden(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	activity := seedOwnedActivity(t, svcCtx, 100)

	logic := NewDeleteActivityLogic(ctxWithUser(200), svcCtx)
	resp, err := logic.DeleteActivity(&types.DeleteActivityRequest{Id: activity.ID})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.CodeNotCreator))

	_, err = svcCtx.ActivityModel.FindByID(context.Background(), activity.ID)
	assert.NoError(t, err)
}

func TestDeleteActivityCreatorSucceeds(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	activity := seedOwnedActivity(t, svcCtx, 100)

	logic := NewDeleteActivityLogic(ctxWithUser(100), svcCtx)
	resp, err := logic.DeleteActivity(&types.DeleteActivityRequest{Id: activity.ID})

	require.NoError(t, err)
	assert.True(t, resp.Result)

	_, err = svcCtx.ActivityModel.FindByID(context.Background(), activity.ID)
	assert.ErrorIs(t, err, model.ErrActivityNotFound)
}
