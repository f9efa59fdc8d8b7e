package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCRUD(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 10, StatusOpen)
	require.NotZero(t, activity.ID)

	got, err := model.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "周末羽毛球", got.Title)
	assert.Equal(t, uint32(10), got.RemainingSlots())
	assert.True(t, got.IsOpen())

	// 软删除后不可见
	require.NoError(t, model.SoftDelete(ctx, activity.ID))
	_, err = model.FindByID(ctx, activity.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUpdateFieldsOptimisticLock(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 10, StatusOpen)

	err := model.UpdateFields(ctx, activity.ID, activity.Version, map[string]interface{}{
		"title": "改期的羽毛球局",
	})
	require.NoError(t, err)

	got, err := model.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "改期的羽毛球局", got.Title)
	assert.Equal(t, activity.Version+1, got.Version)
	// 未显式更新的字段保持不变
	assert.Equal(t, "市体育馆 3 号场", got.Location)

	// 旧版本号更新被拒绝
	err = model.UpdateFields(ctx, activity.ID, activity.Version, map[string]interface{}{
		"title": "迟到的修改",
	})
	assert.ErrorIs(t, err, ErrActivityConcurrentUpdate)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	activity := seedActivity(t, db, 10, StatusOpen)

	require.NoError(t, model.UpdateStatus(ctx, activity.ID, activity.Version, StatusClosed))
	got, err := model.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, got.Status)

	// 过期版本号被乐观锁拦下
	err = model.UpdateStatus(ctx, activity.ID, activity.Version, StatusCancelled)
	assert.ErrorIs(t, err, ErrActivityConcurrentUpdate)
}

func TestActivityList(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedActivity(t, db, 10, StatusOpen)
	}
	closed := seedActivity(t, db, 10, StatusClosed)

	// 全部
	result, err := model.List(ctx, &ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)
	assert.Len(t, result.List, 4)
	assert.Equal(t, 1, result.TotalPages)

	// 按状态筛选
	result, err = model.List(ctx, &ListQuery{Status: StatusClosed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, closed.ID, result.List[0].ID)

	// 按创建者筛选
	result, err = model.List(ctx, &ListQuery{CreatorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)
	result, err = model.List(ctx, &ListQuery{CreatorID: 999})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
}

func TestActivityListPagination(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedActivity(t, db, 10, StatusOpen)
	}

	result, err := model.List(ctx, &ListQuery{Pagination: Pagination{Page: 2, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Total)
	assert.Len(t, result.List, 2)
	assert.Equal(t, 3, result.TotalPages)

	// 超出范围的页返回空列表而非错误
	result, err = model.List(ctx, &ListQuery{Pagination: Pagination{Page: 50, PageSize: 10}})
	require.NoError(t, err)
	assert.Empty(t, result.List)

	// 超深分页拒绝
	_, err = model.List(ctx, &ListQuery{Pagination: Pagination{Page: MaxPage + 1, PageSize: 10}})
	assert.ErrorIs(t, err, ErrPageTooDeep)
}

func TestActivityListSort(t *testing.T) {
	db := newTestDB(t)
	model := NewActivityModel(db)
	ctx := context.Background()

	a := seedActivity(t, db, 10, StatusOpen)
	b := seedActivity(t, db, 10, StatusOpen)
	regModel := NewActivityRegistrationModel(db)
	_, _, err := regModel.Register(ctx, b.ID, 100)
	require.NoError(t, err)

	// 热度排序：报名人数多的在前
	result, err := model.List(ctx, &ListQuery{Sort: "hot"})
	require.NoError(t, err)
	require.Len(t, result.List, 2)
	assert.Equal(t, b.ID, result.List[0].ID)
	assert.Equal(t, a.ID, result.List[1].ID)
}
