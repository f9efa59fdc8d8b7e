package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotFound         = errors.New("活动不存在")
	ErrActivityConcurrentUpdate = errors.New("并发更新冲突，请重试")
	ErrPageTooDeep              = errors.New("不支持查看超过100页的数据")
)

// ==================== Activity 活动模型 ====================

type Activity struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 基本信息
	Title       string `gorm:"type:varchar(100);not null;comment:活动标题" json:"title"`
	Description string `gorm:"type:text;comment:活动详情" json:"description"`

	// 创建者信息（冗余存储，避免联表查询）
	CreatorID     uint64 `gorm:"index;not null;comment:创建者用户ID" json:"creator_id"`
	CreatorName   string `gorm:"type:varchar(50);not null;comment:创建者名称" json:"creator_name"`
	CreatorAvatar string `gorm:"type:varchar(500);default:'';comment:创建者头像" json:"creator_avatar"`

	// 时间信息
	StartTime int64 `gorm:"index;not null;comment:活动开始时间" json:"start_time"`
	EndTime   int64 `gorm:"not null;comment:活动结束时间" json:"end_time"`

	// 地点信息
	Location string `gorm:"type:varchar(200);not null;comment:活动地点" json:"location"`

	// 名额与费用
	MaxParticipants     uint32  `gorm:"not null;comment:最大参与人数" json:"max_participants"`
	CurrentParticipants uint32  `gorm:"default:0;comment:当前报名人数" json:"current_participants"`
	Fee                 float64 `gorm:"type:decimal(10,2);default:0;comment:人均费用" json:"fee"`

	// 状态
	Status int8 `gorm:"default:1;index;comment:状态: 1报名中 2已关闭 3已取消" json:"status"`

	// 乐观锁
	Version uint32 `gorm:"default:0;comment:乐观锁版本号" json:"version"`

	// 时间戳
	CreatedAt int64          `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}

// StatusText 获取状态文本
func (a *Activity) StatusText() string {
	if text, ok := StatusText[a.Status]; ok {
		return text
	}
	return "未知"
}

// IsOpen 判断是否开放报名
func (a *Activity) IsOpen() bool {
	return a.Status == StatusOpen
}

// RemainingSlots 剩余名额
func (a *Activity) RemainingSlots() uint32 {
	if a.CurrentParticipants >= a.MaxParticipants {
		return 0
	}
	return a.MaxParticipants - a.CurrentParticipants
}

// ==================== ActivityModel 数据访问层 ====================

type ActivityModel struct {
	db *gorm.DB
}

func NewActivityModel(db *gorm.DB) *ActivityModel {
	return &ActivityModel{db: db}
}

// Create 创建活动
func (m *ActivityModel) Create(ctx context.Context, activity *Activity) error {
	return m.db.WithContext(ctx).Create(activity).Error
}

// FindByID 根据ID查询（包含软删除检查）
func (m *ActivityModel) FindByID(ctx context.Context, id uint64) (*Activity, error) {
	var activity Activity
	err := m.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// FindByIDs 批量查询活动
func (m *ActivityModel) FindByIDs(ctx context.Context, ids []uint64) ([]Activity, error) {
	if len(ids) == 0 {
		return []Activity{}, nil
	}
	var activities []Activity
	err := m.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&activities).Error
	return activities, err
}

// UpdateFields 部分更新活动（带乐观锁）
//
// fields 只包含请求中显式给出的列，未给出的列保持不变
func (m *ActivityModel) UpdateFields(ctx context.Context, id uint64, version uint32, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["version"] = gorm.Expr("version + 1")

	result := m.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityConcurrentUpdate
	}
	return nil
}

// UpdateStatus 更新状态（带乐观锁）
func (m *ActivityModel) UpdateStatus(ctx context.Context, id uint64, oldVersion uint32, newStatus int8) error {
	result := m.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ? AND version = ?", id, oldVersion).
		Updates(map[string]interface{}{
			"status":  newStatus,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityConcurrentUpdate
	}
	return nil
}

// SoftDelete 软删除
func (m *ActivityModel) SoftDelete(ctx context.Context, id uint64) error {
	return m.db.WithContext(ctx).Delete(&Activity{}, id).Error
}

// ==================== 列表查询 ====================

// ListQuery 列表查询条件
type ListQuery struct {
	Pagination
	Status    int8   // 0 = 全部
	CreatorID uint64 // 0 = 全部
	Sort      string // created_at(默认) / start_time / hot
}

// ListResult 列表查询结果
type ListResult struct {
	List       []Activity
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// List 分页列表查询
func (m *ActivityModel) List(ctx context.Context, query *ListQuery) (*ListResult, error) {
	query.Pagination.Normalize()

	// 禁止超深分页
	if query.Page > MaxPage {
		return nil, ErrPageTooDeep
	}

	db := m.db.WithContext(ctx).Model(&Activity{})
	db = m.buildListConditions(db, query)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	db = m.buildListOrder(db, query.Sort)
	var activities []Activity
	if err := db.Offset(query.Offset()).Limit(query.PageSize).Find(&activities).Error; err != nil {
		return nil, err
	}

	totalPages := int(total) / query.PageSize
	if int(total)%query.PageSize > 0 {
		totalPages++
	}

	return &ListResult{
		List:       activities,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	}, nil
}

// buildListConditions 构建查询条件
func (m *ActivityModel) buildListConditions(db *gorm.DB, query *ListQuery) *gorm.DB {
	if query.Status > 0 {
		db = db.Where("status = ?", query.Status)
	}
	if query.CreatorID > 0 {
		db = db.Where("creator_id = ?", query.CreatorID)
	}
	return db
}

// buildListOrder 构建排序
func (m *ActivityModel) buildListOrder(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "hot":
		return db.Order("current_participants DESC, created_at DESC")
	case "start_time":
		return db.Order("start_time ASC")
	default: // created_at
		return db.Order("created_at DESC")
	}
}

// ListByCreator 获取用户创建的活动
func (m *ActivityModel) ListByCreator(ctx context.Context, creatorID uint64, offset, limit int) ([]Activity, error) {
	var activities []Activity
	err := m.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// CountByCreator 统计用户创建的活动数量
func (m *ActivityModel) CountByCreator(ctx context.Context, creatorID uint64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&Activity{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}
