package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ==================== 错误定义 ====================

var ErrCommentNotFound = errors.New("评论不存在")

// MaxCommentLength 评论内容最大长度
const MaxCommentLength = 500

// ==================== ActivityComment 活动评论模型 ====================

type ActivityComment struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	ActivityID uint64 `gorm:"index:idx_activity_id;not null;comment:活动ID" json:"activity_id"`
	UserID     uint64 `gorm:"index:idx_comment_user_id;not null;comment:评论用户ID" json:"user_id"`

	// 冗余作者信息，列表展示免联表
	UserName   string `gorm:"size:64;comment:用户昵称" json:"user_name"`
	UserAvatar string `gorm:"size:255;comment:用户头像" json:"user_avatar"`

	Content string `gorm:"type:varchar(500);not null;comment:评论内容" json:"content"`

	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ActivityComment) TableName() string {
	return "activity_comments"
}

// ==================== ActivityCommentModel 数据访问层 ====================

type ActivityCommentModel struct {
	db *gorm.DB
}

func NewActivityCommentModel(db *gorm.DB) *ActivityCommentModel {
	return &ActivityCommentModel{db: db}
}

// Create 发表评论
func (m *ActivityCommentModel) Create(ctx context.Context, comment *ActivityComment) error {
	return m.db.WithContext(ctx).Create(comment).Error
}

// FindByID 根据ID查询评论
func (m *ActivityCommentModel) FindByID(ctx context.Context, id uint64) (*ActivityComment, error) {
	var comment ActivityComment
	err := m.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByActivityID 分页获取活动评论，按时间倒序
func (m *ActivityCommentModel) ListByActivityID(ctx context.Context, activityID uint64, offset, limit int) ([]ActivityComment, int64, error) {
	var (
		comments []ActivityComment
		total    int64
	)

	query := m.db.WithContext(ctx).Model(&ActivityComment{}).
		Where("activity_id = ?", activityID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// CountByActivityID 统计活动评论数
func (m *ActivityCommentModel) CountByActivityID(ctx context.Context, activityID uint64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&ActivityComment{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	return count, err
}

// Delete 删除评论（软删除，仅作者本人）
func (m *ActivityCommentModel) Delete(ctx context.Context, id, userID uint64) error {
	result := m.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ActivityComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
