package model

import (
	"context"
	"errors"
	"time"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ==================== 报名状态 ====================

const (
	RegistrationStatusActive    int8 = 1 // 报名生效
	RegistrationStatusCancelled int8 = 2 // 已取消
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotOpen      = errors.New("活动未开放报名")
	ErrActivityFull         = errors.New("活动名额已满")
	ErrAlreadyRegistered    = errors.New("已报名该活动")
	ErrRegistrationNotFound = errors.New("报名记录不存在")
)

// ==================== ActivityRegistration 报名记录模型 ====================

type ActivityRegistration struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	ActivityID uint64 `gorm:"uniqueIndex:uk_activity_user,priority:1;not null;comment:活动ID" json:"activity_id"`
	UserID     uint64 `gorm:"uniqueIndex:uk_activity_user,priority:2;index:idx_user_id;not null;comment:用户ID" json:"user_id"`

	Status     int8  `gorm:"default:1;comment:报名状态: 1生效 2取消" json:"status"`
	CancelTime int64 `gorm:"default:0;comment:取消时间" json:"cancel_time"`

	CreatedAt int64 `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ActivityRegistration) TableName() string {
	return "activity_registrations"
}

// IsActive 判断报名是否生效中
func (r *ActivityRegistration) IsActive() bool {
	return r.Status == RegistrationStatusActive
}

// ==================== ActivityRegistrationModel 数据访问层 ====================

type ActivityRegistrationModel struct {
	db *gorm.DB
}

func NewActivityRegistrationModel(db *gorm.DB) *ActivityRegistrationModel {
	return &ActivityRegistrationModel{db: db}
}

// Register 报名活动
//
// 名额校验与写入在一个事务内完成，防止并发报名超额：
//  1. 读取活动，确认存在且状态为报名中
//  2. 判断是否已有生效报名（同一用户同一活动至多一条生效记录）
//  3. 条件更新占用名额：current_participants < max_participants 且状态仍为报名中，
//     影响行数为 0 说明已满或刚被关闭，整个事务回滚
//  4. 写入报名记录：新用户插入，取消过的用户把原记录置回生效
//
// 名额计数和报名记录在同一事务内提交或回滚，两者不会发散。
// 返回生效的报名记录和更新后的报名人数。
func (m *ActivityRegistrationModel) Register(ctx context.Context, activityID, userID uint64) (*ActivityRegistration, uint32, error) {
	var (
		reg     *ActivityRegistration
		current uint32
	)

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 活动必须存在且开放报名
		var activity Activity
		if err := tx.Where("id = ?", activityID).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}
			return err
		}
		if activity.Status != StatusOpen {
			return ErrActivityNotOpen
		}

		// 2. 重复报名检查
		var existing ActivityRegistration
		err := tx.Where("activity_id = ? AND user_id = ?", activityID, userID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hasRecord := err == nil
		if hasRecord && existing.Status == RegistrationStatusActive {
			return ErrAlreadyRegistered
		}

		// 3. 原子占用名额（状态和容量在同一条件更新内再次断言）
		result := tx.Model(&Activity{}).
			Where("id = ? AND status = ? AND current_participants < max_participants",
				activityID, StatusOpen).
			Update("current_participants", gorm.Expr("current_participants + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 区分已满和已关闭
			var latest Activity
			if err := tx.Where("id = ?", activityID).First(&latest).Error; err != nil {
				return err
			}
			if latest.Status != StatusOpen {
				return ErrActivityNotOpen
			}
			return ErrActivityFull
		}

		// 4. 写入/恢复报名记录
		if hasRecord {
			res := tx.Model(&ActivityRegistration{}).
				Where("id = ? AND status = ?", existing.ID, RegistrationStatusCancelled).
				Updates(map[string]interface{}{
					"status":      RegistrationStatusActive,
					"cancel_time": 0,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// 并发恢复，另一请求已生效
				return ErrAlreadyRegistered
			}
			existing.Status = RegistrationStatusActive
			existing.CancelTime = 0
			reg = &existing
		} else {
			newReg := &ActivityRegistration{
				ActivityID: activityID,
				UserID:     userID,
				Status:     RegistrationStatusActive,
			}
			if err := tx.Create(newReg).Error; err != nil {
				if isDuplicateKeyErr(err) {
					// 并发插入兜底：唯一索引拦截了第二条记录
					return ErrAlreadyRegistered
				}
				return err
			}
			reg = newReg
		}

		// 5. 事务内重读计数，事务开头预读的值在并发下已经过期
		var updated Activity
		if err := tx.Select("current_participants").
			Where("id = ?", activityID).
			First(&updated).Error; err != nil {
			return err
		}
		current = updated.CurrentParticipants
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return reg, current, nil
}

// Cancel 取消报名
//
// 与 Register 对称：报名记录置为取消、名额计数减一在同一事务内完成。
// 状态条件更新保证并发重复取消只有一次生效。
func (m *ActivityRegistrationModel) Cancel(ctx context.Context, activityID, userID uint64) (uint32, error) {
	var current uint32

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing ActivityRegistration
		err := tx.Where("activity_id = ? AND user_id = ?", activityID, userID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if existing.Status != RegistrationStatusActive {
			return ErrRegistrationNotFound
		}

		// 状态条件更新：并发取消只有一个事务能走到这里之后
		res := tx.Model(&ActivityRegistration{}).
			Where("id = ? AND status = ?", existing.ID, RegistrationStatusActive).
			Updates(map[string]interface{}{
				"status":      RegistrationStatusCancelled,
				"cancel_time": time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRegistrationNotFound
		}

		// 名额计数减一（下溢防护）
		result := tx.Model(&Activity{}).
			Where("id = ? AND current_participants > 0", activityID).
			Update("current_participants", gorm.Expr("current_participants - 1"))
		if result.Error != nil {
			return result.Error
		}

		var activity Activity
		if err := tx.Where("id = ?", activityID).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 活动已被删除，报名记录照常取消
				return nil
			}
			return err
		}
		current = activity.CurrentParticipants
		return nil
	})
	if err != nil {
		return 0, err
	}
	return current, nil
}

// FindByActivityUser 根据活动ID和用户ID查询
func (m *ActivityRegistrationModel) FindByActivityUser(ctx context.Context, activityID, userID uint64) (*ActivityRegistration, error) {
	var reg ActivityRegistration
	err := m.db.WithContext(ctx).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// ListActiveByActivityID 获取活动的生效报名列表
func (m *ActivityRegistrationModel) ListActiveByActivityID(ctx context.Context, activityID uint64) ([]ActivityRegistration, error) {
	var regs []ActivityRegistration
	err := m.db.WithContext(ctx).
		Where("activity_id = ? AND status = ?", activityID, RegistrationStatusActive).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

// CountActiveByActivityID 统计活动的生效报名数（真实计数，对账用）
func (m *ActivityRegistrationModel) CountActiveByActivityID(ctx context.Context, activityID uint64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&ActivityRegistration{}).
		Where("activity_id = ? AND status = ?", activityID, RegistrationStatusActive).
		Count(&count).Error
	return count, err
}

// ListActiveByUserID 获取用户的生效报名列表
func (m *ActivityRegistrationModel) ListActiveByUserID(ctx context.Context, userID uint64, offset, limit int) ([]ActivityRegistration, error) {
	var regs []ActivityRegistration
	err := m.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, RegistrationStatusActive).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&regs).Error
	return regs, err
}

// CountActiveByUserID 统计用户的生效报名数
func (m *ActivityRegistrationModel) CountActiveByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&ActivityRegistration{}).
		Where("user_id = ? AND status = ?", userID, RegistrationStatusActive).
		Count(&count).Error
	return count, err
}

// isDuplicateKeyErr 判断是否为重复键错误
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqlerr.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
