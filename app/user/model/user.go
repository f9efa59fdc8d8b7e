/**
 * @projectName: SportMeet
 * @package: model
 * @className: User
 * @author: lijunqi
 * @description: 用户基础信息实体及数据访问层
 * @date: 2026-08-10
 * @version: 1.0
 */

package model

import (
	"context"
	"errors"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// UserStatus 用户状态
const (
	// UserStatusDisabled 禁用
	UserStatusDisabled int8 = 0
	// UserStatusNormal 正常
	UserStatusNormal int8 = 1
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// User 用户基础信息实体
type User struct {
	// 用户主键ID
	UserID uint64 `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	// 外部身份标识（第三方登录的唯一凭据）
	OpenID string `gorm:"uniqueIndex:uk_open_id;column:open_id;size:64;not null" json:"open_id"`
	// 用户昵称
	Nickname string `gorm:"column:nickname;size:50;not null" json:"nickname"`
	// 邮箱
	Email string `gorm:"column:email;size:100;default:''" json:"email"`
	// 头像URL
	Avatar string `gorm:"column:avatar;size:500;default:''" json:"avatar"`
	// 用户状态：0-禁用，1-正常
	Status int8 `gorm:"column:status;not null;default:1" json:"status"`
	// 创建时间
	CreatedAt int64 `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// 更新时间
	UpdatedAt int64 `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IUserModel 用户数据访问层接口
type IUserModel interface {
	// Create 创建用户
	Create(ctx context.Context, user *User) error
	// FindByUserID 根据用户ID查询
	FindByUserID(ctx context.Context, userID uint64) (*User, error)
	// FindByOpenID 根据外部身份标识查询
	FindByOpenID(ctx context.Context, openID string) (*User, error)
	// FindOrCreateByOpenID 登录用：存在则返回，不存在则创建
	FindOrCreateByOpenID(ctx context.Context, openID, nickname, avatar string) (*User, error)
	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
	// UpdateProfile 更新昵称/头像等展示信息
	UpdateProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error
	// FindByIDs 根据ID列表查询
	FindByIDs(ctx context.Context, ids []uint64) ([]*User, error)
}

// 确保 UserModel 实现 IUserModel 接口
var _ IUserModel = (*UserModel)(nil)

// UserModel 用户数据访问层
type UserModel struct {
	db *gorm.DB
}

// NewUserModel 创建用户Model实例
func NewUserModel(db *gorm.DB) IUserModel {
	return &UserModel{db: db}
}

// Create 创建用户
func (m *UserModel) Create(ctx context.Context, user *User) error {
	return m.db.WithContext(ctx).Create(user).Error
}

// FindByUserID 根据用户ID查询
func (m *UserModel) FindByUserID(ctx context.Context, userID uint64) (*User, error) {
	var user User
	err := m.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByOpenID 根据外部身份标识查询
func (m *UserModel) FindByOpenID(ctx context.Context, openID string) (*User, error) {
	var user User
	err := m.db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByOpenID 登录用：存在则返回，不存在则创建
//
// 并发首次登录由唯一索引兜底：插入撞重复键时回读已有记录
func (m *UserModel) FindOrCreateByOpenID(ctx context.Context, openID, nickname, avatar string) (*User, error) {
	user, err := m.FindByOpenID(ctx, openID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	newUser := &User{
		OpenID:   openID,
		Nickname: nickname,
		Avatar:   avatar,
		Status:   UserStatusNormal,
	}
	if err := m.db.WithContext(ctx).Create(newUser).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return m.FindByOpenID(ctx, openID)
		}
		return nil, err
	}
	return newUser, nil
}

// Update 更新用户信息
func (m *UserModel) Update(ctx context.Context, user *User) error {
	return m.db.WithContext(ctx).Save(user).Error
}

// UpdateProfile 更新昵称/头像等展示信息
func (m *UserModel) UpdateProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return m.db.WithContext(ctx).
		Model(&User{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}

// FindByIDs 根据ID列表查询
func (m *UserModel) FindByIDs(ctx context.Context, ids []uint64) ([]*User, error) {
	if len(ids) == 0 {
		return []*User{}, nil
	}
	var users []*User
	err := m.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error
	return users, err
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
