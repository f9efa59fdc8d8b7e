// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"fmt"
	"time"

	activitymodel "sportmeet/app/activity/model"
	"sportmeet/app/user/api/internal/config"
	"sportmeet/app/user/model"
	"sportmeet/common/middleware"

	redisv8 "github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config config.Config

	// 数据存储
	DB          *gorm.DB
	RedisClient *redisv8.Client // Token 黑名单

	// Model 层
	UserModel         model.IUserModel
	ActivityModel     *activitymodel.ActivityModel
	RegistrationModel *activitymodel.ActivityRegistrationModel

	// 中间件
	CorsMiddleware      rest.Middleware
	RequestIDMiddleware rest.Middleware
	UserAuthMiddleware  rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 1. 初始化数据库连接
	db := initDB(c.MySQL)

	// 2. 初始化 Redis（Token 黑名单）
	rdb := redisv8.NewClient(&redisv8.Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})

	return &ServiceContext{
		Config: c,

		DB:          db,
		RedisClient: rdb,

		UserModel:         model.NewUserModel(db),
		ActivityModel:     activitymodel.NewActivityModel(db),
		RegistrationModel: activitymodel.NewActivityRegistrationModel(db),

		CorsMiddleware: middleware.NewCorsMiddleware(
			[]string{"*"},
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			[]string{"Content-Type", "Authorization", "X-Request-ID"},
		).Handle,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware().Handle,
		UserAuthMiddleware:  middleware.NewUserAuthMiddleware(db, rdb, c.Auth.AccessSecret).Handle,
	}
}

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := buildMySQLDSN(mysqlConf)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		logx.Errorf("连接数据库失败: %v", err)
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	maxOpenConns := mysqlConf.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 100
	}
	maxIdleConns := mysqlConf.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10
	}
	connMaxLifetime := mysqlConf.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 3600
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Second)

	logx.Info("数据库连接成功")
	return db
}

func buildMySQLDSN(c config.MySQLConfig) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
