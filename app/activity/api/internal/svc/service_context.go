// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"fmt"
	"time"

	"sportmeet/app/activity/api/internal/cache"
	"sportmeet/app/activity/api/internal/config"
	"sportmeet/app/activity/api/internal/mq"
	"sportmeet/app/activity/model"
	usermodel "sportmeet/app/user/model"
	commonCache "sportmeet/common/cache"
	"sportmeet/common/messaging"
	"sportmeet/common/middleware"

	redisv8 "github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config config.Config

	// 数据存储
	DB          *gorm.DB        // MySQL 连接
	Redis       *redis.Redis    // Redis 客户端（缓存、限流）
	RedisClient *redisv8.Client // go-redis 客户端（Token 黑名单）

	// 高并发、熔断限流组件
	RegistrationLimiter *limit.TokenLimiter
	RegistrationBreaker breaker.Breaker

	// Model 层
	ActivityModel     *model.ActivityModel
	RegistrationModel *model.ActivityRegistrationModel
	CommentModel      *model.ActivityCommentModel
	UserModel         usermodel.IUserModel

	// 缓存层
	ActivityCache *cache.ActivityCache

	// 事件发布
	Producer *mq.Producer

	// 中间件
	CorsMiddleware      rest.Middleware
	RequestIDMiddleware rest.Middleware
	UserAuthMiddleware  rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 1. 初始化数据库连接
	db := initDB(c.MySQL)

	// 2. 初始化 Redis
	rds := initRedis(c.Redis)
	rdb := redisv8.NewClient(&redisv8.Options{
		Addr:     c.Redis.Host,
		Password: c.Redis.Pass,
	})

	// 3. 初始化限流/熔断
	registrationLimiter := limit.NewTokenLimiter(
		c.RegistrationLimit.Rate,
		c.RegistrationLimit.Burst,
		rds,
		commonCache.RegistrationLimiterKey(),
	)
	registrationBreaker := breaker.NewBreaker(
		breaker.WithName(c.RegistrationBreaker.Name),
	)

	// 4. 初始化事件发布器（失败降级为不发事件，不阻塞启动）
	var producer *mq.Producer
	if c.Messaging.Enabled {
		client, err := messaging.NewClient(c.Messaging)
		if err != nil {
			logx.Errorf("初始化消息客户端失败，事件发布降级关闭: %v", err)
		} else {
			producer = mq.NewProducer(client)
		}
	}

	return &ServiceContext{
		Config: c,

		// 数据存储
		DB:          db,
		Redis:       rds,
		RedisClient: rdb,

		// 限流/熔断
		RegistrationLimiter: registrationLimiter,
		RegistrationBreaker: registrationBreaker,

		// Model 层
		ActivityModel:     model.NewActivityModel(db),
		RegistrationModel: model.NewActivityRegistrationModel(db),
		CommentModel:      model.NewActivityCommentModel(db),
		UserModel:         usermodel.NewUserModel(db),

		// 缓存层
		ActivityCache: cache.NewActivityCache(rds, db),

		// 事件发布
		Producer: producer,

		// 中间件
		CorsMiddleware: middleware.NewCorsMiddleware(
			[]string{"*"},
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			[]string{"Content-Type", "Authorization", "X-Request-ID"},
		).Handle,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware().Handle,
		UserAuthMiddleware:  middleware.NewUserAuthMiddleware(db, rdb, c.Auth.AccessSecret).Handle,
	}
}

// 初始化函数

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := buildMySQLDSN(mysqlConf)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info), // 开发环境打印 SQL
	})
	if err != nil {
		logx.Errorf("连接数据库失败: %v", err)
		panic(err)
	}

	// 设置连接池
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

// initRedis 初始化 Redis 连接
func initRedis(c redis.RedisConf) *redis.Redis {
	rds := redis.MustNewRedis(c)
	logx.Info("Redis 连接成功")
	return rds
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
