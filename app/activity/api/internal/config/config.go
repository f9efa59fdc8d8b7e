// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"sportmeet/common/messaging"

	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// JWT 认证配置
	Auth struct {
		AccessSecret string
		AccessExpire int64
	}

	// 数据存储
	MySQL MySQLConfig     // MySQL 配置
	Redis redis.RedisConf // Redis 配置（go-zero 内置结构）

	// 高并发、熔断限流配置
	RegistrationLimit   RegistrationLimit
	RegistrationBreaker RegistrationBreaker

	// 事件发布
	Messaging messaging.Config
}

// MySQLConfig 数据库配置
type MySQLConfig struct {
	Host            string `json:",default=127.0.0.1"`
	Port            int    `json:",default=3306"`
	Username        string
	Password        string
	Database        string
	MaxOpenConns    int `json:",default=100"`  // 最大打开连接数
	MaxIdleConns    int `json:",default=10"`   // 最大空闲连接数
	ConnMaxLifetime int `json:",default=3600"` // 连接生命周期（秒）
}

// ==================== 高并发、熔断限流配置 ====================

type RegistrationLimit struct {
	Rate  int `json:",default=100"` // 每秒允许的请求数
	Burst int `json:",default=200"` // 突发容量
}

type RegistrationBreaker struct {
	Name string `json:",default=activity-registration"` // 熔断器名称
}
