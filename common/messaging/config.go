package messaging

// Config 消息客户端配置
type Config struct {
	// ServiceName 服务名，用作 Redis Stream 消费组/指标标签
	ServiceName string

	// Enabled 是否启用事件发布（本地开发可关闭）
	Enabled bool `json:",default=true"`

	// Redis Stream 后端配置
	Redis RedisConfig
}

// RedisConfig Redis Stream 后端配置
type RedisConfig struct {
	Addr     string `json:",default=127.0.0.1:6379"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
}
