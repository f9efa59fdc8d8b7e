package messaging

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

// Client Watermill 消息客户端（发布侧）
//
// 事件经 Redis Stream 投递，下游通知/统计等消费方独立部署，
// 本服务内不运行订阅者。
type Client struct {
	Publisher message.Publisher

	config      Config
	redisClient *redis.Client
}

// NewClient 创建消息客户端
func NewClient(config Config) (*Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger := newWatermillLogger(config.ServiceName)

	publisher, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{
			Client: redisClient,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return &Client{
		Publisher:   publisher,
		config:      config,
		redisClient: redisClient,
	}, nil
}

// Publish 发布一条消息
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := c.Publisher.Publish(topic, msg); err != nil {
		recordPublishFailed(c.config.ServiceName, topic)
		return err
	}

	recordPublished(c.config.ServiceName, topic)
	return nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if err := c.Publisher.Close(); err != nil {
		return err
	}
	return c.redisClient.Close()
}
