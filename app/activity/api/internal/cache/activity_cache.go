// Package cache 提供活动服务的缓存层实现
//
// 设计原则：
//   - singleflight 防止缓存击穿
//   - 空值缓存防止缓存穿透
//   - 随机 TTL 防止缓存雪崩
//   - 失效采用单次删除策略
package cache

import (
	"context"
	"encoding/json"
	"errors"

	"sportmeet/app/activity/model"
	commonCache "sportmeet/common/cache"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ActivityCache 活动详情缓存服务
//
// 缓存策略：
//   - Key: activity:detail:{id}
//   - TTL: 5min ± 10%
//   - 失效时机: 更新/删除/报名/取消报名时主动删除
type ActivityCache struct {
	rds     *redis.Redis
	db      *gorm.DB
	sfGroup singleflight.Group
}

// NewActivityCache 创建活动缓存服务
func NewActivityCache(rds *redis.Redis, db *gorm.DB) *ActivityCache {
	return &ActivityCache{
		rds: rds,
		db:  db,
	}
}

// nullValuePlaceholder 空值标记，用于防止缓存穿透
const nullValuePlaceholder = "{\"null\":true}"

// GetByID 获取活动详情（带缓存）
//
// 流程：
//  1. 查询 Redis 缓存
//  2. 缓存命中：反序列化返回
//  3. 缓存未命中：singleflight 查 DB 并回填缓存
//  4. DB 查询为空：写入空值标记，防止穿透
func (c *ActivityCache) GetByID(ctx context.Context, id uint64) (*model.Activity, error) {
	key := commonCache.ActivityDetailKey(id)

	// 1. 尝试从缓存获取
	val, err := c.rds.GetCtx(ctx, key)
	if err != nil {
		// Redis 错误，降级查询 DB
		logx.WithContext(ctx).Errorf("[ActivityCache] Redis 错误，降级查 DB: key=%s, err=%v", key, err)
		return c.getFromDB(ctx, id)
	}

	// 2. 缓存命中
	if val != "" {
		if val == nullValuePlaceholder {
			return nil, model.ErrActivityNotFound
		}

		var activity model.Activity
		if err := json.Unmarshal([]byte(val), &activity); err != nil {
			logx.WithContext(ctx).Errorf("[ActivityCache] 反序列化失败: key=%s, err=%v", key, err)
			// 删除损坏的缓存，下次重建
			_, _ = c.rds.DelCtx(ctx, key)
			return c.getFromDB(ctx, id)
		}
		return &activity, nil
	}

	// 3. 缓存未命中，singleflight 保护，防止并发穿透 DB
	result, err, _ := c.sfGroup.Do(key, func() (interface{}, error) {
		return c.getFromDBAndCache(ctx, id, key)
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Activity), nil
}

// getFromDB 直接从数据库查询（无缓存操作）
func (c *ActivityCache) getFromDB(ctx context.Context, id uint64) (*model.Activity, error) {
	var activity model.Activity
	err := c.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// getFromDBAndCache 从 DB 查询并写入缓存
func (c *ActivityCache) getFromDBAndCache(ctx context.Context, id uint64, key string) (*model.Activity, error) {
	var activity model.Activity
	err := c.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 空值标记 TTL 较短（1 分钟），避免真实数据创建后长时间读不到
			_ = c.rds.SetexCtx(ctx, key, nullValuePlaceholder, 60)
			return nil, model.ErrActivityNotFound
		}
		return nil, err
	}

	data, err := json.Marshal(&activity)
	if err != nil {
		logx.WithContext(ctx).Errorf("[ActivityCache] 序列化失败: id=%d, err=%v", id, err)
		// 序列化失败不影响返回结果
		return &activity, nil
	}

	ttl := commonCache.RandomTTLSeconds(commonCache.DefaultTTL)
	if err := c.rds.SetexCtx(ctx, key, string(data), ttl); err != nil {
		logx.WithContext(ctx).Errorf("[ActivityCache] 写入缓存失败: key=%s, err=%v", key, err)
	}

	return &activity, nil
}

// Invalidate 删除活动缓存
//
// 调用时机：
//   - 更新/删除活动后
//   - 报名、取消报名后（人数变化）
func (c *ActivityCache) Invalidate(ctx context.Context, id uint64) error {
	// 缓存未启用时直接跳过
	if c == nil {
		return nil
	}
	key := commonCache.ActivityDetailKey(id)
	if _, err := c.rds.DelCtx(ctx, key); err != nil {
		logx.WithContext(ctx).Errorf("[ActivityCache] 删除缓存失败: key=%s, err=%v", key, err)
		return err
	}
	return nil
}
