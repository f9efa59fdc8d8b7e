package ctxdata

import (
	"context"
	"encoding/json"
	"strconv"
)

// 定义上下文 key 类型，避免冲突
type contextKey string

const (
	// CtxKeyUserID 用户ID在上下文中的key
	CtxKeyUserID contextKey = "userId"
	// CtxKeyRequestID 请求ID
	CtxKeyRequestID contextKey = "requestId"
	// CtxKeyTraceID 追踪ID
	CtxKeyTraceID contextKey = "traceId"
)

// GetUserIDFromCtx 从上下文中获取用户ID
// go-zero 会将 JWT payload 中的字段注入到 context 中
// 每个请求只在此处解析一次身份，后续全部显式传递
func GetUserIDFromCtx(ctx context.Context) int64 {
	// 先尝试从自定义 key 获取
	if val := ctx.Value(CtxKeyUserID); val != nil {
		return parseToInt64(val)
	}

	// 兼容 go-zero 的 JWT 解析方式（字符串 key）
	if val := ctx.Value("userId"); val != nil {
		return parseToInt64(val)
	}

	return 0
}

// GetRequestIDFromCtx 从上下文中获取请求ID
func GetRequestIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyRequestID); val != nil {
		if reqID, ok := val.(string); ok {
			return reqID
		}
	}
	return ""
}

// GetTraceIDFromCtx 从上下文中获取追踪ID
func GetTraceIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyTraceID); val != nil {
		if traceID, ok := val.(string); ok {
			return traceID
		}
	}
	return ""
}

// WithUserID 将用户ID注入上下文
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// WithRequestID 将请求ID注入上下文
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, requestID)
}

// WithTraceID 将追踪ID注入上下文
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, CtxKeyTraceID, traceID)
}

// parseToInt64 将各种类型转换为 int64
func parseToInt64(val interface{}) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return 0
}
