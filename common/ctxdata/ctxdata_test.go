package ctxdata

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromCtx(t *testing.T) {
	ctx := WithUserID(context.Background(), 10001)
	assert.Equal(t, int64(10001), GetUserIDFromCtx(ctx))
}

func TestGetUserIDFromJwtClaim(t *testing.T) {
	// go-zero 以字符串 key 注入 JWT claim，数值经 JSON 解析为 json.Number
	ctx := context.WithValue(context.Background(), "userId", json.Number("42"))
	assert.Equal(t, int64(42), GetUserIDFromCtx(ctx))

	ctx = context.WithValue(context.Background(), "userId", float64(7))
	assert.Equal(t, int64(7), GetUserIDFromCtx(ctx))

	ctx = context.WithValue(context.Background(), "userId", "99")
	assert.Equal(t, int64(99), GetUserIDFromCtx(ctx))
}

func TestGetUserIDMissing(t *testing.T) {
	assert.Equal(t, int64(0), GetUserIDFromCtx(context.Background()))

	ctx := context.WithValue(context.Background(), "userId", "not-a-number")
	assert.Equal(t, int64(0), GetUserIDFromCtx(ctx))
}

func TestRequestAndTraceID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	assert.Equal(t, "req-123", GetRequestIDFromCtx(ctx))
	assert.Equal(t, "trace-456", GetTraceIDFromCtx(ctx))

	assert.Equal(t, "", GetRequestIDFromCtx(context.Background()))
	assert.Equal(t, "", GetTraceIDFromCtx(context.Background()))
}
