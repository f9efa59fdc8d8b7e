package errorx

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorBizError(t *testing.T) {
	err := ErrActivityFull()
	got := FromError(err)
	require.NotNil(t, got)
	assert.Equal(t, CodeActivityFull, got.Code)
	assert.Equal(t, "活动名额已满", got.Message)
}

func TestFromErrorWrapped(t *testing.T) {
	// errors.Wrap 包装后仍应解析出原始业务错误
	err := pkgerrors.Wrap(ErrNotCreator(), "update activity")
	got := FromError(err)
	require.NotNil(t, got)
	assert.Equal(t, CodeNotCreator, got.Code)
}

func TestFromErrorUnknown(t *testing.T) {
	got := FromError(errors.New("connection refused"))
	require.NotNil(t, got)
	// 未知错误不透出细节
	assert.Equal(t, CodeInternalError, got.Code)
	assert.NotContains(t, got.Message, "connection refused")
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrAlreadyRegistered(), CodeAlreadyRegistered))
	assert.False(t, Is(ErrAlreadyRegistered(), CodeActivityFull))
	assert.False(t, Is(nil, CodeActivityFull))
	assert.False(t, Is(errors.New("plain"), CodeActivityFull))
}

func TestGetMessageFallback(t *testing.T) {
	assert.Equal(t, "未知错误", GetMessage(99999))
	assert.False(t, IsValidCode(99999))
	assert.True(t, IsValidCode(CodeActivityNotOpen))
}

func TestWrap(t *testing.T) {
	e := Wrap(CodeDBError, errors.New("duplicate entry"))
	assert.Equal(t, CodeDBError, e.Code)
	assert.Contains(t, e.Message, "duplicate entry")

	e = Wrap(CodeDBError, nil)
	assert.Equal(t, GetMessage(CodeDBError), e.Message)
}
