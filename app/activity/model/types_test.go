package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from int8
		to   int8
		want bool
	}{
		{"开放到关闭", StatusOpen, StatusClosed, true},
		{"开放到取消", StatusOpen, StatusCancelled, true},
		{"关闭重新开放", StatusClosed, StatusOpen, true},
		{"关闭到取消", StatusClosed, StatusCancelled, true},
		{"取消为终态", StatusCancelled, StatusOpen, false},
		{"取消不能关闭", StatusCancelled, StatusClosed, false},
		{"同状态无迁移", StatusOpen, StatusOpen, false},
		{"非法来源", int8(9), StatusOpen, false},
		{"非法目标", StatusOpen, int8(9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "OPEN", StatusName[StatusOpen])
	assert.Equal(t, "CLOSED", StatusName[StatusClosed])
	assert.Equal(t, "CANCELLED", StatusName[StatusCancelled])
}

func TestStatusFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int8
	}{
		{"开放", "OPEN", StatusOpen},
		{"关闭", "CLOSED", StatusClosed},
		{"取消", "CANCELLED", StatusCancelled},
		{"未知名称", "PENDING", 0},
		{"空字符串", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromName(tt.input))
		})
	}
}

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantPage int
		wantSize int
	}{
		{"默认值", 0, 0, DefaultPage, DefaultPageSize},
		{"负数回退默认", -1, -5, DefaultPage, DefaultPageSize},
		{"正常参数", 2, 20, 2, 20},
		{"超出单页上限", 1, 500, 1, MaxPageSize},
		{"页码上限内", MaxPage, 10, MaxPage, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, PageSize: tt.pageSize}
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 10}
	p.Normalize()
	assert.Equal(t, 20, p.Offset())
}
