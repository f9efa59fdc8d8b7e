package model

// 活动状态常量

const (
	StatusOpen      int8 = 1 // 报名中
	StatusClosed    int8 = 2 // 已关闭
	StatusCancelled int8 = 3 // 已取消
)

// StatusText 状态文本映射
var StatusText = map[int8]string{
	StatusOpen:      "报名中",
	StatusClosed:    "已关闭",
	StatusCancelled: "已取消",
}

// StatusName 状态编码映射（对外 API 使用字符串状态）
var StatusName = map[int8]string{
	StatusOpen:      "OPEN",
	StatusClosed:    "CLOSED",
	StatusCancelled: "CANCELLED",
}

// StatusFromName 字符串状态反查，未知返回 0
func StatusFromName(name string) int8 {
	for code, n := range StatusName {
		if n == name {
			return code
		}
	}
	return 0
}

// CanTransition 状态流转策略
//
// 允许的流转：
//   - OPEN   -> CLOSED / CANCELLED
//   - CLOSED -> OPEN / CANCELLED
//
// CANCELLED 为终态，不允许重新开放
func CanTransition(from, to int8) bool {
	if from == to {
		return false
	}
	switch from {
	case StatusOpen:
		return to == StatusClosed || to == StatusCancelled
	case StatusClosed:
		return to == StatusOpen || to == StatusCancelled
	default:
		return false
	}
}

// 分页参数

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
	MaxPage         = 100 // 禁止超过100页
)

// Pagination 分页请求
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize 规范化分页参数
func (p *Pagination) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset 计算偏移量
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
