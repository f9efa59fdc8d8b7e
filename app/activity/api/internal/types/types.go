// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 活动信息 ====================

type ActivityInfo struct {
	Id                  uint64  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	CreatorId           uint64  `json:"creatorId"`
	CreatorName         string  `json:"creatorName"`
	CreatorAvatar       string  `json:"creatorAvatar"`
	StartTime           int64   `json:"startTime"`
	EndTime             int64   `json:"endTime"`
	Location            string  `json:"location"`
	MaxParticipants     uint32  `json:"maxParticipants"`
	CurrentParticipants uint32  `json:"currentParticipants"`
	RemainingSlots      uint32  `json:"remainingSlots"`
	Fee                 float64 `json:"fee"`
	Status              string  `json:"status"`
	StatusText          string  `json:"statusText"`
	Version             uint32  `json:"version"`
	CreatedAt           int64   `json:"createdAt"`
}

// ==================== 活动列表 ====================

type ListActivityRequest struct {
	Status    string `form:"status,optional"`    // OPEN / CLOSED / CANCELLED，空为全部
	CreatorId uint64 `form:"creatorId,optional"` // 按创建者筛选，0 为全部
	Page      int    `form:"page,optional"`
	PageSize  int    `form:"pageSize,optional"`
	Sort      string `form:"sort,optional"` // created_at(默认) / start_time / hot
}

type ListActivityResponse struct {
	List       []ActivityInfo `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// ==================== 活动详情 ====================

type GetActivityRequest struct {
	Id uint64 `path:"id"`
}

type ParticipantInfo struct {
	UserId       uint64 `json:"userId"`
	Nickname     string `json:"nickname"`
	Avatar       string `json:"avatar"`
	RegisteredAt int64  `json:"registeredAt"`
}

type GetActivityResponse struct {
	ActivityInfo
	Participants []ParticipantInfo `json:"participants"`
	CommentCount int64             `json:"commentCount"`
}

// ==================== 创建活动 ====================

type CreateActivityRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description,optional"`
	Location        string  `json:"location"`
	StartTime       int64   `json:"startTime"`
	EndTime         int64   `json:"endTime"`
	MaxParticipants uint32  `json:"maxParticipants"`
	Fee             float64 `json:"fee,optional"`
}

type CreateActivityResponse struct {
	ActivityInfo
}

// ==================== 更新活动 ====================

// 指针字段区分“未提供”和“提供了零值”，未提供的字段保持不变
type UpdateActivityRequest struct {
	Id              uint64   `path:"id"`
	Title           *string  `json:"title,optional"`
	Description     *string  `json:"description,optional"`
	Location        *string  `json:"location,optional"`
	StartTime       *int64   `json:"startTime,optional"`
	EndTime         *int64   `json:"endTime,optional"`
	MaxParticipants *uint32  `json:"maxParticipants,optional"`
	Fee             *float64 `json:"fee,optional"`
	Status          *string  `json:"status,optional"` // OPEN / CLOSED / CANCELLED
}

type UpdateActivityResponse struct {
	ActivityInfo
}

// ==================== 删除活动 ====================

type DeleteActivityRequest struct {
	Id uint64 `path:"id"`
}

type DeleteActivityResponse struct {
	Result bool `json:"result"`
}

// ==================== 报名 / 取消报名 ====================

type RegisterActivityRequest struct {
	Id uint64 `path:"id"`
}

type RegisterActivityResponse struct {
	ActivityId          uint64 `json:"activityId"`
	CurrentParticipants uint32 `json:"currentParticipants"`
	RegisteredAt        int64  `json:"registeredAt"`
}

type UnregisterActivityRequest struct {
	Id uint64 `path:"id"`
}

type UnregisterActivityResponse struct {
	ActivityId          uint64 `json:"activityId"`
	CurrentParticipants uint32 `json:"currentParticipants"`
}

// ==================== 评论 ====================

type CommentInfo struct {
	Id         uint64 `json:"id"`
	ActivityId uint64 `json:"activityId"`
	UserId     uint64 `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Content    string `json:"content"`
	CreatedAt  int64  `json:"createdAt"`
}

type ListCommentRequest struct {
	Id       uint64 `path:"id"`
	Page     int    `form:"page,optional"`
	PageSize int    `form:"pageSize,optional"`
}

type ListCommentResponse struct {
	List     []CommentInfo `json:"list"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type CreateCommentRequest struct {
	Id      uint64 `path:"id"`
	Content string `json:"content"`
}

type CreateCommentResponse struct {
	CommentInfo
}

type DeleteCommentRequest struct {
	Id        uint64 `path:"id"`
	CommentId uint64 `path:"commentId"`
}

type DeleteCommentResponse struct {
	Result bool `json:"result"`
}

// ==================== 健康检查 ====================

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}
