// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 用户信息 ====================

type UserInfo struct {
	UserId    uint64 `json:"userId"`
	OpenId    string `json:"openId"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt int64  `json:"createdAt"`
}

// ==================== 登录 ====================

// 身份凭据由外部身份提供方换取，服务端只负责 openId -> 用户记录的映射
type LoginRequest struct {
	OpenId   string `json:"openId"`
	Nickname string `json:"nickname,optional"`
	Avatar   string `json:"avatar,optional"`
}

type LoginResponse struct {
	AccessToken string   `json:"accessToken"`
	ExpireAt    int64    `json:"expireAt"`
	UserInfo    UserInfo `json:"userInfo"`
}

// ==================== 登出 ====================

type LogoutResponse struct {
	Result bool `json:"result"`
}

// ==================== 个人主页 ====================

type ActivitySummary struct {
	Id                  uint64 `json:"id"`
	Title               string `json:"title"`
	Location            string `json:"location"`
	StartTime           int64  `json:"startTime"`
	Status              string `json:"status"`
	CurrentParticipants uint32 `json:"currentParticipants"`
	MaxParticipants     uint32 `json:"maxParticipants"`
}

type ProfileResponse struct {
	UserInfo          UserInfo          `json:"userInfo"`
	CreatedActivities []ActivitySummary `json:"createdActivities"`
	JoinedActivities  []ActivitySummary `json:"joinedActivities"`
	CreatedCount      int64             `json:"createdCount"`
	JoinedCount       int64             `json:"joinedCount"`
}
