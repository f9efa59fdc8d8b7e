/**
 * @projectName: SportMeet
 * @package: errorx
 * @className: codes
 * @description: 统一错误码定义
 * @version: 1.0
 */

package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 2xxx    - 用户服务错误
// 3xxx    - 活动服务错误

const (
	CodeSuccess            = 0    // 成功
	CodeInternalError      = 1000 // 内部服务器错误
	CodeInvalidParams      = 1001 // 参数校验失败
	CodeUnauthorized       = 1002 // 未授权访问
	CodeForbidden          = 1003 // 禁止访问
	CodeNotFound           = 1004 // 资源不存在
	CodeTooManyRequests    = 1005 // 请求过于频繁
	CodeServiceUnavailable = 1006 // 服务暂不可用
	CodeTimeout            = 1007 // 请求超时
	CodeDBError            = 1008 // 数据库错误
	CodeCacheError         = 1009 // 缓存错误

	// 用户服务 - 认证 2001-2010
	CodeLoginRequired = 2001 // 需要登录
	CodeTokenInvalid  = 2002 // Token无效
	CodeTokenExpired  = 2003 // Token已过期
	CodeUserNotFound  = 2004 // 用户不存在
	CodeUserDisabled  = 2005 // 用户已被禁用

	// 活动服务 3001-3020
	CodeActivityNotFound     = 3001 // 活动不存在
	CodeActivityNotOpen      = 3002 // 活动未开放报名
	CodeActivityFull         = 3003 // 活动名额已满
	CodeAlreadyRegistered    = 3004 // 已报名该活动
	CodeRegistrationNotFound = 3005 // 报名记录不存在
	CodeNotCreator           = 3006 // 非活动创建者
	CodeStatusTransitInvalid = 3007 // 无效的状态流转
	CodeCommentNotFound      = 3008 // 评论不存在
)

// codeMessages 错误码对应的默认消息
var codeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInternalError:      "内部服务器错误",
	CodeInvalidParams:      "参数校验失败",
	CodeUnauthorized:       "未授权访问",
	CodeForbidden:          "禁止访问",
	CodeNotFound:           "资源不存在",
	CodeTooManyRequests:    "请求过于频繁，请稍后再试",
	CodeServiceUnavailable: "服务暂不可用",
	CodeTimeout:            "请求超时",
	CodeDBError:            "数据库错误",
	CodeCacheError:         "缓存错误",

	CodeLoginRequired: "请先登录",
	CodeTokenInvalid:  "登录状态无效",
	CodeTokenExpired:  "登录已过期",
	CodeUserNotFound:  "用户不存在",
	CodeUserDisabled:  "账号已被禁用",

	CodeActivityNotFound:     "活动不存在",
	CodeActivityNotOpen:      "活动未开放报名",
	CodeActivityFull:         "活动名额已满",
	CodeAlreadyRegistered:    "您已报名该活动",
	CodeRegistrationNotFound: "报名记录不存在",
	CodeNotCreator:           "仅活动创建者可执行此操作",
	CodeStatusTransitInvalid: "当前状态不允许此流转",
	CodeCommentNotFound:      "评论不存在",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "未知错误"
}

// IsValidCode 判断是否为有效的业务错误码
// 用于区分业务错误码和底层系统错误，系统错误不应透出给前端
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
