// Package logic 提供 Model 实体与 API 类型之间的转换函数
package logic

import (
	"sportmeet/app/activity/api/internal/types"
	"sportmeet/app/activity/model"
)

// ==================== Activity 转换 ====================

// ConvertActivityToApi 将活动实体转换为 API 类型
func ConvertActivityToApi(activity *model.Activity) types.ActivityInfo {
	if activity == nil {
		return types.ActivityInfo{}
	}
	return types.ActivityInfo{
		Id:                  activity.ID,
		Title:               activity.Title,
		Description:         activity.Description,
		CreatorId:           activity.CreatorID,
		CreatorName:         activity.CreatorName,
		CreatorAvatar:       activity.CreatorAvatar,
		StartTime:           activity.StartTime,
		EndTime:             activity.EndTime,
		Location:            activity.Location,
		MaxParticipants:     activity.MaxParticipants,
		CurrentParticipants: activity.CurrentParticipants,
		RemainingSlots:      activity.RemainingSlots(),
		Fee:                 activity.Fee,
		Status:              model.StatusName[activity.Status],
		StatusText:          activity.StatusText(),
		Version:             activity.Version,
		CreatedAt:           activity.CreatedAt,
	}
}

// ConvertActivitiesToApi 批量转换活动实体
func ConvertActivitiesToApi(activities []model.Activity) []types.ActivityInfo {
	result := make([]types.ActivityInfo, 0, len(activities))
	for i := range activities {
		result = append(result, ConvertActivityToApi(&activities[i]))
	}
	return result
}

// ==================== Comment 转换 ====================

// ConvertCommentToApi 将评论实体转换为 API 类型
func ConvertCommentToApi(comment *model.ActivityComment) types.CommentInfo {
	if comment == nil {
		return types.CommentInfo{}
	}
	return types.CommentInfo{
		Id:         comment.ID,
		ActivityId: comment.ActivityID,
		UserId:     comment.UserID,
		UserName:   comment.UserName,
		UserAvatar: comment.UserAvatar,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}
}

// ConvertCommentsToApi 批量转换评论实体
func ConvertCommentsToApi(comments []model.ActivityComment) []types.CommentInfo {
	result := make([]types.CommentInfo, 0, len(comments))
	for i := range comments {
		result = append(result, ConvertCommentToApi(&comments[i]))
	}
	return result
}
