// ============================================================================
// 演示数据初始化脚本
// ============================================================================
//
// 用途：建表并写入演示用户/活动数据，便于本地联调
// 运行：go run scripts/seed/main.go -dsn "root:root@tcp(127.0.0.1:3306)/sportmeet?charset=utf8mb4&parseTime=true&loc=Local"
//
// ============================================================================

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	activitymodel "sportmeet/app/activity/model"
	usermodel "sportmeet/app/user/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dsn = flag.String("dsn", "root:root@tcp(127.0.0.1:3306)/sportmeet?charset=utf8mb4&parseTime=true&loc=Local", "MySQL DSN")

func main() {
	flag.Parse()

	db, err := gorm.Open(mysql.Open(*dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		fmt.Printf("连接数据库失败: %v\n", err)
		return
	}

	// 1. 建表
	if err := db.AutoMigrate(
		&usermodel.User{},
		&activitymodel.Activity{},
		&activitymodel.ActivityRegistration{},
		&activitymodel.ActivityComment{},
	); err != nil {
		fmt.Printf("建表失败: %v\n", err)
		return
	}
	fmt.Println("建表完成")

	ctx := context.Background()
	users := seedUsers(ctx, db)
	seedActivities(ctx, db, users)

	fmt.Println("演示数据初始化完成")
}

// seedUsers 写入演示用户
func seedUsers(ctx context.Context, db *gorm.DB) []*usermodel.User {
	um := usermodel.NewUserModel(db)

	seeds := []struct {
		openID   string
		nickname string
	}{
		{"ou_demo_zhang", "小张"},
		{"ou_demo_li", "小李"},
		{"ou_demo_wang", "小王"},
	}

	users := make([]*usermodel.User, 0, len(seeds))
	for _, s := range seeds {
		u, err := um.FindOrCreateByOpenID(ctx, s.openID, s.nickname, "")
		if err != nil {
			fmt.Printf("写入用户失败: %s, err=%v\n", s.nickname, err)
			continue
		}
		users = append(users, u)
		fmt.Printf("用户就绪: %s (id=%d)\n", u.Nickname, u.UserID)
	}
	return users
}

// seedActivities 写入演示活动并让其他用户报名
func seedActivities(ctx context.Context, db *gorm.DB, users []*usermodel.User) {
	if len(users) == 0 {
		return
	}
	am := activitymodel.NewActivityModel(db)
	rm := activitymodel.NewActivityRegistrationModel(db)

	now := time.Now()
	creator := users[0]

	activities := []*activitymodel.Activity{
		{
			Title:           "周五晚羽毛球",
			Description:     "新手友好，自带球拍",
			CreatorID:       creator.UserID,
			CreatorName:     creator.Nickname,
			CreatorAvatar:   creator.Avatar,
			StartTime:       now.Add(72 * time.Hour).Unix(),
			EndTime:         now.Add(74 * time.Hour).Unix(),
			Location:        "市体育馆 3 号场",
			MaxParticipants: 8,
			Fee:             15,
			Status:          activitymodel.StatusOpen,
		},
		{
			Title:           "周末五人制足球",
			Description:     "约满开球，雨天顺延",
			CreatorID:       creator.UserID,
			CreatorName:     creator.Nickname,
			CreatorAvatar:   creator.Avatar,
			StartTime:       now.Add(120 * time.Hour).Unix(),
			EndTime:         now.Add(122 * time.Hour).Unix(),
			Location:        "滨江足球公园",
			MaxParticipants: 10,
			Fee:             25,
			Status:          activitymodel.StatusOpen,
		},
	}

	for _, a := range activities {
		if err := am.Create(ctx, a); err != nil {
			fmt.Printf("写入活动失败: %s, err=%v\n", a.Title, err)
			continue
		}
		fmt.Printf("活动就绪: %s (id=%d)\n", a.Title, a.ID)

		// 其他演示用户报名第一个活动
		for _, u := range users[1:] {
			if _, _, err := rm.Register(ctx, a.ID, u.UserID); err != nil {
				fmt.Printf("报名失败: user=%s, activity=%s, err=%v\n", u.Nickname, a.Title, err)
			}
		}
	}
}
