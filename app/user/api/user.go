package main

import (
	"flag"
	"fmt"

	"sportmeet/app/user/api/internal/config"
	"sportmeet/app/user/api/internal/handler"
	"sportmeet/app/user/api/internal/svc"
	"sportmeet/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/user-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// ============================================================================
	// 重要：设置全局错误处理器（必须在 server.Start() 之前）
	// ============================================================================
	response.SetupGlobalErrorHandler()
	// ============================================================================

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 3. 初始化服务上下文
	ctx := svc.NewServiceContext(c)

	// 4. 注册路由处理器
	handler.RegisterHandlers(server, ctx)

	// 5. 启动服务
	fmt.Printf("Starting user-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 用户服务 API 入口
// 说明：
//   user-api 是用户服务的 HTTP 接口层，负责：
//   - 登录（外部身份映射 + JWT 签发）
//   - 登出（Token 黑名单）
//   - 个人主页（创建/参与的活动汇总）
//
// 启动命令：
//   go run user.go -f etc/user-api.yaml
