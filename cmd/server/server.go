package server

import (
	"fmt"
	"log/slog"

	"student-union-system/config"
	"student-union-system/internal/global/database"
	"student-union-system/internal/global/logger"
	"student-union-system/internal/global/mail"
	"student-union-system/internal/global/middleware"
	"student-union-system/internal/global/sentry"
	"student-union-system/internal/module"
	"student-union-system/tools"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	tools.PanicOnErr(sentry.Init())
	log = logger.New("Server")

	database.Init()
	log.Info("数据库已初始化", "path", config.Get().Sqlite.Path)

	mail.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	// 会话状态全部保存在签名 Cookie 中，进程内不持有登录状态
	store := cookie.NewStore([]byte(config.Get().Session.Secret))
	r.Use(sessions.Sessions(config.Get().Session.CookieName, store))

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
