package admin

import (
	"github.com/gin-gonic/gin"
)

func (a *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	// 登录、退出与状态查询均不挂鉴权中间件：
	// check 需要对未登录会话返回 false 而非 401
	r.POST("/admin_login", Login)
	r.POST("/admin_logout", Logout)
	r.GET("/admin/check", Check)
}
