package notice

import (
	"student-union-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (n *ModuleNotice) InitRouter(r *gin.RouterGroup) {
	// 公开接口，无需登录
	r.GET("/get_notices", GetNotices)

	// 后台管理接口
	adminGroup := r.Group("/admin/notices")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", ListNotices)
		adminGroup.POST("", CreateNotice)
		adminGroup.PUT("/:id", UpdateNotice)
		adminGroup.DELETE("/:id", DeleteNotice)
	}
}
