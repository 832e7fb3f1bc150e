package activity

import (
	"student-union-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	// 公开接口，前端可按 status 筛选
	r.GET("/get_activities", GetActivities)

	// 后台管理接口
	adminGroup := r.Group("/admin/activities")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", ListActivities)
		adminGroup.POST("", CreateActivity)
		adminGroup.PUT("/:id", UpdateActivity)
		adminGroup.DELETE("/:id", DeleteActivity)
	}
}
