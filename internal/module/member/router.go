package member

import (
	"student-union-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMember) InitRouter(r *gin.RouterGroup) {
	// 公开接口，前端按 department 分组展示
	r.GET("/get_members", GetMembers)

	// 后台管理接口
	adminGroup := r.Group("/admin/members")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", ListMembers)
		adminGroup.POST("", CreateMember)
		adminGroup.PUT("/:id", UpdateMember)
		adminGroup.DELETE("/:id", DeleteMember)
	}
}
