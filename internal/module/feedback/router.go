package feedback

import (
	"net/http"

	"student-union-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (f *ModuleFeedback) InitRouter(r *gin.RouterGroup) {
	// 公开接口
	r.POST("/submit_feedback", SubmitFeedback)
	// CORS 预检请求，直接返回 204
	r.OPTIONS("/submit_feedback", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// 后台仅可查看，反馈提交后不可增删改
	adminGroup := r.Group("/admin/feedback")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", ListFeedback)
	}
}
