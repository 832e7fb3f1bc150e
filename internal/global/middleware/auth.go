package middleware

import (
	"student-union-system/internal/global/response"
	"student-union-system/internal/global/session"

	"github.com/gin-gonic/gin"
)

// AdminAuth 管理接口的统一鉴权检查：会话未登录时直接 401，
// 不触达存储层。系统中只有"是否为管理员"一种权限。
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsAdmin(c) {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
