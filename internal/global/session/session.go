package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// 会话中仅保存两个键：登录标记与用户名。
// 认证状态是请求范围的数据，全部经由签名 Cookie 往返，进程内不持有全局状态。
const (
	keyLoggedIn = "admin_logged_in"
	keyUsername = "admin_username"
)

// SetAdmin 将当前会话标记为已登录管理员
func SetAdmin(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(keyLoggedIn, true)
	s.Set(keyUsername, username)
	return s.Save()
}

// Clear 清除登录状态，幂等
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(keyLoggedIn)
	s.Delete(keyUsername)
	return s.Save()
}

// IsAdmin 返回当前会话是否已通过管理员登录
func IsAdmin(c *gin.Context) bool {
	loggedIn, _ := sessions.Default(c).Get(keyLoggedIn).(bool)
	return loggedIn
}

// Username 返回会话中记录的管理员用户名，未登录时为空串
func Username(c *gin.Context) string {
	username, _ := sessions.Default(c).Get(keyUsername).(string)
	return username
}
