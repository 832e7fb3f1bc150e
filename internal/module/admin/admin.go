package admin

import (
	"net/http"
	"strings"

	"student-union-system/internal/global/database"
	"student-union-system/internal/global/response"
	"student-union-system/internal/global/session"
	"student-union-system/internal/model"
	"student-union-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 管理员登录。验证通过后在会话中标记已登录。
// 用户名不存在与密码错误返回同一提示，不暴露账号是否存在。
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrMissingCredentials.WithOrigin(err))
		return
	}

	username := strings.TrimSpace(req.Username)
	password := req.Password
	if username == "" || password == "" {
		response.Fail(c, response.ErrMissingCredentials)
		return
	}

	var admin model.Admin
	err := database.DB.Where("username = ?", username).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录失败，账号不存在", "username", username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "username", username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(password, admin.PasswordHash) {
		log.Warn("登录失败，密码错误", "username", username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	if err := session.SetAdmin(c, admin.Username); err != nil {
		log.Error("写入会话失败", "error", err, "username", username)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("管理员登录成功", "username", admin.Username, "client_ip", c.ClientIP())
	response.Success(c)
}

// Logout 退出登录，幂等
func Logout(c *gin.Context) {
	username := session.Username(c)
	if err := session.Clear(c); err != nil {
		log.Error("清除会话失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	if username != "" {
		log.Info("管理员退出登录", "username", username)
	}
	response.Success(c)
}

// Check 查询当前会话登录状态，无副作用
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logged_in": session.IsAdmin(c)})
}
