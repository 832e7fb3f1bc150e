package feedback

import (
	"regexp"
	"strings"

	"student-union-system/internal/global/database"
	"student-union-system/internal/global/mail"
	"student-union-system/internal/global/response"
	"student-union-system/internal/model"

	"github.com/gin-gonic/gin"
)

// emailPattern 简单的 local@domain.tld 校验
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FeedbackReq 定义提交反馈请求的结构体
type FeedbackReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

// SubmitFeedback 提交意见反馈。
// 校验顺序：姓名与内容非空，其次邮箱格式。
// 入库成功后通知邮件交由后台协程发送，发送结果不影响响应。
func SubmitFeedback(c *gin.Context) {
	var req FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定反馈请求失败", "error", err)
		response.Fail(c, response.ErrMissingFields.WithOrigin(err))
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	content := strings.TrimSpace(req.Content)

	if name == "" || content == "" {
		response.Fail(c, response.ErrMissingFields)
		return
	}
	if !emailPattern.MatchString(email) {
		response.Fail(c, response.ErrInvalidEmail)
		return
	}

	feedback := model.Feedback{
		Name:      name,
		Email:     email,
		Content:   content,
		CreatedAt: model.Now(),
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		log.Error("保存反馈失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("收到新反馈", "id", feedback.ID, "name", name, "email", email)
	mail.Enqueue(name, email, content)

	response.Success(c)
}

// ListFeedback 获取反馈列表（管理用），按提交时间倒序
func ListFeedback(c *gin.Context) {
	feedbacks := make([]model.Feedback, 0)
	if err := database.DB.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		log.Error("查询反馈列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.List(c, feedbacks)
}
