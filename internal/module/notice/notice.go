package notice

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"student-union-system/internal/global/database"
	"student-union-system/internal/global/response"
	"student-union-system/internal/model"

	"github.com/gin-gonic/gin"
)

var errNoticeNotFound = response.ErrNotFound.WithMessage("通知不存在")

// NoticeResponse 公开通知列表的响应结构体，不包含 created_at
type NoticeResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishTime string `json:"publish_time"`
}

// GetNotices 获取通知列表（公开），按发布时间倒序
func GetNotices(c *gin.Context) {
	var notices []model.Notice
	if err := database.DB.Order("publish_time DESC").Find(&notices).Error; err != nil {
		log.Error("查询通知列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	noticeResponses := make([]NoticeResponse, 0, len(notices))
	for _, n := range notices {
		noticeResponses = append(noticeResponses, NoticeResponse{
			ID:          n.ID,
			Title:       n.Title,
			Content:     n.Content,
			PublishTime: n.PublishTime,
		})
	}

	response.List(c, noticeResponses)
}

// ListNotices 获取通知列表（管理用），包含 created_at
func ListNotices(c *gin.Context) {
	notices := make([]model.Notice, 0)
	if err := database.DB.Order("publish_time DESC").Find(&notices).Error; err != nil {
		log.Error("查询通知列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.List(c, notices)
}

// NoticeCreateReq 定义新增通知请求的结构体
type NoticeCreateReq struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishTime string `json:"publish_time"`
}

// CreateNotice 新增通知，title / content / publish_time 均为必填
func CreateNotice(c *gin.Context) {
	var req NoticeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定新增通知请求失败", "error", err)
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 title / content / publish_time").WithOrigin(err))
		return
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	publishTime := strings.TrimSpace(req.PublishTime)
	if title == "" || content == "" || publishTime == "" {
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 title / content / publish_time"))
		return
	}

	notice := model.Notice{
		Title:       title,
		Content:     content,
		PublishTime: publishTime,
		CreatedAt:   model.Now(),
	}
	if err := database.DB.Create(&notice).Error; err != nil {
		log.Error("新增通知失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("通知已新增", "id", notice.ID, "title", notice.Title)
	response.SuccessWithID(c, notice.ID)
}

// NoticeUpdateReq 定义更新通知请求的结构体，指针字段支持部分更新
type NoticeUpdateReq struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	PublishTime *string `json:"publish_time"`
}

// UpdateNotice 更新通知，仅修改请求中出现的字段
func UpdateNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errNoticeNotFound)
		return
	}

	// 空请求体等同于空更新，不视为错误
	var req NoticeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("绑定更新通知请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var notice model.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		response.Fail(c, errNoticeNotFound)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		updates["content"] = strings.TrimSpace(*req.Content)
	}
	if req.PublishTime != nil {
		updates["publish_time"] = strings.TrimSpace(*req.PublishTime)
	}
	// 空请求体视为无操作，直接返回成功
	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&notice).Updates(updates).Error; err != nil {
		log.Error("更新通知失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}

// DeleteNotice 删除通知，依据影响行数判断 404
func DeleteNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errNoticeNotFound)
		return
	}

	result := database.DB.Delete(&model.Notice{}, id)
	if result.Error != nil {
		log.Error("删除通知失败", "error", result.Error, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, errNoticeNotFound)
		return
	}

	log.Info("通知已删除", "id", id)
	response.Success(c)
}
