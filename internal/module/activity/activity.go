package activity

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

var errActivityNotFound = response.ErrNotFound.WithMessage("活动不存在")

// ActivityResponse 公开活动列表的响应结构体，不包含 created_at。
// start_time / end_time 保证为字符串，不会出现 null。
type ActivityResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
}

// GetActivities 获取活动列表（公开），按插入顺序
func GetActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.Order("id").Find(&activities).Error; err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	activityResponses := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		activityResponses = append(activityResponses, ActivityResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Status:      a.Status,
			ImageURL:    a.ImageURL,
		})
	}

	response.List(c, activityResponses)
}

// ListActivities 获取活动列表（管理用），包含 created_at
func ListActivities(c *gin.Context) {
	activities := make([]model.Activity, 0)
	if err := database.DB.Order("id").Find(&activities).Error; err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.List(c, activities)
}

// ActivityCreateReq 定义新增活动请求的结构体
type ActivityCreateReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
}

// CreateActivity 新增活动，title / description 必填；
// 枚举外的 status 宽松处理为 upcoming
func CreateActivity(c *gin.Context) {
	var req ActivityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定新增活动请求失败", "error", err)
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 title / description").WithOrigin(err))
		return
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 title / description"))
		return
	}

	activity := model.Activity{
		Title:       title,
		Description: description,
		StartTime:   strings.TrimSpace(req.StartTime),
		EndTime:     strings.TrimSpace(req.EndTime),
		Status:      model.NormalizeStatus(strings.TrimSpace(req.Status)),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedAt:   model.Now(),
	}
	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("新增活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动已新增", "id", activity.ID, "title", activity.Title, "status", activity.Status)
	response.SuccessWithID(c, activity.ID)
}

// ActivityUpdateReq 定义更新活动请求的结构体，指针字段支持部分更新
type ActivityUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"image_url"`
}

// UpdateActivity 更新活动，仅修改请求中出现的字段
func UpdateActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errActivityNotFound)
		return
	}

	// 空请求体等同于空更新，不视为错误
	var req ActivityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("绑定更新活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var activity model.Activity
	if err := database.DB.First(&activity, id).Error; err != nil {
		response.Fail(c, errActivityNotFound)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.StartTime != nil {
		updates["start_time"] = strings.TrimSpace(*req.StartTime)
	}
	if req.EndTime != nil {
		updates["end_time"] = strings.TrimSpace(*req.EndTime)
	}
	if req.Status != nil {
		updates["status"] = model.NormalizeStatus(strings.TrimSpace(*req.Status))
	}
	if req.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&activity).Updates(updates).Error; err != nil {
		log.Error("更新活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}

// DeleteActivity 删除活动，依据影响行数判断 404
func DeleteActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errActivityNotFound)
		return
	}

	result := database.DB.Delete(&model.Activity{}, id)
	if result.Error != nil {
		log.Error("删除活动失败", "error", result.Error, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, errActivityNotFound)
		return
	}

	log.Info("活动已删除", "id", id)
	response.Success(c)
}
