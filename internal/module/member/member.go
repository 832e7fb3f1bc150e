package member

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

var errMemberNotFound = response.ErrNotFound.WithMessage("成员不存在")

// MemberResponse 公开成员列表的响应结构体，不包含 created_at
type MemberResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Intro      string `json:"intro"`
	ImageURL   string `json:"image_url"`
}

// GetMembers 获取成员列表（公开），按部门、ID 排序
func GetMembers(c *gin.Context) {
	var members []model.Member
	if err := database.DB.Order("department, id").Find(&members).Error; err != nil {
		log.Error("查询成员列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	memberResponses := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		memberResponses = append(memberResponses, MemberResponse{
			ID:         m.ID,
			Name:       m.Name,
			Department: m.Department,
			Role:       m.Role,
			Intro:      m.Intro,
			ImageURL:   m.ImageURL,
		})
	}

	response.List(c, memberResponses)
}

// ListMembers 获取成员列表（管理用），包含 created_at
func ListMembers(c *gin.Context) {
	members := make([]model.Member, 0)
	if err := database.DB.Order("department, id").Find(&members).Error; err != nil {
		log.Error("查询成员列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.List(c, members)
}

// MemberCreateReq 定义新增成员请求的结构体
type MemberCreateReq struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Intro      string `json:"intro"`
	ImageURL   string `json:"image_url"`
}

// CreateMember 新增成员，name / department / role / intro 均为必填
func CreateMember(c *gin.Context) {
	var req MemberCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定新增成员请求失败", "error", err)
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 name / department / role / intro").WithOrigin(err))
		return
	}

	name := strings.TrimSpace(req.Name)
	department := strings.TrimSpace(req.Department)
	role := strings.TrimSpace(req.Role)
	intro := strings.TrimSpace(req.Intro)
	if name == "" || department == "" || role == "" || intro == "" {
		response.Fail(c, response.ErrMissingFields.WithMessage("缺少 name / department / role / intro"))
		return
	}

	member := model.Member{
		Name:       name,
		Department: department,
		Role:       role,
		Intro:      intro,
		ImageURL:   strings.TrimSpace(req.ImageURL),
		CreatedAt:  model.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		log.Error("新增成员失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("成员已新增", "id", member.ID, "name", member.Name, "department", member.Department)
	response.SuccessWithID(c, member.ID)
}

// MemberUpdateReq 定义更新成员请求的结构体，指针字段支持部分更新
type MemberUpdateReq struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	Intro      *string `json:"intro"`
	ImageURL   *string `json:"image_url"`
}

// UpdateMember 更新成员，仅修改请求中出现的字段
func UpdateMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errMemberNotFound)
		return
	}

	// 空请求体等同于空更新，不视为错误
	var req MemberUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("绑定更新成员请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var member model.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		response.Fail(c, errMemberNotFound)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		updates["department"] = strings.TrimSpace(*req.Department)
	}
	if req.Role != nil {
		updates["role"] = strings.TrimSpace(*req.Role)
	}
	if req.Intro != nil {
		updates["intro"] = strings.TrimSpace(*req.Intro)
	}
	if req.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&member).Updates(updates).Error; err != nil {
		log.Error("更新成员失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}

// DeleteMember 删除成员，依据影响行数判断 404
func DeleteMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, errMemberNotFound)
		return
	}

	result := database.DB.Delete(&model.Member{}, id)
	if result.Error != nil {
		log.Error("删除成员失败", "error", result.Error, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, errMemberNotFound)
		return
	}

	log.Info("成员已删除", "id", id)
	response.Success(c)
}
