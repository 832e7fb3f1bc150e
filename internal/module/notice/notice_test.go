package notice

import (
	"fmt"
	"net/http"
	"testing"

	"student-union-system/internal/global/database"
	"student-union-system/internal/model"
	"student-union-system/internal/module/admin"
	"student-union-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	test.SetupDB(t)
	return test.NewRouter(t, &admin.ModuleAdmin{}, &ModuleNotice{})
}

func noticeCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, database.DB.Model(&model.Notice{}).Count(&count).Error)
	return count
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	r := setup(t)
	before := noticeCount(t)

	w := test.DoRequest(t, r, http.MethodGet, "/api/admin/notices", nil)
	body := test.RequireFail(t, w, http.StatusUnauthorized)
	require.Equal(t, "请先登录", body.Message)

	w = test.DoRequest(t, r, http.MethodPost, "/api/admin/notices", gin.H{
		"title": "t", "content": "c", "publish_time": "2026-01-01",
	})
	test.RequireFail(t, w, http.StatusUnauthorized)

	w = test.DoRequest(t, r, http.MethodDelete, "/api/admin/notices/1", nil)
	test.RequireFail(t, w, http.StatusUnauthorized)

	// 未授权的请求不触达存储
	require.Equal(t, before, noticeCount(t))
}

func TestCreateAndList(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/notices", gin.H{
		"title":        "  期中考试安排通知  ",
		"content":      "各年级期中考试时间已确定，请注意查收。",
		"publish_time": "2026-05-01",
	}, cookies...)
	body := test.RequireSuccess(t, w)
	require.NotZero(t, body.ID)

	// 公开列表按发布时间倒序，新通知应排在最前
	w = test.DoRequest(t, r, http.MethodGet, "/api/get_notices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notices := test.DecodeList[NoticeResponse](t, w)
	require.NotEmpty(t, notices)
	require.Equal(t, body.ID, notices[0].ID)
	require.Equal(t, "期中考试安排通知", notices[0].Title)
	require.Equal(t, "各年级期中考试时间已确定，请注意查收。", notices[0].Content)
	require.Equal(t, "2026-05-01", notices[0].PublishTime)

	// 管理列表包含 created_at
	w = test.DoRequest(t, r, http.MethodGet, "/api/admin/notices", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	adminNotices := test.DecodeList[model.Notice](t, w)
	require.Equal(t, body.ID, adminNotices[0].ID)
	require.NotEmpty(t, adminNotices[0].CreatedAt)
}

func TestCreateMissingFields(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/notices", gin.H{
		"title":   "   ",
		"content": "内容",
	}, cookies...)
	body := test.RequireFail(t, w, http.StatusBadRequest)
	require.Equal(t, "缺少 title / content / publish_time", body.Message)
}

func TestPartialUpdate(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/notices", gin.H{
		"title":        "原标题",
		"content":      "原内容",
		"publish_time": "2026-06-01",
	}, cookies...)
	id := test.RequireSuccess(t, w).ID

	// 只更新标题，其余字段保持不变
	w = test.DoRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/notices/%d", id), gin.H{
		"title": "新标题",
	}, cookies...)
	test.RequireSuccess(t, w)

	var notice model.Notice
	require.NoError(t, database.DB.First(&notice, id).Error)
	require.Equal(t, "新标题", notice.Title)
	require.Equal(t, "原内容", notice.Content)
	require.Equal(t, "2026-06-01", notice.PublishTime)
}

func TestEmptyUpdateIsNoop(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPut, "/api/admin/notices/1", gin.H{}, cookies...)
	test.RequireSuccess(t, w)

	w = test.DoRequest(t, r, http.MethodPut, "/api/admin/notices/1", nil, cookies...)
	test.RequireSuccess(t, w)
}

func TestDeleteThenGone(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/notices", gin.H{
		"title": "待删除", "content": "c", "publish_time": "2026-01-01",
	}, cookies...)
	id := test.RequireSuccess(t, w).ID

	w = test.DoRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/notices/%d", id), nil, cookies...)
	test.RequireSuccess(t, w)

	// 删除后更新与再次删除均为 404
	w = test.DoRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/notices/%d", id), gin.H{"title": "x"}, cookies...)
	body := test.RequireFail(t, w, http.StatusNotFound)
	require.Equal(t, "通知不存在", body.Message)

	w = test.DoRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/notices/%d", id), nil, cookies...)
	test.RequireFail(t, w, http.StatusNotFound)
}
