package member

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
	return test.NewRouter(t, &admin.ModuleAdmin{}, &ModuleMember{})
}

func TestCreateAndRoundTrip(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/members", gin.H{
		"name":       "林一帆",
		"department": "宣传部",
		"role":       "部长",
		"intro":      "负责公众号运营与海报设计。",
	}, cookies...)
	id := test.RequireSuccess(t, w).ID

	w = test.DoRequest(t, r, http.MethodGet, "/api/get_members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := test.DecodeList[MemberResponse](t, w)

	found := false
	for _, m := range members {
		if m.ID == id {
			found = true
			require.Equal(t, "林一帆", m.Name)
			require.Equal(t, "宣传部", m.Department)
			require.Equal(t, "部长", m.Role)
			require.Equal(t, "负责公众号运营与海报设计。", m.Intro)
			require.Equal(t, "", m.ImageURL)
		}
	}
	require.True(t, found)
}

func TestPublicListGroupedByDepartment(t *testing.T) {
	r := setup(t)

	w := test.DoRequest(t, r, http.MethodGet, "/api/get_members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := test.DecodeList[MemberResponse](t, w)
	require.NotEmpty(t, members)

	// 同部门内按 ID 升序
	for i := 1; i < len(members); i++ {
		if members[i-1].Department == members[i].Department {
			require.Less(t, members[i-1].ID, members[i].ID)
		}
	}
}

func TestCreateMissingFields(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/members", gin.H{
		"name":       "张三",
		"department": "学习部",
	}, cookies...)
	body := test.RequireFail(t, w, http.StatusBadRequest)
	require.Equal(t, "缺少 name / department / role / intro", body.Message)
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/members", gin.H{
		"name":       "王小明",
		"department": "学习部",
		"role":       "干事",
		"intro":      "整理学习资料。",
	}, cookies...)
	id := test.RequireSuccess(t, w).ID

	w = test.DoRequest(t, r, http.MethodPut, fmt.Sprintf("/api/admin/members/%d", id), gin.H{
		"role": "部长",
	}, cookies...)
	test.RequireSuccess(t, w)

	var member model.Member
	require.NoError(t, database.DB.First(&member, id).Error)
	require.Equal(t, "部长", member.Role)
	require.Equal(t, "王小明", member.Name)
	require.Equal(t, "学习部", member.Department)
	require.Equal(t, "整理学习资料。", member.Intro)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPut, "/api/admin/members/99999", gin.H{"name": "x"}, cookies...)
	body := test.RequireFail(t, w, http.StatusNotFound)
	require.Equal(t, "成员不存在", body.Message)

	w = test.DoRequest(t, r, http.MethodDelete, "/api/admin/members/99999", nil, cookies...)
	test.RequireFail(t, w, http.StatusNotFound)
}

func TestGuardBlocksWithoutLogin(t *testing.T) {
	r := setup(t)

	var before int64
	require.NoError(t, database.DB.Model(&model.Member{}).Count(&before).Error)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin/members", gin.H{
		"name": "x", "department": "y", "role": "z", "intro": "i",
	})
	test.RequireFail(t, w, http.StatusUnauthorized)

	var after int64
	require.NoError(t, database.DB.Model(&model.Member{}).Count(&after).Error)
	require.Equal(t, before, after)
}
