package admin

import (
	"net/http"
	"testing"

	"student-union-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	test.SetupDB(t)
	return test.NewRouter(t, &ModuleAdmin{})
}

func TestLoginAndCheck(t *testing.T) {
	r := setup(t)

	// 未登录时 check 返回 false
	w := test.DoRequest(t, r, http.MethodGet, "/api/admin/check", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := test.DecodeBody(t, w)
	require.NotNil(t, body.LoggedIn)
	require.False(t, *body.LoggedIn)

	// 种子账号 admin / 123456 登录成功
	cookies := test.LoginAdmin(t, r)

	w = test.DoRequest(t, r, http.MethodGet, "/api/admin/check", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	body = test.DecodeBody(t, w)
	require.NotNil(t, body.LoggedIn)
	require.True(t, *body.LoggedIn)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin_login", gin.H{
		"username": "admin",
		"password": "wrong-password",
	})
	body := test.RequireFail(t, w, http.StatusUnauthorized)
	require.Equal(t, "用户名或密码错误", body.Message)
}

func TestLoginUnknownUser(t *testing.T) {
	r := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin_login", gin.H{
		"username": "nobody",
		"password": "123456",
	})
	test.RequireFail(t, w, http.StatusUnauthorized)
}

func TestLoginMissingFields(t *testing.T) {
	r := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin_login", gin.H{
		"username": "  ",
		"password": "",
	})
	body := test.RequireFail(t, w, http.StatusBadRequest)
	require.Equal(t, "请填写用户名和密码", body.Message)
}

func TestLogout(t *testing.T) {
	r := setup(t)
	cookies := test.LoginAdmin(t, r)

	w := test.DoRequest(t, r, http.MethodPost, "/api/admin_logout", nil, cookies...)
	test.RequireSuccess(t, w)

	// 退出后的会话 Cookie 不再是登录状态
	loggedOut := w.Result().Cookies()
	w = test.DoRequest(t, r, http.MethodGet, "/api/admin/check", nil, loggedOut...)
	body := test.DecodeBody(t, w)
	require.NotNil(t, body.LoggedIn)
	require.False(t, *body.LoggedIn)
}

func TestLogoutWithoutLogin(t *testing.T) {
	r := setup(t)

	// 幂等：未登录时退出同样成功
	w := test.DoRequest(t, r, http.MethodPost, "/api/admin_logout", nil)
	test.RequireSuccess(t, w)
}
