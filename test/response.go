package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-union-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DecodeBody 解析变更类接口的 {success, message, id} 响应体
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) response.Body {
	t.Helper()
	var body response.Body
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

// DecodeList 解析列表接口的裸数组响应体
func DecodeList[T any](t *testing.T, w *httptest.ResponseRecorder) []T {
	t.Helper()
	var list []T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	return list
}

// RequireSuccess 断言 200 且 success 为 true
func RequireSuccess(t *testing.T, w *httptest.ResponseRecorder) response.Body {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	body := DecodeBody(t, w)
	require.True(t, body.Success)
	return body
}

// RequireFail 断言给定状态码且 success 为 false
func RequireFail(t *testing.T, w *httptest.ResponseRecorder, status int) response.Body {
	t.Helper()
	require.Equal(t, status, w.Code)
	body := DecodeBody(t, w)
	require.False(t, body.Success)
	return body
}

// LoginAdmin 以种子账号登录，返回会话 Cookie 供后续请求使用
func LoginAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := DoRequest(t, r, http.MethodPost, "/api/admin_login", gin.H{
		"username": "admin",
		"password": "123456",
	})
	RequireSuccess(t, w)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}
