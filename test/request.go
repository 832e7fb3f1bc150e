package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"student-union-system/internal/global/database"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Module 测试中挂载路由所需的最小模块接口
type Module interface {
	Init()
	InitRouter(r *gin.RouterGroup)
}

// SetupDB 在临时目录创建一个全新的 SQLite 数据库并填充种子数据
func SetupDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.Seed(db))
}

// NewRouter 构建带会话中间件的测试引擎，并挂载给定模块
func NewRouter(t *testing.T, mods ...Module) *gin.Engine {
	t.Helper()
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("admin_session", store))
	group := r.Group("/api")
	for _, m := range mods {
		m.Init()
		m.InitRouter(group)
	}
	return r
}

// DoRequest 发送一个 JSON 请求并返回响应记录器
func DoRequest(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		requestBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(requestBytes)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
