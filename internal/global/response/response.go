package response

import (
	"errors"
	"fmt"
	"net/http"

	"student-union-system/config"
	"student-union-system/internal/global/logger"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// Error 自定义错误类型，携带 HTTP 状态码、提示消息和原始错误链
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	// cause 保存原始错误，用于日志和 errors.Unwrap
	cause error
}

func newError(status int, msg string) *Error {
	return &Error{
		Status:  status,
		Message: msg,
	}
}

var (
	ErrInvalidRequest     = newError(http.StatusBadRequest, "请求参数错误")
	ErrMissingFields      = newError(http.StatusBadRequest, "请填写完整信息")
	ErrInvalidEmail       = newError(http.StatusBadRequest, "请输入正确的邮箱格式")
	ErrMissingCredentials = newError(http.StatusBadRequest, "请填写用户名和密码")
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "用户名或密码错误")
	ErrUnauthorized       = newError(http.StatusUnauthorized, "请先登录")
	ErrNotFound           = newError(http.StatusNotFound, "记录不存在")
	ErrDatabase           = newError(http.StatusInternalServerError, "服务器内部错误")
	ErrInternal           = newError(http.StatusInternalServerError, "服务器内部错误")
)

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, msg:%s", e.Status, e.Message)
}

// Unwrap 返回原始错误，支持 errors.Unwrap() 链
func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// WithMessage 返回替换了提示消息的错误副本，状态码不变
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Status:  e.Status,
		Message: msg,
		cause:   e.cause,
	}
}

// WithOrigin 附带原始错误，用于日志排查；不会改变返回给前端的消息
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	return &Error{
		Status:  e.Status,
		Message: e.Message,
		cause:   ensureStack(err),
	}
}

// ensureStack 确保错误带有堆栈信息
func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}

// Body 统一的变更类接口响应体，测试中也用于解码
type Body struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	ID       uint   `json:"id,omitempty"`
	LoggedIn *bool  `json:"logged_in,omitempty"`
}

// Success 返回 {"success": true}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SuccessWithID 返回 {"success": true, "id": id}，用于创建类接口
func SuccessWithID(c *gin.Context, id uint) {
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// List 返回裸数组，列表接口不使用 success 包装
func List(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Fail 根据错误类型返回 {"success": false, "message": ...} 和对应状态码
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}

	body := gin.H{"success": false, "message": e.Message}
	// debug 模式下附带原始错误，便于排查
	if config.Get().Mode == config.ModeDebug && e.cause != nil {
		body["origin"] = fmt.Sprintf("%+v", e.cause)
	}
	c.JSON(e.Status, body)
}

// Recovery 捕获 handler panic，统一返回 500，进程不退出
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("handler panic",
			"panic", fmt.Sprintf("%v", r),
			"path", c.Request.URL.Path,
		)
		c.Abort()
		Fail(c, ErrInternal)
	}
}
