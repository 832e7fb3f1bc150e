package module

import (
	"student-union-system/internal/module/activity"
	"student-union-system/internal/module/admin"
	"student-union-system/internal/module/feedback"
	"student-union-system/internal/module/member"
	"student-union-system/internal/module/notice"
	"student-union-system/internal/module/ping"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&notice.ModuleNotice{},
		&activity.ModuleActivity{},
		&member.ModuleMember{},
		&feedback.ModuleFeedback{},
		&admin.ModuleAdmin{},
	})
}
