package activity

import (
	"log/slog"

	"student-union-system/internal/global/logger"
)

var log *slog.Logger

type ModuleActivity struct{}

func (a *ModuleActivity) GetName() string {
	return "Activity"
}

func (a *ModuleActivity) Init() {
	log = logger.New("Activity")
}
