package notice

import (
	"log/slog"

	"student-union-system/internal/global/logger"
)

var log *slog.Logger

type ModuleNotice struct{}

func (n *ModuleNotice) GetName() string {
	return "Notice"
}

func (n *ModuleNotice) Init() {
	log = logger.New("Notice")
}
