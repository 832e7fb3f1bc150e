package member

import (
	"log/slog"

	"student-union-system/internal/global/logger"
)

var log *slog.Logger

type ModuleMember struct{}

func (m *ModuleMember) GetName() string {
	return "Member"
}

func (m *ModuleMember) Init() {
	log = logger.New("Member")
}
