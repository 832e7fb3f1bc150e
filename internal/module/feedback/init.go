package feedback

import (
	"log/slog"

	"student-union-system/internal/global/logger"
)

var log *slog.Logger

type ModuleFeedback struct{}

func (f *ModuleFeedback) GetName() string {
	return "Feedback"
}

func (f *ModuleFeedback) Init() {
	log = logger.New("Feedback")
}
