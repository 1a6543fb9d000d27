package student

import (
	"log/slog"

	"skill-marks-system/internal/global/logger"
)

var log *slog.Logger

type ModuleStudent struct{}

func (s *ModuleStudent) GetName() string {
	return "Student"
}

func (s *ModuleStudent) Init() {
	log = logger.New("Student")
}
