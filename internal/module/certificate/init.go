package certificate

import (
	"log/slog"

	"skill-marks-system/internal/global/logger"
)

var log *slog.Logger

type ModuleCertificate struct{}

func (m *ModuleCertificate) GetName() string {
	return "Certificate"
}

func (m *ModuleCertificate) Init() {
	log = logger.New("Certificate")
}
