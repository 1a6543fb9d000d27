package module

import (
	"skill-marks-system/internal/module/admin"
	"skill-marks-system/internal/module/certificate"
	"skill-marks-system/internal/module/ping"
	"skill-marks-system/internal/module/student"

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
		&student.ModuleStudent{},
		&certificate.ModuleCertificate{},
		&admin.ModuleAdmin{},
		&ping.ModulePing{},
	})
}
