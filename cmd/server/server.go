package server

import (
	"fmt"
	"log/slog"

	"skill-marks-system/config"
	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/flash"
	"skill-marks-system/internal/global/logger"
	"skill-marks-system/internal/global/middleware"
	"skill-marks-system/internal/global/sentry"
	"skill-marks-system/internal/module"
	"skill-marks-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("sentry init failed", "error", err)
	}

	database.Init()
	flash.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewRouter builds the gin engine with the middleware chain and all module
// routes mounted. Split from Run so tests can drive the full router.
func NewRouter() *gin.Engine {
	log := logger.New("Server")
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	r.MaxMultipartMemory = config.Get().Upload.MaxSize

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	return r
}

func Run() {
	r := NewRouter()
	defer sentry.Flush()
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
