package test

import (
	"path/filepath"
	"testing"

	"skill-marks-system/cmd/server"
	"skill-marks-system/config"
	"skill-marks-system/internal/global/database"
	"skill-marks-system/internal/global/flash"
	"skill-marks-system/internal/module"

	"github.com/gin-gonic/gin"
)

// Setup wires a fully routed engine against a fresh seeded sqlite database in
// a per-test temp dir. The flash store is reset to a private in-memory one.
func Setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		Host: "127.0.0.1",
		Port: "0",
		Mode: config.ModeDebug,
		Database: config.Database{
			Driver: "sqlite",
			Path:   "file:" + filepath.Join(dir, "test.db") + "?_busy_timeout=5000&_journal_mode=WAL",
		},
		Session: config.Session{
			Secret: "test-secret",
			Expire: 3600,
		},
		Upload: config.Upload{
			Dir:     filepath.Join(dir, "uploads"),
			MaxSize: 16 << 20,
		},
		Log: config.Log{Level: "error"},
	}
	config.Reset(cfg)

	database.Init()
	flash.Init()

	for _, m := range module.Modules {
		m.Init()
	}

	return server.NewRouter()
}
