package config

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init loads the configuration: insecure local defaults, then an optional
// config.yaml, then environment overrides (prefix SMS, e.g. SMS_SESSION_SECRET).
func Init() {
	once.Do(func() {
		cfg := defaults()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(err)
		}

		if err := envconfig.Process("sms", cfg); err != nil {
			panic(err)
		}

		cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))
		instance = cfg
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

// defaults are development values only. The session secret, admin credential
// scheme and plaintext student passwords are insecure by construction and must
// not ship unchanged.
func defaults() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "5000",
		Prefix: "",
		Mode:   ModeDebug,
		Database: Database{
			Driver: "sqlite",
			Path:   "skill_marks.db",
		},
		Session: Session{
			Secret: "your-secret-key-here-change-in-production",
			Expire: 24 * 60 * 60,
		},
		Upload: Upload{
			Dir:     "uploads",
			MaxSize: 16 << 20,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}

// Reset clears the loaded configuration so tests can install their own.
func Reset(cfg *Config) {
	once = sync.Once{}
	instance = cfg
}
