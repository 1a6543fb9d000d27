package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// Config is loaded from defaults, then an optional config.yaml, then
// SMS_-prefixed environment variables. envconfig also honors the bare tag
// names, so an ambient HOST variable (common on PaaS hosts) sets every Host
// field below, including Redis.Host, which switches the flash store on.
// Always set the prefixed forms: SMS_HOST, SMS_DATABASE_HOST, SMS_REDIS_HOST.
type Config struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Prefix   string `envconfig:"PREFIX"`
	Mode     Mode   `envconfig:"MODE"`
	Database Database
	Session  Session
	Upload   Upload
	Redis    Redis
	Log      Log `mapstructure:"Log"`
	Sentry   Sentry
}

type Database struct {
	// Driver selects the gorm driver: "sqlite" (default) or "mysql".
	Driver string `envconfig:"DRIVER" mapstructure:"driver"`
	// Path is the sqlite database file.
	Path     string `envconfig:"PATH" mapstructure:"path"`
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Session struct {
	// Secret signs the session cookie. The default is a placeholder that
	// must be overridden outside of local development.
	Secret string `envconfig:"SECRET" mapstructure:"secret"`
	// Expire is the session lifetime in seconds.
	Expire int64 `envconfig:"EXPIRE" mapstructure:"expire"`
}

type Upload struct {
	// Dir is the directory certificate files are written to.
	Dir string `envconfig:"DIR" mapstructure:"dir"`
	// MaxSize is the multipart size cap in bytes.
	MaxSize int64 `envconfig:"MAX_SIZE" mapstructure:"max_size"`
}

type Redis struct {
	// Host left empty keeps flash messages in process memory.
	Host     string `envconfig:"HOST" mapstructure:"host"`
	Port     string `envconfig:"PORT" mapstructure:"port"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"DB" mapstructure:"db"`
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"`
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`
}
