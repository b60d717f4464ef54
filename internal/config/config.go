package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	SMTP      SMTPConfig      `yaml:"smtp"      validate:"required"`
	Email     EmailConfig     `yaml:"email"     validate:"required"`
	QR        QRConfig        `yaml:"qr"        validate:"required"`
	Checkin   CheckinConfig   `yaml:"checkin"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the string level onto logger.Level from wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine maps the string engine onto logger.Engine from wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"backtobase"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SMTPConfig holds the mail transport credentials. Host, user and password
// are required at transport construction time: without them no unit can ever
// succeed, so startup fails instead.
type SMTPConfig struct {
	Host          string        `yaml:"host"            env:"SMTP_HOST"            env-default:"smtp.gmail.com"`
	Port          int           `yaml:"port"            env:"SMTP_PORT"            env-default:"465" validate:"min=1,max=65535"`
	Username      string        `yaml:"username"        env:"SMTP_USER"`
	Password      string        `yaml:"password"        env:"SMTP_PASS"`
	FromName      string        `yaml:"from_name"       env:"SMTP_FROM_NAME"       env-default:"Back To Base Events"`
	FromEmail     string        `yaml:"from_email"      env:"SMTP_FROM_EMAIL"`
	SendTimeout   time.Duration `yaml:"send_timeout"    env:"SMTP_SEND_TIMEOUT"    env-default:"30s" validate:"gt=0"`
	SkipTLSVerify bool          `yaml:"skip_tls_verify" env:"SMTP_SKIP_TLS_VERIFY" env-default:"false"`
}

// EmailConfig tunes the bulk dispatcher. BatchDelay is the fixed pause between
// consecutive batches; it is the rate-limiting mechanism.
type EmailConfig struct {
	BatchSize     int           `yaml:"batch_size"     env:"EMAIL_BATCH_SIZE"     env-default:"100" validate:"min=1"`
	BatchDelay    time.Duration `yaml:"batch_delay"    env:"EMAIL_BATCH_DELAY"    env-default:"10s" validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"EMAIL_RETRY_ATTEMPTS" env-default:"3"   validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"EMAIL_RETRY_DELAY"    env-default:"2s"  validate:"gt=0"`
}

type QRConfig struct {
	BaseURL string `yaml:"base_url" env:"QR_BASE_URL" env-default:"https://quickchart.io/qr" validate:"required,url"`
	Size    int    `yaml:"size"     env:"QR_SIZE"     env-default:"300" validate:"min=50"`
	ECLevel string `yaml:"ec_level" env:"QR_EC_LEVEL" env-default:"H"   validate:"required,oneof=L M Q H"`
}

type CheckinConfig struct {
	// FrontendURL is the public base the emailed check-in links point at.
	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:3000"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
