package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Environment variables that override file values.
const (
	EnvConfigPath        = "AUTOSHOP_CONFIG"
	EnvJWTSecret         = "AUTOSHOP_JWT_SECRET"
	EnvAdminPasswordHash = "AUTOSHOP_ADMIN_PASSWORD_HASH"
	EnvPostgresPassword  = "AUTOSHOP_POSTGRES_PASSWORD"
	EnvRedisPassword     = "AUTOSHOP_REDIS_PASSWORD"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Chatbot   ChatbotConfig   `toml:"chatbot"`
	Auth      AuthConfig      `toml:"auth"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend  string         `toml:"backend"`
	SQLite   SQLiteConfig   `toml:"sqlite"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// BootstrapConfig drives the first-run slot generation window.
type BootstrapConfig struct {
	Days            int    `toml:"days"`
	OpenTime        string `toml:"open_time"`
	CloseTime       string `toml:"close_time"`
	IntervalMinutes int    `toml:"interval_minutes"`
	ClosedWeekday   string `toml:"closed_weekday"`
}

type CalendarConfig struct {
	WindowDays int `toml:"window_days"`
}

type ChatbotConfig struct {
	ReplyDelayMs int `toml:"reply_delay_ms"`
}

type AuthConfig struct {
	AdminUsername     string `toml:"admin_username"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	JWTSecret         string `toml:"jwt_secret"`
	TokenTTLMinutes   int    `toml:"token_ttl_minutes"`
}

type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowCredentials bool     `toml:"allow_credentials"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load reads .env (if present), expands ${VAR} placeholders in the TOML file,
// decodes it, applies environment overrides and defaults, and validates the result.
// AUTOSHOP_CONFIG, when set, replaces path.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML content with the same post-processing as Load.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(expandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandEnv подставляет только заданные переменные окружения,
// остальные $-последовательности (например, в bcrypt-хэше) остаются как есть
func expandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "$" + name
	})
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(EnvAdminPasswordHash); v != "" {
		c.Auth.AdminPasswordHash = v
	}
	if v := os.Getenv(EnvPostgresPassword); v != "" {
		c.Storage.Postgres.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Storage.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "autoshop_booking"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.SQLite.Path == "" {
		c.Storage.SQLite.Path = "data/autoshop.db"
	}
	if c.Storage.Postgres.Port == 0 {
		c.Storage.Postgres.Port = 5432
	}
	if c.Storage.Postgres.SSLMode == "" {
		c.Storage.Postgres.SSLMode = "disable"
	}
	if c.Storage.Postgres.MaxOpenConns == 0 {
		c.Storage.Postgres.MaxOpenConns = 10
	}
	if c.Storage.Postgres.MaxIdleConns == 0 {
		c.Storage.Postgres.MaxIdleConns = 5
	}
	if c.Storage.Postgres.ConnMaxLifetime == 0 {
		c.Storage.Postgres.ConnMaxLifetime = 300
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = "localhost:6379"
	}
	if c.Storage.Redis.KeyPrefix == "" {
		c.Storage.Redis.KeyPrefix = "autoshop:"
	}
	if c.Bootstrap.Days == 0 {
		c.Bootstrap.Days = 7
	}
	if c.Bootstrap.OpenTime == "" {
		c.Bootstrap.OpenTime = "09:00"
	}
	if c.Bootstrap.CloseTime == "" {
		c.Bootstrap.CloseTime = "17:00"
	}
	if c.Bootstrap.IntervalMinutes == 0 {
		c.Bootstrap.IntervalMinutes = 60
	}
	if c.Bootstrap.ClosedWeekday == "" {
		c.Bootstrap.ClosedWeekday = "Sunday"
	}
	if c.Calendar.WindowDays == 0 {
		c.Calendar.WindowDays = 30
	}
	if c.Auth.AdminUsername == "" {
		c.Auth.AdminUsername = "admin"
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 12 * 60
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Bootstrap.Days < 0 {
		return fmt.Errorf("%w: bootstrap.days must not be negative", ErrInvalidConfig)
	}
	if c.Bootstrap.IntervalMinutes < 0 {
		return fmt.Errorf("%w: bootstrap.interval_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Bootstrap.Weekday(); err != nil {
		return err
	}
	if c.Calendar.WindowDays < 0 {
		return fmt.Errorf("%w: calendar.window_days must not be negative", ErrInvalidConfig)
	}
	if c.Chatbot.ReplyDelayMs < 0 {
		return fmt.Errorf("%w: chatbot.reply_delay_ms must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, EnvJWTSecret)
	}
	if strings.TrimSpace(c.Auth.AdminPasswordHash) == "" {
		return fmt.Errorf("%w: auth.admin_password_hash is required (or %s)", ErrInvalidConfig, EnvAdminPasswordHash)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate_limit values must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Weekday resolves ClosedWeekday ("Sunday", "monday", ...) into time.Weekday.
func (b BootstrapConfig) Weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(b.ClosedWeekday)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: bootstrap.closed_weekday %q is not a weekday", ErrInvalidConfig, b.ClosedWeekday)
}
