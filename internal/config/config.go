package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация консоли
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Backend   BackendConfig   `toml:"backend"`
	Session   SessionConfig   `toml:"session"`
	Redis     RedisConfig     `toml:"redis"`
	Console   ConsoleConfig   `toml:"console"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Audit     AuditConfig     `toml:"audit"`
	Database  DatabaseConfig  `toml:"database"`
	Archive   ArchiveConfig   `toml:"archive"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig параметры HTTP сервера консоли (таймауты в секундах)
// Host по умолчанию 127.0.0.1: консоль хранит токен администратора и не должна быть видна в сети
type ServerConfig struct {
	Host            string `toml:"host"`
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// Addr адрес для http.Server
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.HTTPPort))
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BackendConfig единый адрес REST backend платформы
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды, 0 = без таймаута
}

// SessionConfig хранилище bearer токена
// Driver: "file" (локальный key-value файл) или "redis"
type SessionConfig struct {
	Driver    string `toml:"driver"`
	File      string `toml:"file"`
	TokenKey  string `toml:"token_key"`
	LegacyKey string `toml:"legacy_key"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// ConsoleConfig параметры списков
type ConsoleConfig struct {
	PageSize int `toml:"page_size"`
}

// DashboardConfig DemoMode включает подстановку mock-данных при недоступности backend
type DashboardConfig struct {
	DemoMode    bool `toml:"demo_mode"`
	DefaultDays int  `toml:"default_days"`
}

// AuditConfig журнал действий в PostgreSQL; RetentionDays = 0 - хранить бессрочно
type AuditConfig struct {
	Enabled       bool `toml:"enabled"`
	Limit         int  `toml:"limit"`
	RetentionDays int  `toml:"retention_days"`
}

type DatabaseConfig struct {
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

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ArchiveConfig архивирование загруженных прайс-листов в S3-совместимое хранилище
type ArchiveConfig struct {
	Enabled   bool   `toml:"enabled"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	UseSSL    bool   `toml:"use_ssl"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML файл, подгружает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "admin_console", Path: "/metrics"},
		Backend: BackendConfig{Timeout: 15},
		Session: SessionConfig{
			Driver:    "file",
			File:      "session.json",
			TokenKey:  "token",
			LegacyKey: "authToken",
		},
		Redis:     RedisConfig{Addr: "localhost:6379", KeyPrefix: "admin-console:"},
		Console:   ConsoleConfig{PageSize: 8},
		Dashboard: DashboardConfig{DefaultDays: 30},
		Audit:     AuditConfig{Limit: 50},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CONSOLE_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("CONSOLE_DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("CONSOLE_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("CONSOLE_ARCHIVE_SECRET_KEY"); v != "" {
		c.Archive.SecretKey = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend.url must be an absolute URL, got %q", ErrInvalidConfig, c.Backend.URL)
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")

	switch c.Session.Driver {
	case "file":
		if c.Session.File == "" {
			return fmt.Errorf("%w: session.file is required for file driver", ErrInvalidConfig)
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis session driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown session.driver %q", ErrInvalidConfig, c.Session.Driver)
	}

	if c.Session.TokenKey == "" {
		return fmt.Errorf("%w: session.token_key is required", ErrInvalidConfig)
	}
	if c.Console.PageSize <= 0 {
		return fmt.Errorf("%w: console.page_size must be positive", ErrInvalidConfig)
	}
	if c.Archive.Enabled && c.Archive.Bucket == "" {
		return fmt.Errorf("%w: archive.bucket is required when archive is enabled", ErrInvalidConfig)
	}
	return nil
}
