package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`

	// MCPPath is where the streamable HTTP endpoint is mounted.
	MCPPath string `validate:"required,startswith=/"`

	LogLevel string `validate:"oneof=trace debug info warn error"`

	// SelfCheckInterval controls how often the catalog self-check runs (0 disables it).
	SelfCheckInterval time.Duration `validate:"min=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`

	CORSAllowOrigins string `validate:"required"`
}

// Load reads configuration from a .env file (if any) and the environment,
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Host = getenvDefault("HOST", "0.0.0.0")

	port, err := strconv.Atoi(getenvDefault("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	cfg.MCPPath = getenvDefault("MCP_PATH", "/mcp")
	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "info"))

	interval, err := time.ParseDuration(getenvDefault("SELFCHECK_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SELFCHECK_INTERVAL: %w", err)
	}
	cfg.SelfCheckInterval = interval

	shutdown, err := time.ParseDuration(getenvDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdown

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr is the host:port the server listens on.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level maps LogLevel onto the logger's levels.
func (c *AppConfig) Level() log.Level {
	switch c.LogLevel {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
