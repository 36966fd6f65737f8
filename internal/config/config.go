// Package config provides configuration loading and validation for the resume-nest service and CLI.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Export    ExportConfig    `yaml:"export"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	CORSOrigins     string        `yaml:"cors_origins"     env:"SERVER_CORS_ORIGINS"     env-default:"*"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL selects the in-memory store.
type DatabaseConfig struct {
	URL      string `yaml:"url"       env:"DATABASE_URL"`
	MaxConns int32  `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"10"`
	MinConns int32  `yaml:"min_conns" env:"DATABASE_MIN_CONNS" env-default:"1"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"      env:"JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"      env:"JWT_ISSUER"      env-default:"resume-nest"`
	TokenTTL       time.Duration `yaml:"token_ttl"       env:"JWT_TTL"         env-default:"168h"`
	BcryptCost     int           `yaml:"bcrypt_cost"     env:"BCRYPT_COST"     env-default:"12"`
	PasswordPepper string        `yaml:"password_pepper" env:"PASSWORD_PEPPER"`
}

// AIConfig holds the text-transform provider settings.
type AIConfig struct {
	Provider string        `yaml:"provider" env:"AI_PROVIDER" env-default:"gemini"`
	APIKey   string        `yaml:"api_key"  env:"AI_API_KEY"`
	Model    string        `yaml:"model"    env:"AI_MODEL"`
	Timeout  time.Duration `yaml:"timeout"  env:"AI_TIMEOUT"  env-default:"30s"`
}

// ExportConfig holds print driver settings.
type ExportConfig struct {
	ChromePath string        `yaml:"chrome_path" env:"CHROME_PATH"`
	Timeout    time.Duration `yaml:"timeout"     env:"EXPORT_TIMEOUT" env-default:"60s"`
}

// RateLimitConfig holds per-client request limits, in requests per minute.
type RateLimitConfig struct {
	Enabled       bool `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute     int  `yaml:"per_minute"      env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	AuthPerMinute int  `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"10"`
	AIPerMinute   int  `yaml:"ai_per_minute"   env:"RATE_LIMIT_AI_PER_MINUTE"    env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
// The YAML path is CONFIG_PATH, falling back to ./config.yaml when that file exists.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges. Secrets are checked where they are used, so
// commands that never issue tokens can run without them.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got: %d", c.Server.MaxBodyBytes)
	}
	if c.Database.MinConns < 0 || c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database pool sizes invalid: min %d, max %d", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got: %s", c.AI.Timeout)
	}
	switch strings.ToLower(c.AI.Provider) {
	case "gemini", "anthropic":
	default:
		return fmt.Errorf("ai.provider must be gemini or anthropic, got: %q", c.AI.Provider)
	}
	if c.RateLimit.Enabled && (c.RateLimit.PerMinute < 1 || c.RateLimit.AuthPerMinute < 1 || c.RateLimit.AIPerMinute < 1) {
		return fmt.Errorf("rate_limit values must be at least 1 per minute")
	}
	return nil
}

// AIKey returns the configured provider key, falling back to the provider's conventional variable.
func (c *Config) AIKey() string {
	if c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if strings.EqualFold(c.AI.Provider, "anthropic") {
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
