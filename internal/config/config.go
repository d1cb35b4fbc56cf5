package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Intelligence IntelligenceConfig `yaml:"intelligence"`
	Pipeline     PipelineConfig     `yaml:"pipeline"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token validation settings. Token issuance lives
// in the identity service; this backend only validates and attributes.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"warmline"`
	// WebhookSecret is the shared secret the transcription worker sends in
	// X-Webhook-Token. Webhook routes reject everything when it is empty.
	WebhookSecret string `yaml:"webhook_secret" env:"AUTH_WEBHOOK_SECRET"`
}

// IntelligenceConfig holds settings for the external intelligence
// capability that turns parsed artifacts into suggestion entries.
type IntelligenceConfig struct {
	APIKey    string        `yaml:"api_key"    env:"INTELLIGENCE_API_KEY"    env-required:"true"`
	Model     string        `yaml:"model"      env:"INTELLIGENCE_MODEL"      env-default:"claude-sonnet-4-20250514"`
	MaxTokens int64         `yaml:"max_tokens" env:"INTELLIGENCE_MAX_TOKENS" env-default:"4096"`
	Timeout   time.Duration `yaml:"timeout"    env:"INTELLIGENCE_TIMEOUT"    env-default:"60s"`
}

// PipelineConfig holds artifact-processing settings.
type PipelineConfig struct {
	// DispatchTimeout bounds one background generation run, including the
	// intelligence call and all persistence writes.
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"PIPELINE_DISPATCH_TIMEOUT" env-default:"90s"`
	// MaxEntries caps the number of entries accepted per suggestion record.
	MaxEntries int `yaml:"max_entries" env:"PIPELINE_MAX_ENTRIES" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
