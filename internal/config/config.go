package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Webhook       WebhookConfig       `yaml:"webhook"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	LLM           LLMConfig           `yaml:"llm"`
	Media         MediaConfig         `yaml:"media"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session token settings. Sessions are issued elsewhere;
// this service only validates them.
type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET" env-required:"true"`
	Issuer        string        `yaml:"issuer"         env:"AUTH_ISSUER"         env-default:"familypa"`
	CookieName    string        `yaml:"cookie_name"    env:"AUTH_COOKIE_NAME"    env-default:"session"`
	DevTokenTTL   time.Duration `yaml:"dev_token_ttl"  env:"AUTH_DEV_TOKEN_TTL"  env-default:"24h"`
}

// WebhookConfig holds the messaging webhook settings.
type WebhookConfig struct {
	VerifyToken         string  `yaml:"verify_token"          env:"WHATSAPP_VERIFY_TOKEN"`
	SharedSecret        string  `yaml:"shared_secret"         env:"WEBHOOK_SHARED_SECRET"         env-required:"true"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"  env:"WEBHOOK_CONFIDENCE_THRESHOLD"  env-default:"0.7"`
	RateLimitPerMinute  int     `yaml:"rate_limit_per_minute" env:"WEBHOOK_RATE_LIMIT_PER_MINUTE" env-default:"60"`
}

// TranscriptionConfig holds the speech-to-text provider settings.
type TranscriptionConfig struct {
	APIKey  string        `yaml:"api_key"  env:"OPENAI_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"TRANSCRIPTION_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string        `yaml:"model"    env:"TRANSCRIPTION_MODEL"    env-default:"whisper-1"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSCRIPTION_TIMEOUT"  env-default:"60s"`
}

// LLMConfig holds the classification model settings.
type LLMConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"LLM_BASE_URL"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-3-5-haiku-latest"`
	MaxTokens int64         `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"200"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"30s"`
}

// MediaConfig holds settings for downloading message attachments.
type MediaConfig struct {
	Username string        `yaml:"username"  env:"TWILIO_ACCOUNT_SID"`
	Password string        `yaml:"password"  env:"TWILIO_AUTH_TOKEN"`
	MaxBytes int64         `yaml:"max_bytes" env:"MEDIA_MAX_BYTES" env-default:"16777216"`
	Timeout  time.Duration `yaml:"timeout"   env:"MEDIA_TIMEOUT"   env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// VerificationEnabled reports whether GET verification requests can succeed.
func (c WebhookConfig) VerificationEnabled() bool {
	return strings.TrimSpace(c.VerifyToken) != ""
}

// HasCredentials reports whether media downloads use basic auth.
func (c MediaConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
