package config

import (
	"strings"
	"time"
)

// Config is the root configuration of the web process.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Auth      AuthConfig      `yaml:"auth"`
	Cache     CacheConfig     `yaml:"cache"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	I18n      I18nConfig      `yaml:"i18n"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ReminderConfig is the root configuration of the booking reminder function.
type ReminderConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Reminder  ReminderWindow  `yaml:"reminder"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ToolConfig is the configuration of one-shot operator commands.
type ToolConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,apikey,x-client-info"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
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

// BackendConfig points at the hosted backend: auth, data API and object storage
// share one base URL and one publishable key.
type BackendConfig struct {
	URL            string        `yaml:"url"             env:"BACKEND_URL"             env-required:"true"`
	AnonKey        string        `yaml:"anon_key"        env:"BACKEND_ANON_KEY"        env-required:"true"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKEND_REQUEST_TIMEOUT" env-default:"10s"`
	BatchWait      time.Duration `yaml:"batch_wait"      env:"BACKEND_BATCH_WAIT"      env-default:"2ms"`
	BatchSize      int           `yaml:"batch_size"      env:"BACKEND_BATCH_SIZE"      env-default:"100"`
}

// AuthConfig holds browser session and token settings.
type AuthConfig struct {
	// JWTSecret enables signature checks on access tokens when set.
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"`
	CookieName      string        `yaml:"cookie_name"       env:"AUTH_COOKIE_NAME"       env-default:"lh_session"`
	CookieSecure    bool          `yaml:"cookie_secure"     env:"AUTH_COOKIE_SECURE"     env-default:"true"`
	SessionIdleTTL  time.Duration `yaml:"session_idle_ttl"  env:"AUTH_SESSION_IDLE_TTL"  env-default:"12h"`
	MaxSessions     int           `yaml:"max_sessions"      env:"AUTH_MAX_SESSIONS"      env-default:"10000"`
	RefreshMargin   time.Duration `yaml:"refresh_margin"    env:"AUTH_REFRESH_MARGIN"    env-default:"60s"`
	LoginRateLimit  int           `yaml:"login_rate_limit"  env:"AUTH_LOGIN_RATE_LIMIT"  env-default:"10"`
	LoginRateWindow time.Duration `yaml:"login_rate_window" env:"AUTH_LOGIN_RATE_WINDOW" env-default:"1m"`
}

// CacheConfig holds query cache windows.
type CacheConfig struct {
	FreshWindow      time.Duration `yaml:"fresh_window"       env:"CACHE_FRESH_WINDOW"       env-default:"30s"`
	EvictWindow      time.Duration `yaml:"evict_window"       env:"CACHE_EVICT_WINDOW"       env-default:"5m"`
	StatsFreshWindow time.Duration `yaml:"stats_fresh_window" env:"CACHE_STATS_FRESH_WINDOW" env-default:"1m"`
	RetryDelay       time.Duration `yaml:"retry_delay"        env:"CACHE_RETRY_DELAY"        env-default:"250ms"`
	SweepInterval    time.Duration `yaml:"sweep_interval"     env:"CACHE_SWEEP_INTERVAL"     env-default:"1m"`
}

// StorageConfig holds object storage buckets and upload limits.
type StorageConfig struct {
	AvatarBucket   string        `yaml:"avatar_bucket"    env:"STORAGE_AVATAR_BUCKET"    env-default:"avatars"`
	CoverBucket    string        `yaml:"cover_bucket"     env:"STORAGE_COVER_BUCKET"     env-default:"covers"`
	AvatarURLTTL   time.Duration `yaml:"avatar_url_ttl"   env:"STORAGE_AVATAR_URL_TTL"   env-default:"1h"`
	MaxAvatarBytes int64         `yaml:"max_avatar_bytes" env:"STORAGE_MAX_AVATAR_BYTES" env-default:"5242880"`
	MaxCoverBytes  int64         `yaml:"max_cover_bytes"  env:"STORAGE_MAX_COVER_BYTES"  env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN carries the
// service credential, so it bypasses row-level security.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"5m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"learnhub"`
	// ConnectAttempts bounds the startup ping; a paused database may need a
	// few seconds to accept connections after a cold start.
	ConnectAttempts uint64        `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff"    env:"DATABASE_CONNECT_BACKOFF"    env-default:"500ms"`
}

// ReminderWindow controls which bookings the reminder function selects.
type ReminderWindow struct {
	SiteURL string        `yaml:"site_url" env:"SITE_URL"          env-required:"true"`
	Window  time.Duration `yaml:"window"   env:"REMINDER_WINDOW"   env-default:"24h"`
	Limit   uint64        `yaml:"limit"    env:"REMINDER_LIMIT"    env-default:"500"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig enables tracing when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"           env-default:"learnhub"`
}

// Enabled reports whether an exporter endpoint is configured.
func (t TelemetryConfig) Enabled() bool {
	return strings.TrimSpace(t.Endpoint) != ""
}

// I18nConfig holds localization settings.
type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"I18N_DEFAULT_LANGUAGE" env-default:"en-US"`
}
