package config

import (
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := validateURL(c.Backend.URL); err != nil {
		return fmt.Errorf("backend.url: %w", err)
	}
	if c.Backend.AnonKey == "" {
		return fmt.Errorf("backend.anon_key is required")
	}
	if c.Backend.BatchSize <= 0 {
		return fmt.Errorf("backend.batch_size must be > 0 (got %d)", c.Backend.BatchSize)
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}
	if c.Auth.MaxSessions <= 0 {
		return fmt.Errorf("auth.max_sessions must be > 0 (got %d)", c.Auth.MaxSessions)
	}
	if c.Auth.SessionIdleTTL <= 0 {
		return fmt.Errorf("auth.session_idle_ttl must be > 0")
	}
	if c.Auth.LoginRateLimit <= 0 {
		return fmt.Errorf("auth.login_rate_limit must be > 0 (got %d)", c.Auth.LoginRateLimit)
	}

	if c.Cache.FreshWindow <= 0 || c.Cache.StatsFreshWindow <= 0 {
		return fmt.Errorf("cache: fresh windows must be > 0")
	}
	if c.Cache.EvictWindow < c.Cache.FreshWindow || c.Cache.EvictWindow < c.Cache.StatsFreshWindow {
		return fmt.Errorf("cache.evict_window (%s) must not be shorter than the fresh windows", c.Cache.EvictWindow)
	}
	if c.Cache.RetryDelay <= 0 {
		return fmt.Errorf("cache.retry_delay must be > 0")
	}

	if c.Storage.AvatarBucket == "" || c.Storage.CoverBucket == "" {
		return fmt.Errorf("storage: bucket names are required")
	}
	if c.Storage.MaxAvatarBytes <= 0 || c.Storage.MaxCoverBytes <= 0 {
		return fmt.Errorf("storage: upload limits must be > 0")
	}

	if _, err := language.Parse(c.I18n.DefaultLanguage); err != nil {
		return fmt.Errorf("i18n.default_language: %w", err)
	}

	return nil
}

// Validate performs business-rule validation on the reminder configuration.
func (c *ReminderConfig) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if err := validateURL(c.Reminder.SiteURL); err != nil {
		return fmt.Errorf("reminder.site_url: %w", err)
	}
	if c.Reminder.Window <= 0 {
		return fmt.Errorf("reminder.window must be > 0 (got %s)", c.Reminder.Window)
	}
	if c.Reminder.Limit == 0 {
		return fmt.Errorf("reminder.limit must be > 0")
	}
	return nil
}

// Validate checks the operator command configuration.
func (c *ToolConfig) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
