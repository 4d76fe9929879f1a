package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}

	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}

	if c.Media.MaxBytes <= 0 {
		return fmt.Errorf("media.max_bytes must be > 0 (got %d)", c.Media.MaxBytes)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (w *WebhookConfig) validate() error {
	if w.SharedSecret == "" {
		return fmt.Errorf("shared_secret is required")
	}
	if w.ConfidenceThreshold < 0 || w.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be within [0,1] (got %v)", w.ConfidenceThreshold)
	}
	if w.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", w.RateLimitPerMinute)
	}
	return nil
}
