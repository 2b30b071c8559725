package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"
)

// Config is built once at startup and injected into every component.
// Nothing below main reads the environment directly.
type Config struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"INFO"`
	DefaultOrigin     string        `env:"DEFAULT_ORIGIN" envDefault:"http://localhost:5173"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`
	// AdminEmails gates /api/admin. Empty means nobody.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	Xendit XenditConfig
	Auth   AuthConfig
	Email  EmailConfig
	AWS    AWSConfig
	Tables TablesConfig
}

type XenditConfig struct {
	SecretKey string `env:"XENDIT_SECRET_KEY"`
	BaseURL   string `env:"XENDIT_BASE_URL" envDefault:"https://api.xendit.co"`
	// Mock accepts the same toggles as PAYMENT_GATEWAY_MOCK always did: 1/true/yes/on/mock.
	Mock string `env:"PAYMENT_GATEWAY_MOCK"`
}

func (c XenditConfig) MockEnabled() bool { return isToggleOn(c.Mock) }

// AuthConfig accepts two spellings for the Supabase settings; the first
// non-empty value wins.
type AuthConfig struct {
	Mode                string `env:"AUTH_MODE" envDefault:"remote"`
	SupabaseURL         string `env:"SUPABASE_URL"`
	ViteSupabaseURL     string `env:"VITE_SUPABASE_URL"`
	SupabaseAnonKey     string `env:"SUPABASE_ANON_KEY"`
	ViteSupabaseAnonKey string `env:"VITE_SUPABASE_ANON_KEY"`
	JWTSecret           string `env:"SUPABASE_JWT_SECRET"`
}

func (c AuthConfig) URL() string {
	return strings.TrimRight(firstNonEmpty(c.SupabaseURL, c.ViteSupabaseURL), "/")
}

func (c AuthConfig) AnonKey() string {
	return firstNonEmpty(c.SupabaseAnonKey, c.ViteSupabaseAnonKey)
}

type EmailConfig struct {
	APIKey     string `env:"UNOSEND_API_KEY"`
	ViteAPIKey string `env:"VITE_UNOSEND_API_KEY"`
	BaseURL    string `env:"UNOSEND_BASE_URL" envDefault:"https://www.unosend.co/api/v1"`
	From       string `env:"EMAIL_FROM" envDefault:"Noir Labs <system@noirlabs.ai>"`
}

func (c EmailConfig) Key() string { return firstNonEmpty(c.APIKey, c.ViteAPIKey) }

// AWSConfig keeps the local-friendly defaults: DynamoDB Local ignores
// credentials but the SDK still requires some.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Invoices      string `env:"INVOICES_TABLE" envDefault:"invoices"`
	Subscriptions string `env:"SUBSCRIPTIONS_TABLE" envDefault:"user_subscriptions"`
	Waitlist      string `env:"WAITLIST_TABLE" envDefault:"waitlist"`
	Profiles      string `env:"PROFILES_TABLE" envDefault:"profiles"`
	SystemLogs    string `env:"SYSTEM_LOGS_TABLE" envDefault:"system_logs"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Auth.Mode = strings.ToLower(strings.TrimSpace(cfg.Auth.Mode))
	switch cfg.Auth.Mode {
	case AuthModeRemote, AuthModeJWT:
	default:
		return Config{}, fmt.Errorf("invalid AUTH_MODE %q (want %q or %q)", cfg.Auth.Mode, AuthModeRemote, AuthModeJWT)
	}

	cfg.DefaultOrigin = strings.TrimRight(strings.TrimSpace(cfg.DefaultOrigin), "/")
	cfg.Xendit.BaseURL = strings.TrimRight(cfg.Xendit.BaseURL, "/")
	cfg.Email.BaseURL = strings.TrimRight(cfg.Email.BaseURL, "/")
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func isToggleOn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
