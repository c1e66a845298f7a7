package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction gateways
	Gemini   GeminiConfig
	DeepSeek DeepSeekConfig

	// Invite dispatch
	Invite         InviteConfig
	Azure          AzureConfig
	GoogleCalendar GoogleCalendarConfig

	// Parsing behavior
	Parse ParseConfig

	// Frontend
	Frontend FrontendConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// DeepSeekConfig configures the secondary verification pass. An empty APIKey
// disables the cross-check.
type DeepSeekConfig struct {
	APIKey string
	Model  string
}

// InviteConfig selects the calendar backend and the event timezone.
type InviteConfig struct {
	Provider string // "msgraph" or "gcalendar"
	Timezone string
}

// AzureConfig holds the Microsoft app registration used for sign-in.
type AzureConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	RedirectURL  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
}

type ParseConfig struct {
	CacheSize       int
	RateLimitPerMin int
}

type FrontendConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Extraction gateways
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	if key := viper.GetString("deepseek_api_key"); key != "" {
		cfg.DeepSeek.APIKey = key
	}

	// Invite dispatch
	cfg.Invite.Provider = viper.GetString("invite.provider")
	cfg.Invite.Timezone = viper.GetString("invite.timezone")

	cfg.Azure.ClientID = viper.GetString("azure.client_id")
	cfg.Azure.ClientSecret = viper.GetString("azure.client_secret")
	cfg.Azure.TenantID = viper.GetString("azure.tenant_id")
	cfg.Azure.RedirectURL = viper.GetString("azure.redirect_url")
	if id := viper.GetString("azure_client_id"); id != "" {
		cfg.Azure.ClientID = id
	}
	if secret := viper.GetString("azure_client_secret"); secret != "" {
		cfg.Azure.ClientSecret = secret
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	// Parsing behavior
	cfg.Parse.CacheSize = viper.GetInt("parse.cache_size")
	cfg.Parse.RateLimitPerMin = viper.GetInt("parse.rate_limit_per_min")

	// Frontend
	cfg.Frontend.Dir = viper.GetString("frontend.dir")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required - set GEMINI_API_KEY or add it to config.yaml")
	}

	switch cfg.Invite.Provider {
	case "msgraph":
		if cfg.Azure.ClientID == "" {
			return fmt.Errorf("azure.client_id is required for the msgraph invite provider")
		}
	case "gcalendar":
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return fmt.Errorf("google_calendar.credentials_path is required for the gcalendar invite provider")
		}
	default:
		return fmt.Errorf("invite.provider must be msgraph or gcalendar, got %q", cfg.Invite.Provider)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("invite.provider", "msgraph")
	viper.SetDefault("invite.timezone", "America/Los_Angeles")
	viper.SetDefault("azure.tenant_id", "common")
	viper.SetDefault("azure.redirect_url", "http://localhost:8080/auth/callback")

	viper.SetDefault("parse.cache_size", 16)
	viper.SetDefault("parse.rate_limit_per_min", 6)

	viper.SetDefault("frontend.dir", "./frontend")
}
