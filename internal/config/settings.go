package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Settings struct {
	Server ServerSettings `mapstructure:"server"`
	Log    LogSettings    `mapstructure:"log"`
	AI     AISettings     `mapstructure:"ai"`
	CORS   CORSSettings   `mapstructure:"cors"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// AISettings selects and configures the upstream question provider.
// Provider is "gemini" or "gateway" (an OpenAI-compatible endpoint).
type AISettings struct {
	Provider          string        `mapstructure:"provider"`
	GeminiAPIKey      string        `mapstructure:"gemini_api_key"`
	GeminiModel       string        `mapstructure:"gemini_model"`
	GeminiBaseURL     string        `mapstructure:"gemini_base_url"`
	GatewayURL        string        `mapstructure:"gateway_url"`
	GatewayAPIKey     string        `mapstructure:"gateway_api_key"`
	GatewayModel      string        `mapstructure:"gateway_model"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

type CORSSettings struct {
	MaxAge int `mapstructure:"max_age"`
}

const (
	ProviderGemini  = "gemini"
	ProviderGateway = "gateway"
)

// Load reads settings from an optional config.yaml under path and from the
// environment. A missing config file is not an error; missing credentials are
// reported later, per request.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("ai.provider", ProviderGemini)
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("ai.gemini_model", "gemini-2.0-flash")
	v.SetDefault("ai.gemini_base_url", "")
	v.SetDefault("ai.gateway_url", "")
	v.SetDefault("ai.gateway_api_key", "")
	v.SetDefault("ai.gateway_model", "google/gemini-2.5-flash")
	v.SetDefault("ai.requests_per_minute", 0)
	v.SetDefault("ai.timeout", time.Duration(0))
	v.SetDefault("cors.max_age", 300)

	// Server
	v.BindEnv("server.addr", "HTTP_ADDR")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Logging
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.file", "LOG_FILE")

	// AI
	v.BindEnv("ai.provider", "AI_PROVIDER")
	v.BindEnv("ai.gemini_api_key", "GOOGLE_GEMINI_API_KEY")
	v.BindEnv("ai.gemini_model", "GEMINI_MODEL")
	v.BindEnv("ai.gemini_base_url", "GEMINI_BASE_URL")
	v.BindEnv("ai.gateway_url", "AI_GATEWAY_URL")
	v.BindEnv("ai.gateway_api_key", "AI_GATEWAY_API_KEY")
	v.BindEnv("ai.gateway_model", "AI_GATEWAY_MODEL")
	v.BindEnv("ai.requests_per_minute", "AI_REQUESTS_PER_MINUTE")
	v.BindEnv("ai.timeout", "AI_TIMEOUT")

	// CORS
	v.BindEnv("cors.max_age", "CORS_MAX_AGE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
