package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when no inference token is configured.
// The service must not start without it.
var ErrMissingCredential = errors.New("GITHUB_TOKEN environment variable is required")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Upload     UploadConfig

	// Task generation
	Inference    InferenceConfig
	GoogleSheets GoogleSheetsConfig
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

type CORSConfig struct {
	AllowedOrigins []string
	FrontendURL    string // extra origin, usually the deployed planner UI
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables limiting
}

type UploadConfig struct {
	MaxBytes int64
}

// InferenceConfig describes the upstream chat-completion endpoint.
type InferenceConfig struct {
	Token    string
	Endpoint string
	Model    string
	Timeout  time.Duration // 0 means no client-side timeout
	Timezone string        // IANA zone used for "today" in prompts
}

type GoogleSheetsConfig struct {
	CredentialsPath string
}

// Load loads configuration using Viper.
// A .env file is loaded first when present. config.yaml is searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	_ = godotenv.Load()

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
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.CORS.FrontendURL = viper.GetString("cors.frontend_url")
	if frontendURL := viper.GetString("frontend_url"); frontendURL != "" {
		cfg.CORS.FrontendURL = frontendURL
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Upload.MaxBytes = viper.GetInt64("upload.max_bytes")

	// Inference
	cfg.Inference.Token = viper.GetString("inference.token")
	if token := viper.GetString("github_token"); token != "" {
		cfg.Inference.Token = token
	}
	cfg.Inference.Endpoint = viper.GetString("inference.endpoint")
	cfg.Inference.Model = viper.GetString("inference.model")
	cfg.Inference.Timeout = viper.GetDuration("inference.timeout")
	cfg.Inference.Timezone = viper.GetString("inference.timezone")

	// Google Sheets (optional)
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3001)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", strings.Join(DefaultAllowedOrigins, ","))
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("upload.max_bytes", 20<<20)

	viper.SetDefault("inference.endpoint", "https://models.github.ai/inference")
	viper.SetDefault("inference.model", "openai/gpt-4.1")
	viper.SetDefault("inference.timeout", "0s")
	viper.SetDefault("inference.timezone", "UTC")
}

// DefaultAllowedOrigins are the browser origins the planner UI is served from.
var DefaultAllowedOrigins = []string{
	"http://localhost:8000",
	"http://localhost:3000",
	"https://*.github.io",
	"https://*.railway.app",
}

// validate rejects configurations the service cannot run with.
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Inference.Token) == "" {
		return ErrMissingCredential
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("invalid upload.max_bytes: %d", cfg.Upload.MaxBytes)
	}
	if cfg.Inference.Endpoint == "" || cfg.Inference.Model == "" {
		return fmt.Errorf("inference.endpoint and inference.model are required")
	}
	return nil
}

// Origins returns the configured CORS origins including FrontendURL.
func (c CORSConfig) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+1)
	origins = append(origins, c.AllowedOrigins...)
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
