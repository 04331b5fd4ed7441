package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM       LLMConfig
	Assistant AssistantConfig

	// Backend
	Supabase SupabaseConfig
	Database DatabaseConfig
	Todo     TodoConfig
}

type EnvironmentConfig struct {
	Name string
}

// IsDevelopment reports whether error details may be exposed to clients.
func (e EnvironmentConfig) IsDevelopment() bool {
	return e.Name == "development"
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	AIRequestsPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single model endpoint.
// Several entries may share a provider name and differ only by model.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type AssistantConfig struct {
	Timezone      string
	PastDuePolicy string
}

type SupabaseConfig struct {
	URL               string
	AnonKey           string
	JWTSecret         string
	AccessCookieName  string
	RefreshCookieName string
}

type DatabaseConfig struct {
	DSN string
}

type TodoConfig struct {
	Backend     string
	DeleteDelay time.Duration
}

const (
	TodoBackendSupabase = "supabase"
	TodoBackendPostgres = "postgres"
)

// DefaultModels is the fallback chain used when no provider list is configured.
var DefaultModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}

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
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.AIRequestsPerMin = viper.GetInt("rate_limit.ai_requests_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		cfg.LLM.Providers = parseProviders(viper.Get("llm.providers"))
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = defaultProviders(expandEnvVar("${GEMINI_API_KEY}"))
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.PastDuePolicy = viper.GetString("assistant.past_due_policy")

	// Backend
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.AnonKey = expandEnvVar(viper.GetString("supabase.anon_key"))
	cfg.Supabase.JWTSecret = expandEnvVar(viper.GetString("supabase.jwt_secret"))
	cfg.Supabase.AccessCookieName = viper.GetString("supabase.access_cookie_name")
	cfg.Supabase.RefreshCookieName = viper.GetString("supabase.refresh_cookie_name")
	if sbURL := viper.GetString("supabase_url"); sbURL != "" {
		cfg.Supabase.URL = sbURL
	}

	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	cfg.Todo.Backend = viper.GetString("todo.backend")
	cfg.Todo.DeleteDelay = viper.GetDuration("todo.delete_delay")

	switch cfg.Todo.Backend {
	case TodoBackendSupabase:
	case TodoBackendPostgres:
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("todo.backend=postgres requires database.dsn")
		}
	default:
		return nil, fmt.Errorf("unknown todo.backend %q", cfg.Todo.Backend)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "90s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("rate_limit.ai_requests_per_min", 20)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("assistant.timezone", "Asia/Seoul")
	viper.SetDefault("assistant.past_due_policy", "clamp")

	viper.SetDefault("supabase.access_cookie_name", "sb-access-token")
	viper.SetDefault("supabase.refresh_cookie_name", "sb-refresh-token")
	viper.SetDefault("todo.backend", TodoBackendSupabase)
	viper.SetDefault("todo.delete_delay", "5s")
}

func defaultProviders(apiKey string) []ProviderConfig {
	providers := make([]ProviderConfig, 0, len(DefaultModels))
	for i, model := range DefaultModels {
		providers = append(providers, ProviderConfig{
			Name:     "gemini",
			Enabled:  true,
			Priority: i + 1,
			APIKey:   apiKey,
			Model:    model,
			Timeout:  "30s",
		})
	}
	return providers
}

func parseProviders(raw interface{}) []ProviderConfig {
	providersList, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration.
// A missing API key is not an error: the server boots and calls fail as auth errors.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s/%s: priority must be positive", provider.Name, provider.Model)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s/%s: duplicate priority %d", provider.Name, provider.Model, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
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

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
