package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripmigo/internal/aipipeline"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	AI      AIConfig      `mapstructure:"ai"`
	Maps    MapsConfig    `mapstructure:"maps"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type AIConfig struct {
	Provider       string        `mapstructure:"provider"` // gemini or openai
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	OpenAIAPIKey   string        `mapstructure:"openai_api_key"`
	Model          string        `mapstructure:"model"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	CallTimeout    time.Duration `mapstructure:"call_timeout"`
	Extractor      string        `mapstructure:"extractor"`
}

// APIKey returns the credential of the selected provider.
func (c AIConfig) APIKey() string {
	if strings.EqualFold(c.Provider, "openai") {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

type MapsConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type StoreConfig struct {
	Driver      string        `mapstructure:"driver"` // memory or redis
	PlanningTTL time.Duration `mapstructure:"planning_ttl"`
}

type RedisConfig struct {
	Address   string `mapstructure:"address"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// envAliases binds the historical variable names onto config keys.
var envAliases = map[string][]string{
	"server.port":          {"SERVER_PORT", "PORT"},
	"ai.gemini_api_key":    {"AI_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"},
	"ai.openai_api_key":    {"AI_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"maps.api_key":         {"MAPS_API_KEY", "GOOGLE_MAPS_API_KEY"},
	"auth.jwt_secret":      {"AUTH_JWT_SECRET", "JWT_SECRET"},
	"redis.address":        {"REDIS_ADDRESS", "REDIS_ADDR"},
	"cors.allowed_origins": {"CORS_ALLOWED_ORIGINS"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("ai.openai_api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.retry_base_delay", time.Second)
	v.SetDefault("ai.call_timeout", 60*time.Second)
	v.SetDefault("ai.extractor", "first_last")
	v.SetDefault("maps.api_key", "")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.planning_ttl", 24*time.Hour)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "tripmigo:")
	v.SetDefault("auth.jwt_secret", "tripmigo-dev-secret")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("tracing.enabled", false)
}

// Load reads .env (if present), an optional config.yaml and the environment,
// in increasing order of precedence.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New(), paths...)
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.AI.Provider) {
	case "gemini", "openai":
	default:
		return fmt.Errorf("ai.provider must be gemini or openai, got %q", c.AI.Provider)
	}
	switch c.Store.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("store.driver must be memory or redis, got %q", c.Store.Driver)
	}
	switch c.AI.Extractor {
	case aipipeline.ExtractorFirstLast, aipipeline.ExtractorBalanced:
	default:
		return fmt.Errorf("ai.extractor must be %s or %s, got %q",
			aipipeline.ExtractorFirstLast, aipipeline.ExtractorBalanced, c.AI.Extractor)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}
