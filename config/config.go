package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultHongmoveURL = "https://hongmove-api-staging.up.railway.app"
	defaultEnvFile     = ".env"
)

type Config struct {
	App       AppConfig
	Hongmove  HongmoveConfig
	Log       LogConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// HongmoveConfig holds the upstream booking API location and the bearer
// credentials used for server-to-server calls.
type HongmoveConfig struct {
	BaseURL    string
	AgentToken string
	AdminToken string
	Timeout    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// TrustedProxies are IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
}

// Enabled reports whether the public create route should be rate limited.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0 && c.Burst > 0
}

// LoadConfig reads the optional .env file and the process environment once.
// The returned Config is treated as read-only for the lifetime of the process.
func LoadConfig() (*Config, error) {
	return load(defaultEnvFile)
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HONGMOVE_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	// The Next.js deployment exposed the base URL under a public prefix.
	if err := v.BindEnv("HONGMOVE_API_URL", "HONGMOVE_API_URL", "NEXT_PUBLIC_HONGMOVE_API_URL"); err != nil {
		return nil, err
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	timeout, err := time.ParseDuration(v.GetString("HONGMOVE_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(v.GetString("HONGMOVE_API_URL")), "/")
	if baseURL == "" {
		baseURL = DefaultHongmoveURL
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Hongmove: HongmoveConfig{
			BaseURL:    baseURL,
			AgentToken: strings.TrimSpace(v.GetString("HONGMOVE_AGENT_TOKEN")),
			AdminToken: strings.TrimSpace(v.GetString("ADMIN_API_KEY")),
			Timeout:    timeout,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies:    splitList(v.GetString("RATE_LIMIT_TRUSTED_PROXIES")),
		},
	}

	return config, nil
}

// splitList turns a comma separated value into its non-empty trimmed items.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
