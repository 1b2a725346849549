package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
	// TrustedProxy enables X-Forwarded-For / X-Real-IP resolution for client keys.
	TrustedProxy bool `mapstructure:"trusted_proxy"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Provider is one upstream data source. An empty BaseURL selects the client's default.
type Provider struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Providers struct {
	FX      Provider `mapstructure:"fx"`
	Crypto  Provider `mapstructure:"crypto"`
	Equity  Provider `mapstructure:"equity"`
	Weather Provider `mapstructure:"weather"`
}

type Cache struct {
	ResultTTLSeconds  int   `mapstructure:"result_ttl_seconds"`
	MaxItems          int64 `mapstructure:"max_items"`
	CatalogTTLSeconds int   `mapstructure:"catalog_ttl_seconds"`
	OptionsTTLSeconds int   `mapstructure:"options_ttl_seconds"`
}

func (c Cache) ResultTTL() time.Duration  { return seconds(c.ResultTTLSeconds) }
func (c Cache) CatalogTTL() time.Duration { return seconds(c.CatalogTTLSeconds) }
func (c Cache) OptionsTTL() time.Duration { return seconds(c.OptionsTTLSeconds) }

type RateLimit struct {
	Requests             int `mapstructure:"requests"`
	WindowSeconds        int `mapstructure:"window_seconds"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds"`
}

func (r RateLimit) Window() time.Duration        { return seconds(r.WindowSeconds) }
func (r RateLimit) SweepInterval() time.Duration { return seconds(r.SweepIntervalSeconds) }

type Scheduler struct {
	CatalogRefreshSeconds int `mapstructure:"catalog_refresh_seconds"`
}

func (s Scheduler) CatalogRefresh() time.Duration { return seconds(s.CatalogRefreshSeconds) }

type Metrics struct {
	Namespace string `mapstructure:"namespace"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Providers  Providers  `mapstructure:"providers"`
	Currencies []string   `mapstructure:"currencies"`
	Cache      Cache      `mapstructure:"cache"`
	RateLimit  RateLimit  `mapstructure:"rate_limit"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Metrics    Metrics    `mapstructure:"metrics"`
}

// Init loads .env and config.yaml when present, then overlays environment variables.
// Neither file is required: every setting has a default or an env binding.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = defaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if os.Getenv("CONFIG_FILE") != "" {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.trusted_proxy", false)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("cache.result_ttl_seconds", 60)
	v.SetDefault("cache.max_items", 10_000)
	v.SetDefault("cache.catalog_ttl_seconds", 60)
	v.SetDefault("cache.options_ttl_seconds", 300)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window_seconds", 60)
	v.SetDefault("rate_limit.sweep_interval_seconds", 300)
	v.SetDefault("scheduler.catalog_refresh_seconds", 300)
	v.SetDefault("metrics.namespace", "pricerelay")

	// http server env vars
	_ = v.BindEnv("http_server.port", "PORT")
	_ = v.BindEnv("http_server.trusted_proxy", "TRUSTED_PROXY")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// provider env vars
	_ = v.BindEnv("providers.fx.base_url", "FX_BASE_URL")
	_ = v.BindEnv("providers.fx.api_key", "FX_API_KEY")
	_ = v.BindEnv("providers.crypto.base_url", "COINGECKO_BASE_URL")
	_ = v.BindEnv("providers.crypto.api_key", "COINGECKO_API_KEY")
	_ = v.BindEnv("providers.equity.base_url", "FINNHUB_BASE_URL")
	_ = v.BindEnv("providers.equity.api_key", "FINNHUB_API_KEY")
	_ = v.BindEnv("providers.weather.base_url", "WEATHER_BASE_URL")
	_ = v.BindEnv("providers.weather.api_key", "WEATHER_API_KEY")

	_ = v.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	_ = v.BindEnv("rate_limit.window_seconds", "RATE_LIMIT_WINDOW_SECONDS")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
