package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Markets struct {
		CoinGeckoURL      string        `yaml:"coingecko_url"`
		BinanceURL        string        `yaml:"binance_url"`
		BinanceFuturesURL string        `yaml:"binance_futures_url"`
		Timeout           time.Duration `yaml:"timeout"`
		UserAgent         string        `yaml:"user_agent"`
	} `yaml:"markets"`
	News struct {
		Command     string        `yaml:"command"`
		OutputPath  string        `yaml:"output_path"`
		WindowHours int           `yaml:"window_hours"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"news"`
	Report struct {
		CachePath string        `yaml:"cache_path"`
		CacheTTL  time.Duration `yaml:"cache_ttl"`
	} `yaml:"report"`
	Cache struct {
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("REPORT_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Report.CacheTTL = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("NEWS_COMMAND"); v != "" {
		c.News.Command = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Markets.Timeout == 0 {
		c.Markets.Timeout = 15 * time.Second
	}
	if c.Markets.UserAgent == "" {
		c.Markets.UserAgent = "coinpulse/1.0"
	}
	if c.News.WindowHours == 0 {
		c.News.WindowHours = 24
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 90 * time.Second
	}
	if c.Report.CacheTTL == 0 {
		c.Report.CacheTTL = 300 * time.Second
	}
	if c.Report.CachePath == "" {
		c.Report.CachePath = "data/report_cache.json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Markets.CoinGeckoURL == "" {
		return fmt.Errorf("markets.coingecko_url is required")
	}
	if c.Markets.BinanceURL == "" {
		return fmt.Errorf("markets.binance_url is required")
	}
	if c.Report.CacheTTL <= 0 {
		return fmt.Errorf("report.cache_ttl must be positive")
	}
	return nil
}
