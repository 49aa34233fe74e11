package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Rates     RatesConfig     `yaml:"rates" mapstructure:"rates"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Display   DisplayConfig   `yaml:"display" mapstructure:"display"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the local extraction cache.
type StoreConfig struct {
	Path          string `yaml:"path" mapstructure:"path"`
	CacheTTLHours int    `yaml:"cache_ttl_hours" mapstructure:"cache_ttl_hours"`
}

// AnthropicConfig holds Anthropic API settings for document extraction.
type AnthropicConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	Model         string `yaml:"model" mapstructure:"model"`
	MaxTokens     int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	Retries       int    `yaml:"retries" mapstructure:"retries"`
	CooldownSecs  int    `yaml:"cooldown_secs" mapstructure:"cooldown_secs"`
}

// RatesConfig holds exchange-rate provider settings. Rates are used for
// display only; stored records always keep their source currency.
type RatesConfig struct {
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	FallbackURL  string `yaml:"fallback_url" mapstructure:"fallback_url"`
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// BatchConfig configures batch comparison processing.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// DisplayConfig configures report rendering.
type DisplayConfig struct {
	Language string `yaml:"language" mapstructure:"language"` // "en" or "ru"
	Locale   string `yaml:"locale" mapstructure:"locale"`     // BCP 47, number formatting
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ESTIMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "estimate.db")
	v.SetDefault("store.cache_ttl_hours", 168)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 8192)
	v.SetDefault("anthropic.retries", 3)
	v.SetDefault("anthropic.cooldown_secs", 30)
	v.SetDefault("rates.base_url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("rates.fallback_url", "https://www.cbr-xml-daily.ru/daily_json.js")
	v.SetDefault("rates.timeout_secs", 10)
	v.SetDefault("display.language", "en")
	v.SetDefault("display.locale", "en")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields a given run mode requires. Modes: "compare"
// needs nothing beyond defaults, "extract" needs API credentials, "serve"
// needs a listenable port.
func (c *Config) Validate(mode string) error {
	var problems []string

	check := func(mode string) {
		switch mode {
		case "compare":
		case "extract":
			if c.Anthropic.Key == "" {
				problems = append(problems, "anthropic.key is required")
			}
			if c.Anthropic.Model == "" {
				problems = append(problems, "anthropic.model is required")
			}
			if c.Anthropic.MaxTokens <= 0 {
				problems = append(problems, "anthropic.max_tokens must be > 0")
			}
			if c.Store.Path == "" {
				problems = append(problems, "store.path is required")
			}
		case "serve":
			if c.Server.Port <= 0 {
				problems = append(problems, "server.port must be > 0")
			}
		default:
			problems = append(problems, "unknown mode "+mode)
		}
	}
	check(mode)

	if mode != "compare" {
		if c.Batch.MaxConcurrent < 1 || c.Batch.MaxConcurrent > 32 {
			problems = append(problems, "batch.max_concurrent must be between 1 and 32")
		}
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
