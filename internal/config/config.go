// Package config loads edpay settings from an optional .env file, an optional
// $EDPAY_HOME/config.yaml and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds edpay configuration.
type Config struct {
	// Home is the data directory; a leading ~ is expanded.
	Home string `mapstructure:"EDPAY_HOME"`
	// DBPath is the SQLite file. Empty means Home/edpay.db.
	DBPath string `mapstructure:"EDPAY_DB"`
	Env    string `mapstructure:"EDPAY_ENV"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel    string `mapstructure:"EDPAY_LOG_LEVEL"`
	LogUseCases bool   `mapstructure:"EDPAY_LOG_USE_CASES"`

	PlatformFeePct float64 `mapstructure:"EDPAY_PLATFORM_FEE_PCT"`
	GSTPct         float64 `mapstructure:"EDPAY_GST_PCT"`

	// ChatReplyDelay is how long the chat panel waits before auto-replying.
	ChatReplyDelay time.Duration `mapstructure:"EDPAY_CHAT_REPLY_DELAY"`
}

// Load builds and validates Config. A missing .env or config.yaml is ignored.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}

	v.AutomaticEnv()

	v.SetDefault("EDPAY_HOME", "~/.edpay")
	v.SetDefault("EDPAY_DB", "")
	v.SetDefault("EDPAY_ENV", EnvDevelopment)
	v.SetDefault("EDPAY_LOG_LEVEL", "warn")
	v.SetDefault("EDPAY_LOG_USE_CASES", false)
	v.SetDefault("EDPAY_PLATFORM_FEE_PCT", payout.DefaultPlatformFeePercentage)
	v.SetDefault("EDPAY_GST_PCT", payout.DefaultGSTPercentage)
	v.SetDefault("EDPAY_CHAT_REPLY_DELAY", "3s")

	home, err := expandHome(v.GetString("EDPAY_HOME"))
	if err != nil {
		return nil, err
	}
	yamlPath := filepath.Join(home, "config.yaml")
	if _, statErr := os.Stat(yamlPath); statErr == nil {
		v.SetConfigFile(yamlPath)
		v.SetConfigType("yaml")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", yamlPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Home = home
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, "edpay.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PlatformFeePct < 0 || c.PlatformFeePct > 100 {
		return fmt.Errorf("config: EDPAY_PLATFORM_FEE_PCT must be between 0 and 100, got %v", c.PlatformFeePct)
	}
	if c.GSTPct < 0 || c.GSTPct > 100 {
		return fmt.Errorf("config: EDPAY_GST_PCT must be between 0 and 100, got %v", c.GSTPct)
	}
	if c.ChatReplyDelay < 0 {
		return errors.New("config: EDPAY_CHAT_REPLY_DELAY must not be negative")
	}
	return nil
}

// PayoutConfig returns the configured deduction rates with the given
// additional charges.
func (c *Config) PayoutConfig(charges ...domain.AdditionalCharge) *payout.Config {
	return payout.NewConfig(c.PlatformFeePct, c.GSTPct, charges...)
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(userHome, strings.TrimPrefix(path, "~")), nil
}
