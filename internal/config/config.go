// Package config loads the settings of the collq tool from a config file,
// COLLQ_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.llib.dev/frameless/pkg/logging"
)

// Duplicate-key policies for the index command.
const (
	OnDuplicateSkip = "skip"
	OnDuplicateFail = "fail"
)

// Config holds the collq settings.
type Config struct {
	Input       string `mapstructure:"input"`
	LogLevel    string `mapstructure:"log_level"`
	OnDuplicate string `mapstructure:"on_duplicate"`
	Indent      bool   `mapstructure:"indent"`
}

// Level returns the configured logging level.
func (c *Config) Level() logging.Level { return logging.Level(c.LogLevel) }

// Load reads the configuration.
//
// When path is empty, collq.yaml is looked up in the working directory and
// in $HOME/.collq; a missing file is not an error. Flags named like the keys
// (with '-' in place of '_') override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("collq")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.collq")
	}

	v.SetDefault("input", "-")
	v.SetDefault("log_level", string(logging.LevelInfo))
	v.SetDefault("on_duplicate", OnDuplicateSkip)
	v.SetDefault("indent", true)

	v.SetEnvPrefix("COLLQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !isKnownKey(key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("error binding flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isKnownKey(key string) bool {
	switch key {
	case "input", "log_level", "on_duplicate", "indent":
		return true
	}
	return false
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.OnDuplicate {
	case OnDuplicateSkip, OnDuplicateFail:
	default:
		return fmt.Errorf("config: on_duplicate must be %q or %q, got %q",
			OnDuplicateSkip, OnDuplicateFail, c.OnDuplicate)
	}
	switch logging.Level(c.LogLevel) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
