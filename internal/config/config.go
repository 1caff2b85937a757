// Package config loads the converter settings from defaults, an optional
// config file, EML2DOC_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/emurenMRz/eml2doc/internal/automation"
	"github.com/emurenMRz/eml2doc/internal/poller"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "EML2DOC"

// Keys shared by viper and the flags bound to them.
const (
	KeyAttempts   = "attempts"
	KeyBackoff    = "backoff"
	KeyMaxBackoff = "max_backoff"
	KeyFormat     = "format"
	KeyTempDir    = "temp_dir"
	KeyMailboxDir = "mailbox_dir"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

type Config struct {
	Attempts   int           `mapstructure:"attempts"`
	Backoff    time.Duration `mapstructure:"backoff"`
	MaxBackoff time.Duration `mapstructure:"max_backoff"`
	Format     string        `mapstructure:"format"`
	TempDir    string        `mapstructure:"temp_dir"`
	MailboxDir string        `mapstructure:"mailbox_dir"`
	LogLevel   string        `mapstructure:"log_level"`
	LogFormat  string        `mapstructure:"log_format"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAttempts, poller.DefaultMaxAttempts)
	v.SetDefault(KeyBackoff, time.Duration(0))
	v.SetDefault(KeyMaxBackoff, time.Duration(0))
	v.SetDefault(KeyFormat, automation.FormatDOC.String())
	v.SetDefault(KeyTempDir, "")
	v.SetDefault(KeyMailboxDir, "")
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (if not empty) into v and decodes the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Attempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", c.Attempts)
	}

	if c.Backoff < 0 || c.MaxBackoff < 0 {
		return fmt.Errorf("backoff durations must not be negative")
	}

	if _, err := automation.ParseSaveFormat(c.Format); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

func (c Config) Policy() poller.Policy {
	return poller.Policy{
		MaxAttempts: c.Attempts,
		Backoff:     c.Backoff,
		MaxBackoff:  c.MaxBackoff,
	}
}

// SaveFormat returns the parsed Format; Validate has already checked it.
func (c Config) SaveFormat() automation.SaveFormat {
	f, _ := automation.ParseSaveFormat(c.Format)
	return f
}
