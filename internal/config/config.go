// Package config loads daemon settings from config files, environment
// variables, and command-line flags.
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"nodevitals/internal/errors"
	"nodevitals/internal/logger"
)

const (
	configName    = "nodevitals"
	configPathEnv = "NODEVITALS_CONFIG"
	envPrefix     = "NODEVITALS"

	// DefaultLogLevel is used when no log_level is set anywhere.
	DefaultLogLevel = "info"

	defaultBlockStoragePath = "/var/lib/nodevitals/blocks"
	defaultInterval         = 10
	defaultListenAddress    = ":9120"
)

// Config holds the daemon settings after merging defaults, the config
// file, environment variables, and flags. Flags win over environment
// variables, which win over the file, which wins over defaults.
type Config struct {
	BlockStoragePath string `mapstructure:"block_storage_path"`
	Interval         int    `mapstructure:"interval"`
	ListenAddress    string `mapstructure:"listen_address"`
	LogLevel         string `mapstructure:"log_level"`
	Debug            bool   `mapstructure:"debug"`
	Verbose          bool   `mapstructure:"verbose"`
	Monitor          bool   `mapstructure:"monitor"`
}

// Load reads the configuration from all sources and validates it.
func Load() (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.String("block-storage-path", defaultBlockStoragePath, "directory whose file sizes are reported as block storage usage")
	fs.Int("interval", defaultInterval, "seconds between scheduled scrapes")
	fs.String("listen-address", defaultListenAddress, "HTTP listen address for health and metrics, empty disables the server")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warning, error)")
	fs.Bool("debug", false, "enable debugging mode")
	fs.Bool("verbose", false, "enable verbose logging")
	fs.Bool("monitor", false, "log every scheduled scrape result")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	vp := viper.New()
	vp.SetDefault("block_storage_path", defaultBlockStoragePath)
	vp.SetDefault("interval", defaultInterval)
	vp.SetDefault("listen_address", defaultListenAddress)
	vp.SetDefault("log_level", DefaultLogLevel)
	vp.SetDefault("debug", false)
	vp.SetDefault("verbose", false)
	vp.SetDefault("monitor", false)

	if path := os.Getenv(configPathEnv); path != "" {
		vp.SetConfigFile(path)
	} else {
		vp.SetConfigName(configName)
		vp.SetConfigType("toml")
		vp.AddConfigPath("/etc/nodevitals")
		vp.AddConfigPath("$HOME/.config/nodevitals")
		vp.AddConfigPath(".")
	}

	vp.SetEnvPrefix(envPrefix)
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Only flags the user actually set may override the other sources.
	fs.Visit(func(f *pflag.Flag) {
		vp.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.BlockStoragePath == "" {
		return errFactory.WithData(errors.ErrMissingConfig, "block_storage_path")
	}

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
