// Package config loads the vuamsctl configuration from defaults, an
// optional config file, and VUAMS_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SerialConfig holds the serial link settings.
type SerialConfig struct {
	// Port pins the serial port; empty means discover automatically
	Port string `mapstructure:"port"`

	// BaudRate is the line speed
	BaudRate int `mapstructure:"baudRate"`

	// ResponseTimeout bounds each wait for a device response
	ResponseTimeout time.Duration `mapstructure:"responseTimeout"`

	// PollInterval is the sleep between transport checks while waiting
	PollInterval time.Duration `mapstructure:"pollInterval"`
}

// LumberjackConfig holds the log rotation settings.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig holds the log level and output settings.
type LoggingConfig struct {
	Level  string           `mapstructure:"level"`
	Format string           `mapstructure:"format"`
	File   LumberjackConfig `mapstructure:"file"`
}

// Config is the top-level configuration.
type Config struct {
	Serial  SerialConfig  `mapstructure:"serial"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads the configuration from the given file path, falling back to
// defaults and VUAMS_ environment overrides. An empty path is allowed: the
// config file is optional, defaults and environment carry a usable setup.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vuams")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix("VUAMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serial.port", "")
	v.SetDefault("serial.baudRate", 38400)
	v.SetDefault("serial.responseTimeout", "3s")
	v.SetDefault("serial.pollInterval", "100ms")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "logs/vuamsctl.log")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 30)
	v.SetDefault("logging.file.compress", true)
}
