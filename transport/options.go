package transport

import (
	"time"

	"go.uber.org/zap"
)

// Line and timing defaults for the AMS USB infrared bridge.
const (
	// DefaultBaudRate is the bridge's fixed line speed
	DefaultBaudRate = 38400

	// DefaultResponseTimeout is how long PollRead waits for a response
	DefaultResponseTimeout = 3 * time.Second

	// DefaultPollInterval is the sleep between stream checks during PollRead
	DefaultPollInterval = 100 * time.Millisecond
)

// Config holds the session configuration.
type Config struct {
	// Logger receives session events (optional, defaults to a no-op logger)
	Logger *zap.Logger

	// BaudRate is the serial line speed
	BaudRate int

	// ResponseTimeout bounds each PollRead call
	ResponseTimeout time.Duration

	// PollInterval is the sleep between stream checks during PollRead
	PollInterval time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:          zap.NewNop(),
		BaudRate:        DefaultBaudRate,
		ResponseTimeout: DefaultResponseTimeout,
		PollInterval:    DefaultPollInterval,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithLogger sets the logger for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithBaudRate overrides the serial line speed.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithResponseTimeout overrides the deadline for each PollRead call.
func WithResponseTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ResponseTimeout = d
		}
	}
}

// WithPollInterval overrides the sleep between stream checks during PollRead.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}
