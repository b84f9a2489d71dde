package ams

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/moffa90/go-vuams/transport"
)

// Transport is the session surface a Device drives. *transport.Session
// satisfies it; tests substitute scripted fakes.
type Transport interface {
	Write(p []byte) error
	PollRead(ctx context.Context) ([]byte, error)
	Close() error
}

// Opener opens the transport for the named port. The default Opener opens
// a real serial session via the transport package.
type Opener func(port string) (Transport, error)

// Config holds the device configuration.
type Config struct {
	// Logger receives device events (optional, defaults to a no-op logger)
	Logger *zap.Logger

	// BaudRate is the serial line speed
	BaudRate int

	// ResponseTimeout bounds each wait for a device response
	ResponseTimeout time.Duration

	// PollInterval is the sleep between transport checks while waiting
	PollInterval time.Duration

	// Opener overrides how the transport is opened (tests, alternate bridges)
	Opener Opener
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:          zap.NewNop(),
		BaudRate:        transport.DefaultBaudRate,
		ResponseTimeout: transport.DefaultResponseTimeout,
		PollInterval:    transport.DefaultPollInterval,
	}
}

// Option is a functional option for configuring a Device.
type Option func(*Config)

// WithLogger sets the logger for device events.
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

// WithResponseTimeout overrides the deadline for each device response.
func WithResponseTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ResponseTimeout = d
		}
	}
}

// WithPollInterval overrides the sleep between transport checks.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}

// WithOpener overrides how the transport is opened.
func WithOpener(opener Opener) Option {
	return func(c *Config) {
		if opener != nil {
			c.Opener = opener
		}
	}
}
