package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func WithSweepInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.Sweeper.Interval = interval
	}
}
