package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"logLevel" envconfig:"LOG_LEVEL" default:"info"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a named zap logger writing to stderr or, if cfg.Sink is
// set, to the given file.
func NewLogger(cfg Log, name string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.Lock(os.Stderr)
	if cfg.Sink != "" {
		f, err := os.OpenFile(cfg.Sink, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("logger sink %q: %v", cfg.Sink, err)
		}
		sink = zapcore.Lock(f)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		sink,
		zap.NewAtomicLevelAt(cfg.LogLevel),
	)

	return zap.New(core, zap.AddCaller()).Named(name)
}
