package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a named zap logger. Debug level switches to the colored
// console encoder, everything else is JSON. A non-empty Sink tees output into
// that file; if it cannot be opened the logger keeps stdout and says so.
func NewLogger(cfg Log, name string) *zap.Logger {
	log, err := Build(cfg, name)
	if err != nil {
		log = newLogger(cfg, name, zapcore.Lock(os.Stdout))
		log.Warn("log sink disabled", zap.String("sink", cfg.Sink), zap.Error(err))
	}
	return log
}

// Build is NewLogger that fails when the sink cannot be opened.
func Build(cfg Log, name string) (*zap.Logger, error) {
	ws := zapcore.Lock(os.Stdout)
	if cfg.Sink != "" {
		f, err := os.OpenFile(cfg.Sink, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open log sink")
		}
		ws = zapcore.NewMultiWriteSyncer(ws, zapcore.AddSync(f))
	}
	return newLogger(cfg, name, ws), nil
}

func newLogger(cfg Log, name string, ws zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.LogLevel == zapcore.DebugLevel {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core, zap.AddCaller()).Named(name)
}
