package logging

import (
	"fmt"
	"os"
	"time"

	"go-shortlink/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// NewAccessLogger returns a logger that appends one JSON line per request to
// path. Writes are buffered and flushed every flushInterval; the returned
// stop function flushes whatever is still buffered and closes the file.
func NewAccessLogger(path string, flushInterval time.Duration) (*zap.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open access log: %w", err)
	}

	ws := &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(f),
		FlushInterval: flushInterval,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), ws, zapcore.InfoLevel)

	stop := func() error {
		if err := ws.Stop(); err != nil {
			f.Close()
			return fmt.Errorf("failed to flush access log: %w", err)
		}
		return f.Close()
	}

	return zap.New(core), stop, nil
}
