// Package logging builds the zap logger glassy writes to. The terminal
// belongs to the UI, so output goes to a rotating file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/glassy/internal/config"
)

// Logger wraps a zap logger together with the file it writes to.
type Logger struct {
	*zap.Logger
	file *lumberjack.Logger
}

// New builds a JSON file logger from cfg. A disabled log file yields a no-op
// logger.
func New(cfg config.LogConfig) (*Logger, error) {
	if cfg.LoggingDisabled() {
		return &Logger{Logger: zap.NewNop()}, nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return &Logger{
		Logger: zap.New(newCore(zapcore.AddSync(file), level), zap.AddCaller()),
		file:   file,
	}, nil
}

// NewWriter builds a logger writing JSON lines to w. Used by tests and by
// callers that own their sink.
func NewWriter(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	return zap.New(newCore(w, level))
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	if name == "warning" {
		name = "warn"
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// Path returns the log file being written, or "" when file logging is off.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Filename
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func newCore(w zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, level)
}
