// Package logging builds the zap logger; while the screen is active logs only go to a file
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/bell-fighter/config"
)

// rotateLayout is appended to the log file name when it is rotated
const rotateLayout = "20060102-150405"

// New returns a logger and a cleanup that flushes and closes its file
func New(cfg config.LoggingConfig) (*zap.Logger, func() error, error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir %s: %w", cfg.Dir, err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if err := Rotate(path, cfg.MaxSizeBytes, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(f), zap.NewAtomicLevelAt(ParseLevel(cfg.Level)))
	log := zap.New(core)

	cleanup := func() error {
		_ = log.Sync()
		return f.Close()
	}
	return log, cleanup, nil
}

// Rotate renames path to a timestamped .old file once it exceeds maxSize
func Rotate(path string, maxSize int64, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log %s: %w", path, err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	rotated := fmt.Sprintf("%s.%s.old", path, now.Format(rotateLayout))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log %s: %w", path, err)
	}
	return nil
}

// ParseLevel falls back to info for unknown names
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	ec.ConsoleSeparator = "  "
	ec.CallerKey = zapcore.OmitKey
	ec.StacktraceKey = zapcore.OmitKey
	return zapcore.NewConsoleEncoder(ec)
}
