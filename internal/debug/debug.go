package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grindlemire/go-dnd/internal/config"
)

var (
	logger atomic.Pointer[zap.Logger]
	mu     sync.Mutex
	file   *lumberjack.Logger
)

// Init installs the global logger. Console output goes to console; JSON
// output additionally goes to cfg.File when set. Calling Init again replaces
// the previous logger.
func Init(cfg config.LogConfig, console zapcore.WriteSyncer) error {
	mu.Lock()
	defer mu.Unlock()

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(console), level)}

	if err := closeFileLocked(); err != nil {
		return err
	}
	if cfg.File != "" {
		dir := filepath.Dir(cfg.File)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(file), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("dnd")
	logger.Store(l)
	return nil
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if format == "json" {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Logger returns the global logger, or a no-op logger before Init.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Log writes a debug-level message built from format and args.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Close flushes the logger and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if l := logger.Load(); l != nil {
		// Sync on a console writer commonly fails with EINVAL; nothing to do about it.
		_ = l.Sync()
	}
	logger.Store(nil)
	return closeFileLocked()
}

// closeFileLocked closes the current log file. Caller must hold mu.
func closeFileLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
