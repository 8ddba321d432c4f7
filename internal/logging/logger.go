// Package logging provides config-driven categorised zap loggers for
// countryviz. Each category is a named child of one base logger and can be
// switched off individually in the logging config.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"countryviz/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // startup, config
	CategoryLoad     Category = "load"     // dataset fetch
	CategoryValidate Category = "validate" // per-record validation
	CategoryView     Category = "view"     // view state transitions
	CategoryRender   Category = "render"   // chart output
	CategoryExport   Category = "export"   // sqlite export
	CategoryUI       Category = "ui"       // terminal dashboard
)

// Categories lists every category.
func Categories() []Category {
	return []Category{CategoryBoot, CategoryLoad, CategoryValidate, CategoryView, CategoryRender, CategoryExport, CategoryUI}
}

// Options adjust Initialize for the calling command.
type Options struct {
	// Verbose forces debug level.
	Verbose bool
	// Session is attached to every entry as the "session" field.
	Session string
	// Stderr sends logs to stderr when no file is configured. The
	// interactive dashboard leaves it false so nothing draws over the UI.
	Stderr bool
}

var (
	mu       sync.RWMutex
	base     = zap.NewNop()
	cfg      config.LoggingConfig
	loggers  = make(map[Category]*zap.Logger)
	openFile *os.File
)

// Initialize builds the base logger from the logging config and installs it
// for Get. Calling it again replaces the previous logger.
func Initialize(c config.LoggingConfig, o Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		level = l
	}
	if o.Verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if c.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	var (
		sink zapcore.WriteSyncer
		file *os.File
	)
	switch {
	case c.File != "":
		if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		sink = zapcore.AddSync(f)
	case o.Stderr:
		sink = zapcore.Lock(os.Stderr)
	}

	logger := zap.NewNop()
	if sink != nil {
		logger = zap.New(zapcore.NewCore(encoder, sink, level))
	}
	if o.Session != "" {
		logger = logger.With(zap.String("session", o.Session))
	}

	install(logger, c, file)
	return logger, nil
}

// Replace installs an already built base logger, for tests and embedders.
func Replace(logger *zap.Logger, c config.LoggingConfig) {
	install(logger, c, nil)
}

func install(logger *zap.Logger, c config.LoggingConfig, file *os.File) {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		_ = base.Sync()
	}
	if openFile != nil {
		openFile.Close()
	}
	base = logger
	cfg = c
	openFile = file
	loggers = make(map[Category]*zap.Logger)
}

// IsCategoryEnabled returns whether a specific category is enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if the category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := zap.NewNop()
	if cfg.IsCategoryEnabled(string(category)) {
		l = base.Named(string(category))
	}
	loggers[category] = l
	return l
}

// Sync flushes the base logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

// Close flushes and releases the log file, returning to a no-op logger.
func Close() {
	install(zap.NewNop(), config.LoggingConfig{}, nil)
}
