// Package logging provides config-driven categorized logging for psiquitools.
// Logs are written to a single file (default .psiq/logs/psiq.log), each entry
// tagged with its category as the zap logger name.
// Logging is controlled by logging.debug_mode - when false, no logs are written,
// since the interactive UI owns the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"psiquitools/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config resolution
	CategoryScales    Category = "scales"    // Scoring engine and scale sessions
	CategoryMental    Category = "mental"    // Mental-status composer
	CategoryHistory   Category = "history"   // Structured history wizard
	CategoryTimeline  Category = "timeline"  // Antecedent timeline manager
	CategoryDocument  Category = "document"  // Pagination and exporters
	CategoryCatalog   Category = "catalog"   // Resource catalog search
	CategoryClipboard Category = "clipboard" // System clipboard writes
	CategoryUI        Category = "ui"        // Page navigation
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryBoot,
	CategoryScales,
	CategoryMental,
	CategoryHistory,
	CategoryTimeline,
	CategoryDocument,
	CategoryCatalog,
	CategoryClipboard,
	CategoryUI,
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
)

// Initialize builds the file logger from config.
// Should be called once at startup; calling it again replaces the previous logger.
func Initialize(c config.LoggingConfig) error {
	mu.Lock()
	defer mu.Unlock()

	_ = base.Sync()
	cfg = c
	loggers = make(map[Category]*zap.Logger)

	if !c.DebugMode {
		base = zap.NewNop()
		return nil
	}

	if c.File == "" {
		return fmt.Errorf("log file path required when debug_mode is on")
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	var zc zap.Config
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(parseLevel(c.Level))
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}

	l, err := zc.Build()
	if err != nil {
		base = zap.NewNop()
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	base = l

	base.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("file", c.File),
		zap.String("level", c.Level),
		zap.String("format", c.Format))

	return nil
}

// parseLevel maps a config level name to a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered entries (call at shutdown).
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
