// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Modes select the encoder: human readable for dev, JSON for prod.
const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

var (
	// Global logger; nil until Init or InitTest.
	logger *Logger

	noopLogger = &Logger{zap.NewNop().Sugar()}

	// Allows SetLevel at runtime.
	atomicLevel zap.AtomicLevel
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields and returns a new logger.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// Options configures Init. Empty fields fall back to the environment
// (DEVCONSOLE_ENV, DEVCONSOLE_LOG_LEVEL) and then to defaults.
type Options struct {
	// Level is debug, info, warn or error
	Level string

	// Mode is "dev" or "prod"
	Mode string

	// Path overrides the log file location
	Path string
}

// L returns the global logger, or a no-op logger before Init.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return noopLogger
}

// Init initializes the global logger. Logs rotate through lumberjack:
//
//   - dev  → console encoding in <state>/<app>/app-debug.log
//   - prod → JSON in <state>/<app>/app.log
//
// where <state> is $XDG_STATE_HOME or ~/.local/state.
func Init(appName string, opts Options) (*Logger, error) {
	mode := opts.Mode
	if mode == "" {
		mode = detectMode()
	}
	if mode != ModeDev && mode != ModeProd {
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}

	level, err := parseLevel(opts.Level, mode)
	if err != nil {
		return nil, err
	}
	atomicLevel = zap.NewAtomicLevelAt(level)

	logPath := opts.Path
	if logPath == "" {
		logPath = selectLogPath(appName, mode)
	} else if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == ModeDev {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	logger = &Logger{zap.New(core, zap.AddCaller()).Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
	return logger, nil
}

// InitTest installs a development logger that writes to stdout.
func InitTest() *Logger {
	cfg := zap.NewDevelopmentConfig()
	atomicLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Level = atomicLevel
	cfg.OutputPaths = []string{"stdout"}
	raw, err := cfg.Build(zap.AddCaller())
	if err != nil {
		logger = noopLogger
		return logger
	}
	logger = &Logger{raw.Sugar()}
	return logger
}

// Reset drops the global logger. Tests use it to restore the no-op default.
func Reset() {
	logger = nil
}

// SetLevel changes the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

// Sync flushes buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// detectMode picks dev or prod from DEVCONSOLE_ENV.
func detectMode() string {
	switch strings.ToLower(os.Getenv("DEVCONSOLE_ENV")) {
	case "dev", "development":
		return ModeDev
	default:
		return ModeProd
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == ModeDev {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

// parseLevel resolves the level from the option, then DEVCONSOLE_LOG_LEVEL,
// then the mode default (debug in dev, info in prod).
func parseLevel(level, mode string) (zapcore.Level, error) {
	if level == "" {
		level = os.Getenv("DEVCONSOLE_LOG_LEVEL")
	}
	switch strings.ToLower(level) {
	case "":
		if mode == ModeDev {
			return zap.DebugLevel, nil
		}
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// ValidLevel reports whether level is accepted by Init.
func ValidLevel(level string) bool {
	_, err := parseLevel(level, ModeProd)
	return err == nil || level == ""
}
