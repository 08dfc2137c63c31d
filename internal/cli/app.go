package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"termcalc/internal/calc"
	"termcalc/internal/config"
	"termcalc/internal/ui"
)

// AppContainer is the central dependency injection container for the application
type AppContainer struct {
	Config   *config.Config
	Logger   *zap.Logger
	Terminal *ui.Terminal
	Calc     calc.Calculator
	In       io.Reader
}

// NewApp wires up all services and dependencies based on the provided config
func NewApp(cfg *config.Config) *AppContainer {
	logger := initLogger(cfg)

	return &AppContainer{
		Config:   cfg,
		Logger:   logger,
		Terminal: ui.NewTerminal(cfg.UI.Color),
		Calc:     calc.NewEngine(logger),
		In:       os.Stdin,
	}
}

// Close ensures all resources (like log buffers) are properly flushed
func (a *AppContainer) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// initLogger configures zap logging based on debug mode and config
// settings. Logs go to stderr or a file only, never stdout, which is
// reserved for the session protocol lines.
func initLogger(cfg *config.Config) *zap.Logger {
	level := parseLogLevel(cfg.Logging.Level)
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.Logging.Format == "json" {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		if term.IsTerminal(int(os.Stderr.Fd())) {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	newEncoder := func() zapcore.Encoder {
		if cfg.Logging.Format == "json" {
			return zapcore.NewJSONEncoder(encoderConfig)
		}
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	var cores []zapcore.Core
	if cfg.Logging.ConsoleEnabled {
		cores = append(cores, zapcore.NewCore(newEncoder(), zapcore.AddSync(os.Stderr), level))
	}
	if cfg.Logging.FileEnabled {
		logDir := config.LogDir()
		_ = os.MkdirAll(logDir, 0o750)
		logFile := filepath.Join(logDir, "termcalc.log")
		if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			cores = append(cores, zapcore.NewCore(newEncoder(), zapcore.AddSync(file), level))
		}
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
}

// parseLogLevel safely converts a config level name to a zap log level
func parseLogLevel(levelStr string) zapcore.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "CRITICAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
