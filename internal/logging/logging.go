// Package logging provides structured logging for the scoring pipeline.
// Each stage (scoring, reconcile, ingest, cli) logs through a named
// component logger so a run's output can be traced per stage.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// root is the process-wide logger all component loggers derive from.
var root *zap.Logger

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level"`

	// Format is the output format (json, console)
	Format string `json:"format"`

	// Output is the output destination (stdout, stderr, file path)
	Output string `json:"output"`
}

// DefaultConfig returns the defaults for an interactive CLI run: console
// output on stderr so log lines never mix into a piped scoring result.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize sets up the root logger. An unknown level falls back to info
// rather than failing a run over a config typo.
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var writeSyncer zapcore.WriteSyncer
	switch cfg.Output {
	case "stdout":
		writeSyncer = zapcore.AddSync(os.Stdout)
	case "stderr":
		writeSyncer = zapcore.AddSync(os.Stderr)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		writeSyncer = zapcore.AddSync(file)
	}

	root = zap.New(zapcore.NewCore(encoder, writeSyncer, level))
	return nil
}

// Component returns a named logger for one pipeline stage.
func Component(name string) *zap.Logger {
	return root.Named(name)
}

// Sync flushes buffered log entries.
func Sync() {
	if root != nil {
		_ = root.Sync()
	}
}

func init() {
	_ = Initialize(DefaultConfig())
}
