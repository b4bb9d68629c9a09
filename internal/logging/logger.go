package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category. It becomes the zap logger name.
type Category string

const (
	CategoryOperation  Category = "operation"   // builder operations
	CategoryDMActivity Category = "dm_activity" // outreach DM generation
	CategoryAnalysis   Category = "analysis"    // strategist analysis
	CategoryHTTP       Category = "http"        // access log, handler failures
	CategoryStore      Category = "store"       // data file loading
	CategoryServer     Category = "server"      // listener lifecycle
)

// Named returns l scoped to category c.
func Named(l *zap.Logger, c Category) *zap.Logger { return l.Named(string(c)) }

// Options configures New.
type Options struct {
	File    string    // append-only log file; empty disables the file sink
	Level   string    // debug, info, warn, error; empty means info
	Console io.Writer // defaults to os.Stderr
}

// New builds a logger that tees to the console and the log file. The returned
// close func flushes the logger and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(console)), level),
	}

	closeFile := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.Lock(f), level))
		closeFile = f.Close
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger, func() error {
		_ = logger.Sync() // stderr sync fails on some platforms
		return closeFile()
	}, nil
}
