package app

import (
	"go.uber.org/zap"

	"aihustle/internal/logging"
)

// App is the running process: its config, logger and wired agents.
type App struct {
	Config *Config
	Log    *zap.Logger
	*Wire

	closeLog func() error
}

// New opens the log sinks described by cfg and wires the agents.
func New(cfg *Config) (*App, error) {
	log, closeLog, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Log:      log,
		Wire:     NewWire(cfg, log),
		closeLog: closeLog,
	}, nil
}

// Close flushes and closes the log sinks. Calls after the first are no-ops.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}

// Closed reports whether Close has run.
func (a *App) Closed() bool { return a.closeLog == nil }
