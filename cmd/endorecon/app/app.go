// Package app provides the application context and dependency management
// for the endorecon CLI. It centralizes configuration, logging, and the
// reconciliation runner behind a single App value so commands share one
// set of wired dependencies.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/endorecon/internal/runner"
	"github.com/agentstation/endorecon/pkg/errors"
)

// App represents the endorecon application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Reconciliation runner
	runner *runner.Runner
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, &errors.ConfigError{
			Component: "app",
			Message:   "failed to load configuration",
			Err:       err,
		}
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Initialize runner
	app.runner = runner.New()

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Runner returns the reconciliation runner.
func (a *App) Runner() *runner.Runner {
	return a.runner
}
