// Package main is the entry point for the interactive currency converter.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"currencyconverter/internal/config"
	"currencyconverter/internal/exchange"
	"currencyconverter/internal/rates"
	"currencyconverter/internal/session"
)

// App holds all application dependencies.
type App struct {
	cfg     *config.Config
	logger  *zap.SugaredLogger
	session *session.Session
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	table, err := rates.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("build rate table: %w", err)
	}

	converter := exchange.NewConverter(table)
	sess := session.New(table, converter, os.Stdin, os.Stdout, logger)

	logger.Infow("Rate table loaded", "base", table.Base(), "currencies", len(table.Codes()))

	return &App{
		cfg:     cfg,
		logger:  logger,
		session: sess,
	}, nil
}

// Run drives the interactive session, blocking until the user exits or the
// input stream fails.
func (app *App) Run() error {
	return app.session.Run()
}
