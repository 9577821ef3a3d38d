package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"currencyconverter/internal/config"
	"currencyconverter/internal/session"
)

func main() {
	os.Exit(run())
}

// run keeps every exit-code decision in one place: 0 for an explicit exit
// command, 1 for anything that escapes the loop.
func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	zapLogger, err := cfg.Logging.BuildLogger()
	if err != nil {
		log.Printf("Failed to init logger: %v", err)
		return 1
	}
	defer func() { _ = zapLogger.Sync() }()
	sugar := zapLogger.Sugar()

	app, err := NewApp(cfg, sugar)
	if err != nil {
		sugar.Errorw("Failed to initialize app", "error", err)
		return 1
	}

	if err := app.Run(); err != nil {
		var rErr *session.RecoverableError
		if errors.As(err, &rErr) {
			fmt.Println(rErr.Message)
			sugar.Warnw("Session ended with recoverable error", "error", err)
			return 1
		}
		sugar.Errorw("Session failed", "error", err)
		return 1
	}

	return 0
}
