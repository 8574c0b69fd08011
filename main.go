package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/logger"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	log := initLogger(config.MustLoad())

	if err := app.RunApp(log, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. Stdout belongs to the game, so records go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	return logger.New(conf, os.Stderr)
}
