package main

import (
	"fmt"
	"os"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/logger"
)

// main - reads a nine-cell board such as "XO_OX___X" from stdin and prints its status.
func main() {
	log := logger.New(config.MustLoad(), os.Stderr)

	if err := app.RunEvaluate(log, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
		os.Exit(1)
	}
}
