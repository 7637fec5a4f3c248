package main

import (
	"context"
	"os"

	"github.com/desertthunder/playmate/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := runner.command().Run(context.Background(), os.Args); err != nil {
		logger.Fatal("application error", "kind", shared.ErrorKind(err), "error", err)
	}
}
