package main

import (
	"os"

	"github.com/firefly-engineering/rackline/cmd"
	"github.com/firefly-engineering/rackline/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
