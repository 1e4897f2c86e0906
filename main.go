package main

import (
	"os"

	"github.com/monlor/scriptdex/cmd"
	"github.com/monlor/scriptdex/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
