package main

import (
	"os"

	"github.com/bnema/f5m/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
