package main

import (
	"os"

	"github.com/praxis-cli/praxis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
