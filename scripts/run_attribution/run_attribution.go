package main

import (
	"os"

	"mta/scripts/run_attribution/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
