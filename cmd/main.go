package main

import (
	"fmt"
	"os"

	"standings-chart/cmd/commands"
	logging "standings-chart/internal/infra/log"
)

func main() {
	err := commands.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
