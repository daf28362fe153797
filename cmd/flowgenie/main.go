package main

import (
	"os"

	"flowgenie-backend/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
