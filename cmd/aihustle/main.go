package main

import (
	"os"

	"aihustle/cmd/aihustle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
