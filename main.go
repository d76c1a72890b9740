package main

import (
	"os"

	"pdftoolbox/commands"

	"github.com/fatih/color"
)

func main() {
	if err := commands.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
