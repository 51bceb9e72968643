// Package main is the entry point for the reviewer CLI binary.
package main

import (
	"os"

	"github.com/clapsheep/ollama-codellama/cmd/reviewer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
