// Tally - an interactive counter playground for the terminal
package main

import (
	"os"

	"github.com/dannynguyen3011/tally/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
