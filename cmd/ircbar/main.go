package main

import (
	"os"

	"github.com/vovakirdan/ircbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
