package main

import (
	"os"

	"github.com/jask/skydial/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
