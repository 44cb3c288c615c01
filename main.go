package main

import (
	"os"

	"github.com/RandintRayquaza/FocusLab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
