package main

import (
	"os"

	"github.com/patenteapp/patente/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
