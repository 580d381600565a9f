package main

import (
	"os"

	"github.com/tripscout/trip-scout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
