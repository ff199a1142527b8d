// Package main is the entry point for the localflipper server.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/donaldgifford/localflipper/cmd/localflipper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
