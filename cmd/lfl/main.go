// Package main is the entry point for the lfl CLI client.
package main

import (
	"github.com/donaldgifford/localflipper/cmd/lfl/cmd"
)

func main() {
	cmd.Execute()
}
