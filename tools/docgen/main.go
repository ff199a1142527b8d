// Package main generates CLI reference documentation for the localflipper
// server and the lfl client.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	lfl "github.com/donaldgifford/localflipper/cmd/lfl/cmd"
	server "github.com/donaldgifford/localflipper/cmd/localflipper/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	for _, root := range []*cobra.Command{server.Root(), lfl.Root()} {
		dir := filepath.Join(*output, root.Name())
		if err := generate(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", root.Name(), err)
		}
		fmt.Printf("CLI docs for %s generated in %s/\n", root.Name(), dir)
	}
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
