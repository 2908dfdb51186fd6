// Command planargrid parses ASCII box-and-line diagrams into planar
// graphs and prints their anchors, segments, minimal cycles and
// filaments. See the parse, extract, run and watch subcommands.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("planargrid: %v", err)
	}
}
