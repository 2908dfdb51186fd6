package main

import (
	"github.com/spf13/cobra"

	"github.com/planargrid/planargrid/cliconfig"
	"github.com/planargrid/planargrid/diagram"
	"github.com/planargrid/planargrid/loader"
	"github.com/planargrid/planargrid/parser"
)

func runRun(cmd *cobra.Command, args []string) error {
	lines, err := loader.File(args[0])
	if err != nil {
		return err
	}

	return renderDiagram(cmd, diagram.Build(parser.Parse(lines)))
}

// renderDiagram writes the full parse+extract result to cmd's output stream
// in whichever format cfg currently names.
func renderDiagram(cmd *cobra.Command, d *diagram.Diagram) error {
	if cfg.Format == cliconfig.JSON {
		return printJSON(cmd.OutOrStdout(), d)
	}

	useColor := colorEnabled(cfg.Color)
	printParseSummary(cmd.OutOrStdout(), d.Parse, useColor)
	printExtractSummary(cmd.OutOrStdout(), d, useColor)
	return nil
}
