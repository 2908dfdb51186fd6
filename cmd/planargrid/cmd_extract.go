package main

import (
	"github.com/spf13/cobra"

	"github.com/planargrid/planargrid/cliconfig"
	"github.com/planargrid/planargrid/diagram"
	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/loader"
	"github.com/planargrid/planargrid/parser"
)

func runExtract(cmd *cobra.Command, args []string) error {
	lines, err := loader.File(args[0])
	if err != nil {
		return err
	}

	res := parser.Parse(lines)
	d := diagram.Build(res)

	if cfg.Format == cliconfig.JSON {
		return printJSON(cmd.OutOrStdout(), struct {
			Cycles    [][]geom.Point `json:"cycles"`
			Filaments [][]geom.Point `json:"filaments"`
		}{Cycles: d.Cycles, Filaments: d.Filaments})
	}

	printExtractSummary(cmd.OutOrStdout(), d, colorEnabled(cfg.Color))
	return nil
}
