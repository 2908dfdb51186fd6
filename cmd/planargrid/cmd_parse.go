package main

import (
	"github.com/spf13/cobra"

	"github.com/planargrid/planargrid/cliconfig"
	"github.com/planargrid/planargrid/loader"
	"github.com/planargrid/planargrid/parser"
)

func runParse(cmd *cobra.Command, args []string) error {
	lines, err := loader.File(args[0])
	if err != nil {
		return err
	}

	res := parser.Parse(lines)

	if cfg.Format == cliconfig.JSON {
		return printJSON(cmd.OutOrStdout(), res)
	}

	printParseSummary(cmd.OutOrStdout(), res, colorEnabled(cfg.Color))
	return nil
}
