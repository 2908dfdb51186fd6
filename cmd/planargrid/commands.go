package main

import (
	"github.com/spf13/cobra"

	"github.com/planargrid/planargrid/cliconfig"
)

// --- Global Command Variables ---
var (
	profilePath string
	formatFlag  string
	colorFlag   string
	watchDelay  int

	cfg cliconfig.Config

	rootCmd = &cobra.Command{
		Use:   "planargrid",
		Short: "Parse ASCII box-and-line diagrams into planar graphs",
		Long: `planargrid reads a text diagram made of +, -, |, /, \, and bullet
characters, parses it into anchors, bullets and line segments, and
extracts the minimal cycles and dangling filaments of the planar graph
those segments imply.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := cliconfig.Load(profilePath, optionsFromFlags()...)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	parseCmd = &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a diagram and print its anchors, bullets and segments",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	extractCmd = &cobra.Command{
		Use:   "extract [file]",
		Short: "Parse a diagram and print its extracted cycles and filaments",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}

	runCmd = &cobra.Command{
		Use:   "run [file]",
		Short: "Parse and extract a diagram, printing the full result",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}

	watchCmd = &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run the full pipeline whenever the input file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a .planargrid.yaml profile (default: none)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "output format: text|json (overrides profile)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto|always|never (overrides profile)")

	watchCmd.Flags().IntVar(&watchDelay, "debounce-ms", 150, "milliseconds to wait for writes to settle before re-running")

	rootCmd.AddCommand(parseCmd, extractCmd, runCmd, watchCmd)
}

// optionsFromFlags turns whichever of --format/--color were actually set
// into cliconfig.Options, so an unset flag never clobbers the profile file.
func optionsFromFlags() []cliconfig.Option {
	var opts []cliconfig.Option
	if formatFlag != "" {
		opts = append(opts, cliconfig.WithFormat(cliconfig.Format(formatFlag)))
	}
	if colorFlag != "" {
		opts = append(opts, cliconfig.WithColor(cliconfig.ColorMode(colorFlag)))
	}
	return opts
}
