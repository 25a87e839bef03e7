package main

import (
	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/spf13/cobra"
)

// cliFlags holds the persistent flags shared by every command
type cliFlags struct {
	libraryPath string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	flags := &cliFlags{libraryPath: cfg.VoicingLibraryPath}

	root := &cobra.Command{
		Use:   "caged",
		Short: "CAGED guitar chord voicings",
		Long: `caged works with the five CAGED chord shapes on a standard-tuned guitar.

Frets are listed low E string first. Use x for a muted string.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.verbose {
				logger.SetLevel("debug")
			} else {
				logger.SetLevel(cfg.LogLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.libraryPath, "library", flags.libraryPath, "YAML voicing library (default: embedded)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log validation details")

	root.AddCommand(
		newTransposeCmd(),
		newClassifyCmd(),
		newVoicingsCmd(cfg, flags),
		newTonesCmd(),
	)
	return root
}
