package main

import (
	"fmt"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var baseFret int

	cmd := &cobra.Command{
		Use:   "classify <f0> <f1> <f2> <f3> <f4> <f5>",
		Short: "Name the CAGED shape of a fret pattern",
		Example: `  caged classify x 3 2 0 1 0
  caged classify 1 3 3 2 1 1 --base-fret 5`,
		Args: cobra.ExactArgs(theory.NumStrings),
		RunE: func(cmd *cobra.Command, args []string) error {
			frets, err := caged.ParseFrets(args)
			if err != nil {
				return err
			}
			if baseFret < 1 || baseFret > theory.MaxFret {
				return fmt.Errorf("base fret must be between 1 and %d", theory.MaxFret)
			}

			fmt.Fprintln(cmd.OutOrStdout(), caged.ClassifyShape(frets, baseFret))
			return nil
		},
	}

	cmd.Flags().IntVarP(&baseFret, "base-fret", "b", 1, "Fret that relative frets start from")
	return cmd
}
