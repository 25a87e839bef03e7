package main

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/spf13/cobra"
)

func newTonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tones <chord>",
		Short:   "Print the notes of a chord symbol",
		Example: "  caged tones F#m7b5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, quality, err := theory.ParseChordSymbol(args[0])
			if err != nil {
				return fmt.Errorf("%w (known qualities: %s)", err, strings.Join(theory.Qualities(), ", "))
			}
			pc, err := theory.PitchClassOf(root)
			if err != nil {
				return err
			}

			tones := theory.IntervalOracle{}.ChordTones(pc, quality)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(theory.NoteNames(tones), " "))
			return nil
		},
	}
}
