package main

import (
	"fmt"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/spf13/cobra"
)

func newTransposeCmd() *cobra.Command {
	var (
		quality    string
		noValidate bool
	)

	cmd := &cobra.Command{
		Use:   "transpose <root> <shape>",
		Short: "Move a CAGED shape to a new root",
		Example: `  caged transpose G E
  caged transpose C A --quality minor`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := caged.ParseShape(args[1])
			if err != nil {
				return err
			}

			t, err := caged.Transpose(args[0], shape, quality, !noValidate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, %s shape (base fret %d)\n", t.Root, t.Quality, t.Shape, t.BaseFret())
			fmt.Fprint(out, t.Frets.Tab())
			for _, c := range t.Corrections {
				fmt.Fprintf(out, "muted string %d (fret %d, %s not in chord)\n", c.String, c.OriginalFret, c.PitchClass)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "major", "Chord quality (major or minor)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip muting strings that are not chord tones")
	return cmd
}
