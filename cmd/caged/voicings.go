package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/Conceptual-Machines/caged-api/internal/library"
	"github.com/Conceptual-Machines/caged-api/internal/models"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/spf13/cobra"
)

func newVoicingsCmd(cfg *config.Config, flags *cliFlags) *cobra.Command {
	var (
		opts   caged.Options
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "voicings <root> [quality]",
		Short: "List CAGED voicings of a chord",
		Long: `List up to --max voicings of a chord, one per CAGED shape, lowest first.

The chord may be given as a root and quality ("A minor") or as a symbol ("Am7").`,
		Example: `  caged voicings A minor
  caged voicings Ebmaj7 --json
  caged voicings C --min-fret 5 --max-fret 12`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, quality, err := chordArgs(args)
			if err != nil {
				return err
			}

			lib, err := library.Open(flags.libraryPath)
			if err != nil {
				return err
			}
			oracle := theory.IntervalOracle{}
			voicings, err := caged.NewAssembler(oracle, lib).GetVoicings(root, quality, opts)
			if err != nil {
				return err
			}

			pc, _ := theory.PitchClassOf(root)
			q := theory.NormalizeQuality(quality)
			resp := models.VoicingsResponse{
				Chord:      strings.Join(args, " "),
				Root:       pc.String(),
				Quality:    q,
				ChordTones: theory.NoteNames(oracle.ChordTones(pc, q)),
				Voicings:   models.FromVoicings(voicings),
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			printVoicings(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.MaxCount, "max", "n", cfg.MaxVoicings, "Maximum number of voicings (0 for all)")
	cmd.Flags().IntVar(&opts.MinFret, "min-fret", cfg.PlayableFretMin, "Lowest base fret")
	cmd.Flags().IntVar(&opts.MaxFret, "max-fret", cfg.PlayableFretMax, "Highest base fret")
	cmd.Flags().BoolVar(&opts.OnlyValidated, "only-valid", false, "Drop voicings missing an essential chord tone")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of tablature")
	return cmd
}

// chordArgs accepts "<root> <quality>", "<root>" or a single chord symbol
func chordArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	return theory.ParseChordSymbol(args[0])
}

func printVoicings(w io.Writer, resp models.VoicingsResponse) {
	fmt.Fprintf(w, "%s %s: %s\n", resp.Root, resp.Quality, strings.Join(resp.ChordTones, " "))
	if len(resp.Voicings) == 0 {
		fmt.Fprintln(w, "no voicings found")
		return
	}

	for _, v := range resp.Voicings {
		fmt.Fprintf(w, "\n%s shape, base fret %d, %s, %s", v.Shape, v.BaseFret, v.Difficulty, v.Source)
		if !v.Valid {
			fmt.Fprint(w, ", incomplete")
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, v.Tab)
		for _, c := range v.Corrections {
			fmt.Fprintf(w, "muted string %d (fret %d, %s)\n", c.String, c.OriginalFret, c.Note)
		}
	}
}
