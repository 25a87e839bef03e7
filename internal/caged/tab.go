package caged

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

var stringLabels = [theory.NumStrings]string{"E", "A", "D", "G", "B", "e"}

// Tab renders the frets as a one-column ASCII tablature, high e on top
func (f Frets) Tab() string {
	var b strings.Builder
	for s := theory.NumStrings - 1; s >= 0; s-- {
		cell := "x"
		if f[s] >= theory.OpenFret {
			cell = strconv.Itoa(f[s])
		}
		b.WriteString(stringLabels[s])
		b.WriteString("|--")
		b.WriteString(strings.Repeat("-", 2-len(cell)))
		b.WriteString(cell)
		b.WriteString("--|\n")
	}
	return b.String()
}

// Tab renders the voicing's absolute frets
func (v Voicing) Tab() string {
	return v.Frets.Tab()
}
