package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/tendmd/tend/pkg/glyph"
	"github.com/tendmd/tend/pkg/schedule"
)

// Ladder renders the interval ladder with the label and wait for each level.
// The final row shows the rung every later level clamps to.
func (pp *PrettyPrint) Ladder(ladder schedule.Intervals) {
	pp.Title("Review ladder")

	if len(ladder) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" empty ladder, every review waits 1 day\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Level"), glyph.Bold("Pass"), glyph.Bold("Wait"))
	for level := range ladder {
		tbl.AddRow(strconv.Itoa(level), schedule.LevelLabel(level), days(ladder.Lookup(level)))
	}
	last := len(ladder)
	tbl.AddRow(fmt.Sprintf("%d+", last), schedule.LevelLabel(last), days(ladder.Lookup(last)))
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Legend explains the bucket glyphs.
func (pp *PrettyPrint) Legend() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("Buckets")))
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
