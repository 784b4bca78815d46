package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/tendmd/tend/pkg/glyph"
	"github.com/tendmd/tend/pkg/history"
	"github.com/tendmd/tend/pkg/schedule"
)

// History renders the review journal, newest first.
func (pp *PrettyPrint) History(entries ...history.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("When"), glyph.Bold("Note"), glyph.Bold("Pass"), glyph.Bold("Next due"))
	for _, e := range entries {
		title := e.Title
		if pp.ShowPath {
			title = e.Note
		}
		tbl.AddRow(
			faint.Sprint(e.ReviewedAt.Local().Format("2006-01-02 15:04")),
			title,
			fmt.Sprintf("%s › %s", schedule.LevelLabel(e.FromLevel), schedule.LevelLabel(e.ToLevel)),
			e.NextDue,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}
