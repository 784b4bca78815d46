package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/tendmd/tend/pkg/dateutil"
	"github.com/tendmd/tend/pkg/glyph"
	"github.com/tendmd/tend/pkg/schedule"
)

type PrettyPrint struct {
	ShowPath bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" note")
	default:
		_, _ = c.Println(" notes")
	}
}

// Bucket renders one urgency section. Empty sections still print so the
// reader sees the whole picture at a glance.
func (pp *PrettyPrint) Bucket(u glyph.Urgency, records ...schedule.Record) {
	pp.TitleWithCount(u.Title(), len(records))

	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	uc := urgencyColor(u)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range records {
		row := []interface{}{
			uc.Sprint(u.Glyph().Symbol),
			r.Title,
			faint.Sprint(schedule.LevelLabel(r.Level)),
			uc.Sprint(dateutil.RelativeLabel(r.DaysUntilDue)),
		}
		if pp.ShowPath {
			row = append(row, faint.Sprint(r.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Buckets renders the four sections in urgency order.
func (pp *PrettyPrint) Buckets(b schedule.Buckets) {
	pp.Bucket(glyph.Overdue, b.Overdue...)
	pp.Bucket(glyph.Today, b.Today...)
	pp.Bucket(glyph.Upcoming, b.Upcoming...)
	pp.Bucket(glyph.Later, b.Later...)
}

// Summary is the one-line form used at the bottom of listings and by the
// watcher's startup notice.
func (pp *PrettyPrint) Summary(b schedule.Buckets) {
	c := color.New(color.Faint)
	_, _ = c.Printf("%d scheduled", b.Total())
	if n := b.Due(); n > 0 {
		_, _ = c.Print(", ")
		_, _ = color.New(color.FgHiYellow).Printf("%d due", n)
	}
	if n := len(b.Overdue); n > 0 {
		_, _ = c.Print(" (")
		_, _ = color.New(color.FgRed).Printf("%d overdue", n)
		_, _ = c.Print(")")
	}
	_, _ = c.Println("")
}

// Advanced confirms a finished review with its new schedule.
func (pp *PrettyPrint) Advanced(a schedule.Advanced) {
	ok := color.New(color.FgGreen)
	f := color.New(color.Faint)

	_, _ = ok.Printf("✔ %s\n", a.Record.Title)
	_, _ = f.Printf("  %s › %s, next review %s (%s)\n",
		schedule.LevelLabel(a.FromLevel),
		schedule.LevelLabel(a.ToLevel),
		dateutil.Canonical(a.NextDue),
		dateutil.RelativeLabel(a.Record.DaysUntilDue))
	if pp.ShowPath {
		_, _ = f.Printf("  %s\n", a.Record.ID)
	}
}

func urgencyColor(u glyph.Urgency) *color.Color {
	switch u {
	case glyph.Overdue:
		return color.New(color.FgRed, color.Bold)
	case glyph.Today:
		return color.New(color.FgHiYellow)
	case glyph.Upcoming:
		return color.New(color.FgCyan)
	default:
		return color.New(color.Faint)
	}
}
