package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/tendmd/tend/pkg/dateutil"
	"github.com/tendmd/tend/pkg/schedule"
)

const gridWidth = len("11 12 13 14 15 16 17") // one full week

// Month draws a compact calendar for the month containing on. Days carrying
// due notes are set bright, today is marked, quiet days stay faint.
func (pp *PrettyPrint) Month(on time.Time, records ...schedule.Record) {
	first := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, on.Location())
	days := daysIn(first)

	count := make([]int, days)
	for _, r := range records {
		if r.Due.Year() == first.Year() && r.Due.Month() == first.Month() {
			count[r.Due.Day()-1]++
		}
	}

	title := color.New(color.FgWhite, color.Italic)
	m := first.Month().String()
	_, _ = title.Printf("%s%s\n", strings.Repeat(" ", (gridWidth-len(m))/2), m)

	// Shift the first row to the weekday the month opens on.
	fmt.Print(strings.Repeat("   ", int(first.Weekday())))

	quiet := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiYellow)

	weekday := first.Weekday()
	for i := 0; i < days; i++ {
		p := quiet
		if count[i] > 0 {
			p = busy
		}
		if dateutil.DayDelta(on, first.AddDate(0, 0, i)) == 0 {
			p = today
		}
		_, _ = p.Printf("%2d ", i+1)

		weekday++
		if weekday > time.Saturday {
			weekday = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}
