package schedule

import (
	"fmt"
	"time"

	"github.com/tendmd/tend/pkg/dateutil"
)

// Advanced is the outcome of one confirmed review. The caller persists
// ToLevel and NextDue back onto the note; nothing is written here.
type Advanced struct {
	Record    Record
	FromLevel int
	ToLevel   int
	NextDue   time.Time
}

// Advance moves a record one level up and schedules it the given number of
// days past now. The day count is trusted as supplied, whether it came from
// the ladder or a manual override; callers reject non-positive values
// before asking. The input record is not mutated.
func Advance(record Record, days int, now time.Time) Advanced {
	next := dateutil.Normalize(now).AddDate(0, 0, days)
	out := record
	out.Level = record.Level + 1
	out.Due = next
	out.DaysUntilDue = days
	return Advanced{
		Record:    out,
		FromLevel: record.Level,
		ToLevel:   out.Level,
		NextDue:   next,
	}
}

// LevelLabel names a review level for display.
func LevelLabel(level int) string {
	switch level {
	case 0:
		return "New"
	case 1:
		return "1st pass"
	case 2:
		return "2nd pass"
	case 3:
		return "3rd pass"
	case 4:
		return "4th pass"
	case 5:
		return "Evergreen"
	default:
		return fmt.Sprintf("Level %d", level)
	}
}
