package schedule

import (
	"strconv"
	"strings"
)

// DefaultIntervals is the raw form of the stock review ladder.
const DefaultIntervals = "1, 6, 9, 19, 75"

// Intervals is an ordered ladder of wait times in days, indexed by review
// level. The last rung repeats for every level past the end, so well-worn
// notes settle into a steady cadence.
type Intervals []int

// ParseIntervals reads a comma-separated list of day counts. Tokens that are
// not positive integers are dropped without complaint; the ladder is
// user-edited text and partial input still has to schedule.
func ParseIntervals(raw string) Intervals {
	var ladder Intervals
	for _, tok := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n <= 0 {
			continue
		}
		ladder = append(ladder, n)
	}
	return ladder
}

// Lookup returns the wait in days for the given level. Levels past either
// end of the ladder clamp to the nearest rung. An empty ladder always
// yields one day.
func (t Intervals) Lookup(level int) int {
	if len(t) == 0 {
		return 1
	}
	if level < 0 {
		level = 0
	}
	if level >= len(t) {
		level = len(t) - 1
	}
	return t[level]
}

// String renders the ladder back into its configuration form.
func (t Intervals) String() string {
	if len(t) == 0 {
		return ""
	}
	toks := make([]string, len(t))
	for i, n := range t {
		toks[i] = strconv.Itoa(n)
	}
	return strings.Join(toks, ", ")
}
