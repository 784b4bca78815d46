package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the fallback history window when none is given.
const DefaultWindow = "1w"

var units = map[string]time.Duration{
	"s":     time.Second,
	"m":     time.Minute,
	"min":   time.Minute,
	"h":     time.Hour,
	"hr":    time.Hour,
	"d":     24 * time.Hour,
	"day":   24 * time.Hour,
	"days":  24 * time.Hour,
	"w":     7 * 24 * time.Hour,
	"wk":    7 * 24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour,
}

// ParseWindow reads a compact duration like "1w", "3d", or "1w2d6h" and
// returns it along with its canonical form. Empty input falls back to
// DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultWindow
	}

	var total time.Duration
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i == len(s) {
			break
		}

		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return 0, "", fmt.Errorf("expected a count at %q", s[start:])
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return 0, "", fmt.Errorf("bad count %q: %w", s[start:i], err)
		}

		for i < len(s) && s[i] == ' ' {
			i++
		}
		start = i
		for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			i++
		}
		unit, ok := units[s[start:i]]
		if !ok {
			return 0, "", fmt.Errorf("unknown unit %q", s[start:i])
		}

		total += time.Duration(n) * unit
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be positive")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration in compact week/day/hour form.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	} {
		if d < u.size {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/u.size, u.label)
		d %= u.size
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
