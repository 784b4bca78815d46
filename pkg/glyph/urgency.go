package glyph

import "fmt"

// Glyph pairs a plain-text key with the symbol drawn in pretty output.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Key:     "!",
		Symbol:  "!",
		Meaning: "overdue, review as soon as you can",
	}, Glyph{
		Key:     "*",
		Symbol:  "●",
		Meaning: "due today",
	}, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "coming up inside the horizon",
	}, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "scheduled past the horizon",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Urgency is one of the four buckets a scheduled note can land in.
type Urgency int

const (
	Overdue Urgency = iota
	Today
	Upcoming
	Later
)

func (u Urgency) Glyph() Glyph {
	return DefaultGlyphs()[u]
}

func (u Urgency) String() string {
	return u.Glyph().String()
}

func (u Urgency) Title() string {
	switch u {
	case Overdue:
		return "Overdue"
	case Today:
		return "Today"
	case Upcoming:
		return "Upcoming"
	default:
		return "Later"
	}
}
