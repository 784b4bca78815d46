package history

// Entry records one confirmed review. The log is advisory and append-only;
// losing it never harms the schedule, which lives in the notes themselves.
type Entry struct {
	ID         string    `json:"id,omitempty"`
	Note       string    `json:"note"`
	Title      string    `json:"title"`
	FromLevel  int       `json:"from_level"`
	ToLevel    int       `json:"to_level"`
	WasDue     int       `json:"was_due"`  // day delta at review time, negative when overdue
	NextDue    string    `json:"next_due"` // canonical YYYY-MM-DD
	ReviewedAt Timestamp `json:"reviewed_at"`
}
