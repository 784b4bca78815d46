package schedule

// Buckets partitions records by urgency. Membership is a pure function of
// DaysUntilDue and the threshold used at the split; every record lands in
// exactly one bucket and keeps its scan order.
type Buckets struct {
	Overdue  []Record `json:"overdue"`
	Today    []Record `json:"today"`
	Upcoming []Record `json:"upcoming"`
	Later    []Record `json:"later"`
}

// Bucketize splits records on their day deltas. Records due within
// threshold days of now, boundary included, are upcoming; past that, later.
// A zero threshold leaves upcoming empty, and a negative threshold is
// treated as zero. Every bucket is allocated, so empty ones serialize as
// arrays rather than null.
func Bucketize(records []Record, threshold int) Buckets {
	if threshold < 0 {
		threshold = 0
	}
	b := Buckets{
		Overdue:  []Record{},
		Today:    []Record{},
		Upcoming: []Record{},
		Later:    []Record{},
	}
	for _, r := range records {
		switch {
		case r.DaysUntilDue < 0:
			b.Overdue = append(b.Overdue, r)
		case r.DaysUntilDue == 0:
			b.Today = append(b.Today, r)
		case r.DaysUntilDue <= threshold:
			b.Upcoming = append(b.Upcoming, r)
		default:
			b.Later = append(b.Later, r)
		}
	}
	return b
}

// Total reports how many records the buckets hold.
func (b Buckets) Total() int {
	return len(b.Overdue) + len(b.Today) + len(b.Upcoming) + len(b.Later)
}

// Due reports how many records are ready right now, overdue included.
func (b Buckets) Due() int {
	return len(b.Overdue) + len(b.Today)
}
