// Package schedule is the spaced-repetition engine behind tend.
//
// The engine is a set of pure functions over plain values. Scan validates a
// batch of raw frontmatter into Records, Bucketize groups them by urgency,
// Intervals resolves a review level to a wait in days, and Advance computes
// the next level and due date after a confirmed review. Nothing here touches
// the file system or the wall clock; callers supply records and a reference
// time, which keeps every operation deterministic under test.
//
// Malformed metadata is routine, not exceptional: notes without a parseable
// due date are skipped, bad levels collapse to zero, and bad interval tokens
// are dropped. The one hard boundary is Advance, which trusts its day count;
// callers reject non-positive intervals before asking.
package schedule
