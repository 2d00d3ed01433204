package domain

import "time"

// Entry is the domain model for one recorded interval of work. An
// entry with a nil EndTime is open: the work it describes is still in
// progress.
type Entry struct {
	ID        int64
	StartTime time.Time
	EndTime   *time.Time
	Comment   string
}

// Open reports whether the entry has no end time yet.
func (e Entry) Open() bool {
	return e.EndTime == nil
}

// Elapsed returns the entry's duration: end minus start for a closed
// entry, now minus start for an open one.
func (e Entry) Elapsed(now time.Time) time.Duration {
	if e.EndTime != nil {
		return e.EndTime.Sub(e.StartTime)
	}
	return now.Sub(e.StartTime)
}
