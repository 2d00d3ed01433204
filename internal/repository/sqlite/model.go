package sqlite

import "time"

// Entry represents one recorded interval of work. EndTime is nil while
// the entry is open (still being worked on).
type Entry struct {
	ID        int64
	StartTime time.Time
	EndTime   *time.Time // Using pointer to allow NULL values
	Comment   string
}
