package domain

import "time"

// DateFormat is the calendar date format used in views and reports.
const DateFormat = "2006-01-02"

// EntryView is the read-only projection used by range queries and
// reports. Start and End are epoch seconds; End is 0 while the entry
// is unfinished. Duration is fixed at query time so that repeated
// reads of the same view are stable.
type EntryView struct {
	ID         int64
	Start      int64
	End        int64
	Duration   int64
	Unfinished bool
	Date       string
	Comment    string
}

// NewEntryView projects an entry at the given observation time.
func NewEntryView(e Entry, now time.Time) EntryView {
	view := EntryView{
		ID:         e.ID,
		Start:      e.StartTime.Unix(),
		Unfinished: e.Open(),
		Date:       e.StartTime.Format(DateFormat),
		Comment:    e.Comment,
	}

	if e.EndTime != nil {
		view.End = e.EndTime.Unix()
		view.Duration = view.End - view.Start
	} else {
		view.Duration = now.Unix() - view.Start
	}

	return view
}
