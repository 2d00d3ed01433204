package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"worklog/internal/api"
)

// Reporter derives human-readable listings and daily sums from the
// entry store. It only reads; all mutation goes through the store.
type Reporter struct {
	store api.Store
}

// NewReporter creates a new Reporter over the given store.
func NewReporter(store api.Store) *Reporter {
	return &Reporter{store: store}
}

// FormatSeconds renders a duration in seconds as zero-padded "HH:MM".
// Seconds round half-up to the nearest minute; hours are unbounded
// rather than wrapping at 24.
func FormatSeconds(secs int64) string {
	minutes := (secs + 30) / 60
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// SumSince returns one line per calendar day since the cutoff, each of
// the form "<date>: <HH:MM>", sorted by date ascending.
func (r *Reporter) SumSince(ctx context.Context, cutoff time.Time) ([]string, error) {
	views, err := r.store.EntriesSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, view := range views {
		totals[view.Date] += view.Duration
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	lines := make([]string, len(dates))
	for i, date := range dates {
		lines[i] = fmt.Sprintf("%s: %s", date, FormatSeconds(totals[date]))
	}
	return lines, nil
}

// ListSince returns one line per entry since the cutoff. Open entries
// render as "<HH:MM> (still running) - <comment>", closed ones as
// "<HH:MM> (id: <id>) - <comment>". When showDate is set each line is
// prefixed with "<date>: ".
func (r *Reporter) ListSince(ctx context.Context, cutoff time.Time, showDate bool) ([]string, error) {
	views, err := r.store.EntriesSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(views))
	for i, view := range views {
		var line string
		if view.Unfinished {
			line = fmt.Sprintf("%s (still running) - %s", FormatSeconds(view.Duration), view.Comment)
		} else {
			line = fmt.Sprintf("%s (id: %d) - %s", FormatSeconds(view.Duration), view.ID, view.Comment)
		}
		if showDate {
			line = fmt.Sprintf("%s: %s", view.Date, line)
		}
		lines[i] = line
	}
	return lines, nil
}
