package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/api"
	"worklog/internal/domain"
)

// viewStore is a Store stub serving canned entry views.
type viewStore struct {
	api.Store
	views []domain.EntryView
}

func (s *viewStore) EntriesSince(ctx context.Context, cutoff time.Time) ([]domain.EntryView, error) {
	return s.views, nil
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs     int64
		expected string
	}{
		{0, "00:00"},
		{29, "00:00"},
		{30, "00:01"}, // rounds half up
		{90, "00:02"},
		{3600, "01:00"},
		{5400, "01:30"},
		{90000, "25:00"}, // hours do not wrap at 24
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSeconds(tt.secs), "secs=%d", tt.secs)
	}
}

func TestSumSince(t *testing.T) {
	store := &viewStore{views: []domain.EntryView{
		{Date: "2026-08-28", Duration: 1800, Comment: "review parser"},
		{Date: "2026-08-27", Duration: 3600, Comment: "review"},
		{Date: "2026-08-28", Duration: 1800, Comment: "refactor lexer"},
	}}
	reporter := NewReporter(store)

	lines, err := reporter.SumSince(context.Background(), time.Time{})
	require.NoError(t, err)

	// Grouped by date, summed, sorted ascending
	assert.Equal(t, []string{
		"2026-08-27: 01:00",
		"2026-08-28: 01:00",
	}, lines)
}

func TestSumSince_Empty(t *testing.T) {
	reporter := NewReporter(&viewStore{})

	lines, err := reporter.SumSince(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestListSince(t *testing.T) {
	store := &viewStore{views: []domain.EntryView{
		{ID: 1, Date: "2026-08-28", Duration: 1800, Comment: "review parser"},
		{ID: 2, Date: "2026-08-28", Duration: 600, Unfinished: true, Comment: "debugging"},
	}}
	reporter := NewReporter(store)

	lines, err := reporter.ListSince(context.Background(), time.Time{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"00:30 (id: 1) - review parser",
		"00:10 (still running) - debugging",
	}, lines)
}

func TestListSince_WithDates(t *testing.T) {
	store := &viewStore{views: []domain.EntryView{
		{ID: 1, Date: "2026-08-27", Duration: 3600, Comment: "review"},
	}}
	reporter := NewReporter(store)

	lines, err := reporter.ListSince(context.Background(), time.Time{}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-27: 01:00 (id: 1) - review"}, lines)
}

func TestSumSince_ThirtyMinuteScenario(t *testing.T) {
	// create at T0, close at T0+1800s: the day sums to 00:30
	t0 := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	entry := domain.Entry{ID: 1, StartTime: t0, Comment: "review parser"}
	end := t0.Add(1800 * time.Second)
	entry.EndTime = &end

	store := &viewStore{views: []domain.EntryView{domain.NewEntryView(entry, end)}}
	reporter := NewReporter(store)

	lines, err := reporter.SumSince(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-28: 00:30"}, lines)
}
