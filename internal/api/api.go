package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"worklog/internal/clock"
	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/logging"
	"worklog/internal/repository/sqlite"
	"worklog/internal/validation"
)

// Status reports the outcome of operations that are deliberately
// forgiving on an empty store.
type Status int

const (
	// StatusDeleted means the most recent entry was removed.
	StatusDeleted Status = iota
	// StatusUpdated means the most recent entry's comment was rewritten.
	StatusUpdated
	// StatusEmpty means the store had no entries and nothing happened.
	StatusEmpty
)

// Store defines the interface for all entry lifecycle and query
// operations. Callers wanting the at-most-one-open-entry invariant must
// call CloseOpen before Start or Resume; Start itself does not check.
type Store interface {
	// Lifecycle operations
	Start(ctx context.Context, comment string) (*domain.Entry, error)
	CloseOpen(ctx context.Context) ([]domain.Entry, error)
	Resume(ctx context.Context, id *int64) (string, error)
	ResetLast(ctx context.Context) (Status, error)
	UpdateLast(ctx context.Context, comment string) (Status, error)
	Merge(ctx context.Context, ids []int64) error

	// Query operations
	LastEntryID(ctx context.Context) (int64, error)
	EntriesSince(ctx context.Context, cutoff time.Time) ([]domain.EntryView, error)
}

type storeImpl struct {
	repo             sqlite.Repository
	clk              clock.Clock
	mapper           *domain.EntryMapper
	commentValidator *validation.CommentValidator
}

// New creates a new Store instance over the given repository and clock.
func New(repo sqlite.Repository, clk clock.Clock) Store {
	return &storeImpl{
		repo:             repo,
		clk:              clk,
		mapper:           domain.NewEntryMapper(),
		commentValidator: validation.NewCommentValidator(),
	}
}

// Start inserts a new open entry with the given comment, starting now.
func (s *storeImpl) Start(ctx context.Context, comment string) (*domain.Entry, error) {
	cleaned, err := s.commentValidator.GetValidComment(comment)
	if err != nil {
		return nil, errors.NewValidationError("invalid comment", err)
	}

	dbEntry := &sqlite.Entry{
		StartTime: s.clk.Now(),
		Comment:   cleaned,
	}
	if err := s.repo.CreateEntry(ctx, dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("started entry %d: %s\n", dbEntry.ID, cleaned)
	entry := s.mapper.FromDatabase(*dbEntry)
	return &entry, nil
}

// CloseOpen sets the end time to now on every open entry and returns
// the entries it closed. Closing an empty or fully-closed store is a
// no-op, not an error.
func (s *storeImpl) CloseOpen(ctx context.Context) ([]domain.Entry, error) {
	closed, err := s.repo.CloseOpenEntries(ctx, s.clk.Now())
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(closed), nil
}

// Resume starts a new open entry copying the comment of the entry with
// the given id, or of the most recent entry when id is nil. Returns the
// copied comment.
func (s *storeImpl) Resume(ctx context.Context, id *int64) (string, error) {
	var source *sqlite.Entry
	var err error

	if id != nil {
		source, err = s.repo.GetEntry(ctx, *id)
	} else {
		source, err = s.repo.GetLastEntry(ctx)
	}
	if err != nil {
		return "", err
	}

	dbEntry := &sqlite.Entry{
		StartTime: s.clk.Now(),
		Comment:   source.Comment,
	}
	if err := s.repo.CreateEntry(ctx, dbEntry); err != nil {
		return "", err
	}

	logging.Debugf("resumed entry %d as %d\n", source.ID, dbEntry.ID)
	return source.Comment, nil
}

// ResetLast deletes the most recently created entry. Deleting from an
// empty store reports StatusEmpty rather than failing.
func (s *storeImpl) ResetLast(ctx context.Context) (Status, error) {
	last, err := s.repo.GetLastEntry(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return StatusEmpty, nil
		}
		return StatusEmpty, err
	}

	if err := s.repo.DeleteEntry(ctx, last.ID); err != nil {
		return StatusEmpty, err
	}
	return StatusDeleted, nil
}

// UpdateLast rewrites the comment of the most recent entry, leaving its
// start and end times untouched. An empty store reports StatusEmpty.
func (s *storeImpl) UpdateLast(ctx context.Context, comment string) (Status, error) {
	cleaned, err := s.commentValidator.GetValidComment(comment)
	if err != nil {
		return StatusEmpty, errors.NewValidationError("invalid comment", err)
	}

	last, err := s.repo.GetLastEntry(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return StatusEmpty, nil
		}
		return StatusEmpty, err
	}

	last.Comment = cleaned
	if err := s.repo.UpdateEntry(ctx, last); err != nil {
		return StatusEmpty, err
	}
	return StatusUpdated, nil
}

// Merge collapses the listed entries into the first one. The target
// entry ends up spanning the summed elapsed time of all listed entries
// and carrying their comments joined in list order; the remaining
// entries are deleted. If any listed entry is still open the merged
// entry is left open too, anchored so that its running duration equals
// the sum. A missing id fails the whole merge with no changes applied.
func (s *storeImpl) Merge(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	now := s.clk.Now()
	entries := make([]*sqlite.Entry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.repo.GetEntry(ctx, id)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	var total time.Duration
	anyOpen := false
	comments := make([]string, 0, len(entries))
	for _, entry := range entries {
		elapsed := s.mapper.FromDatabase(*entry).Elapsed(now)
		total += elapsed
		if entry.EndTime == nil {
			anyOpen = true
		}
		comments = append(comments, entry.Comment)
	}

	target := entries[0]
	target.Comment = strings.Join(comments, ", ")
	if anyOpen {
		// Keep the merged entry running: anchor its start so that
		// now - start equals the summed duration.
		target.StartTime = now.Add(-total)
		target.EndTime = nil
	} else {
		end := target.StartTime.Add(total)
		target.EndTime = &end
	}

	logging.Debugf("merging %v into %d (total %s)\n", ids[1:], target.ID, total)
	return s.repo.MergeEntries(ctx, target, ids[1:])
}

// LastEntryID returns the maximum entry id in the store.
func (s *storeImpl) LastEntryID(ctx context.Context) (int64, error) {
	last, err := s.repo.GetLastEntry(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return 0, errors.NewEmptyStoreError("get last entry")
		}
		return 0, err
	}
	return last.ID, nil
}

// EntriesSince returns a snapshot of every entry starting strictly
// after the cutoff instant, projected at the current time. Re-querying
// yields current state; the returned slice is independent of the store.
func (s *storeImpl) EntriesSince(ctx context.Context, cutoff time.Time) ([]domain.EntryView, error) {
	dbEntries, err := s.repo.ListEntriesSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	views := make([]domain.EntryView, len(dbEntries))
	for i, dbEntry := range dbEntries {
		views[i] = domain.NewEntryView(s.mapper.FromDatabase(*dbEntry), now)
	}
	return views, nil
}

// MidnightOf returns the start of the calendar day containing t, in
// t's location. Range queries cut off at day granularity.
func MidnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatStatus renders a Status for display.
func FormatStatus(s Status) string {
	switch s {
	case StatusDeleted:
		return "deleted last entry"
	case StatusUpdated:
		return "updated last entry"
	case StatusEmpty:
		return "no entries recorded yet"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}
