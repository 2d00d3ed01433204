package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"worklog/internal/api"
	"worklog/internal/domain"
	"worklog/internal/errors"
)

// mockStore implements the api.Store interface for testing. It keeps
// entries in memory and runs on a settable clock. Setting failWith
// makes every operation return that error.
type mockStore struct {
	entries  map[int64]*domain.Entry
	order    []int64
	nextID   int64
	now      time.Time
	failWith error

	mergedIDs []int64
}

func newMockStore(now time.Time) *mockStore {
	return &mockStore{
		entries: make(map[int64]*domain.Entry),
		nextID:  1,
		now:     now,
	}
}

func (m *mockStore) Start(ctx context.Context, comment string) (*domain.Entry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	entry := &domain.Entry{
		ID:        m.nextID,
		StartTime: m.now,
		Comment:   comment,
	}
	m.entries[entry.ID] = entry
	m.order = append(m.order, entry.ID)
	m.nextID++
	return entry, nil
}

func (m *mockStore) CloseOpen(ctx context.Context) ([]domain.Entry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	var closed []domain.Entry
	for _, id := range m.order {
		entry := m.entries[id]
		if entry.EndTime == nil {
			end := m.now
			entry.EndTime = &end
			closed = append(closed, *entry)
		}
	}
	return closed, nil
}

func (m *mockStore) Resume(ctx context.Context, id *int64) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}

	var source *domain.Entry
	if id != nil {
		entry, exists := m.entries[*id]
		if !exists {
			return "", errors.NewNotFoundError("entry", fmt.Sprintf("%d", *id))
		}
		source = entry
	} else {
		if len(m.order) == 0 {
			return "", errors.NewNotFoundError("entry", "latest")
		}
		source = m.entries[m.order[len(m.order)-1]]
	}

	entry := &domain.Entry{
		ID:        m.nextID,
		StartTime: m.now,
		Comment:   source.Comment,
	}
	m.entries[entry.ID] = entry
	m.order = append(m.order, entry.ID)
	m.nextID++
	return source.Comment, nil
}

func (m *mockStore) ResetLast(ctx context.Context) (api.Status, error) {
	if m.failWith != nil {
		return api.StatusEmpty, m.failWith
	}
	if len(m.order) == 0 {
		return api.StatusEmpty, nil
	}

	last := m.order[len(m.order)-1]
	delete(m.entries, last)
	m.order = m.order[:len(m.order)-1]
	return api.StatusDeleted, nil
}

func (m *mockStore) UpdateLast(ctx context.Context, comment string) (api.Status, error) {
	if m.failWith != nil {
		return api.StatusEmpty, m.failWith
	}
	if len(m.order) == 0 {
		return api.StatusEmpty, nil
	}

	m.entries[m.order[len(m.order)-1]].Comment = comment
	return api.StatusUpdated, nil
}

func (m *mockStore) Merge(ctx context.Context, ids []int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mergedIDs = ids
	if len(ids) == 0 {
		return nil
	}

	comments := make([]string, 0, len(ids))
	for _, id := range ids {
		entry, exists := m.entries[id]
		if !exists {
			return errors.NewNotFoundError("entry", fmt.Sprintf("%d", id))
		}
		comments = append(comments, entry.Comment)
	}

	m.entries[ids[0]].Comment = strings.Join(comments, ", ")
	for _, id := range ids[1:] {
		delete(m.entries, id)
		for i, ordered := range m.order {
			if ordered == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (m *mockStore) LastEntryID(ctx context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if len(m.order) == 0 {
		return 0, errors.NewEmptyStoreError("get last entry")
	}
	return m.order[len(m.order)-1], nil
}

func (m *mockStore) EntriesSince(ctx context.Context, cutoff time.Time) ([]domain.EntryView, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	var views []domain.EntryView
	for _, id := range m.order {
		entry := m.entries[id]
		if entry.StartTime.After(cutoff) {
			views = append(views, domain.NewEntryView(*entry, m.now))
		}
	}
	return views, nil
}
