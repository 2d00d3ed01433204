package domain

import (
	"worklog/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain Entry to a database Entry.
func (m *EntryMapper) ToDatabase(domainEntry Entry) sqlite.Entry {
	return sqlite.Entry{
		ID:        domainEntry.ID,
		StartTime: domainEntry.StartTime,
		EndTime:   domainEntry.EndTime,
		Comment:   domainEntry.Comment,
	}
}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.Entry) Entry {
	return Entry{
		ID:        dbEntry.ID,
		StartTime: dbEntry.StartTime,
		EndTime:   dbEntry.EndTime,
		Comment:   dbEntry.Comment,
	}
}

// FromDatabaseSlice converts a slice of database Entries to domain Entries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.Entry) []Entry {
	domainEntries := make([]Entry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(*entry)
	}
	return domainEntries
}
