package directory

import "sync/atomic"

// Store holds the live table behind an atomically swapped pointer.
// Queries load whatever table is current; the refresh task builds a new
// table entirely off to the side and publishes it in one swap, so readers
// never observe a partially built table. Single writer, many readers, no
// locks.
type Store struct {
	table atomic.Pointer[Table]
}

func NewStore(initial Table) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Current returns the live table. Never nil.
func (s *Store) Current() Table {
	if t := s.table.Load(); t != nil {
		return *t
	}
	return Table{}
}

// Replace publishes table as the new live table (the schedule-sourced full
// rebuild path).
func (s *Store) Replace(table Table) {
	s.table.Store(&table)
}

// MergeIn publishes the merge of the live table with fresh (the feed-sourced
// refresh path). Only the refresh task calls Replace or MergeIn, so the
// load-merge-store is not racy.
func (s *Store) MergeIn(fresh Table) {
	merged := Merge(s.Current(), fresh)
	s.table.Store(&merged)
}
