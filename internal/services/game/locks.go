package game

import (
	"sync"

	"github.com/mcoot/wordgrid/internal/model"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks serializes read-modify-write cycles per session.
// Entries are reference counted and dropped once no caller holds them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[model.SessionID]*lockEntry
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[model.SessionID]*lockEntry)}
}

// lock blocks until id is free and returns the matching unlock
func (l *sessionLocks) lock(id model.SessionID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs <= 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live entries
func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
