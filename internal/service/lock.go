package service

import (
	"sync"

	"github.com/google/uuid"
)

// BoardLocker serializes load-mutate-save cycles per board id within this
// process. The compare-and-swap version check in the repository still guards
// against writers in other processes; the lock keeps local writers from
// burning retries against each other.
type BoardLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewBoardLocker creates an empty locker
func NewBoardLocker() *BoardLocker {
	return &BoardLocker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex for one board and returns its unlock function.
// Lock entries are retained for the process lifetime; the set of boards is
// human-scale.
func (l *BoardLocker) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
