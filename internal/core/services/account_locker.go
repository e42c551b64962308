package services

import (
	"sort"
	"sync"
)

// AccountLocker serialises work on individual accounts. Services that mutate
// balances share one locker so a transfer never interleaves with a sweep.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{locks: make(map[string]*accountLock)}
}

// Lock acquires every given account in id order, so two callers locking the
// same pair can never deadlock. The returned func releases them all.
func (l *AccountLocker) Lock(accountIDs ...string) (unlock func()) {
	ids := uniqueSorted(accountIDs)
	held := make([]*accountLock, 0, len(ids))
	for _, id := range ids {
		lock := l.acquire(id)
		lock.mu.Lock()
		held = append(held, lock)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
			l.release(ids[i])
		}
	}
}

func (l *AccountLocker) acquire(id string) *accountLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &accountLock{}
		l.locks[id] = lock
	}
	lock.refs++
	return lock
}

func (l *AccountLocker) release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock := l.locks[id]
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, id)
	}
}

func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
