package services

import "sync"

// UserLocks serializes all mutations of one user's cart, checkout included.
// Cart and order services must share the same instance.
type UserLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{m: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for userID and returns the matching unlock.
func (l *UserLocks) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.m[userID]
	if !ok {
		m = &sync.Mutex{}
		l.m[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
