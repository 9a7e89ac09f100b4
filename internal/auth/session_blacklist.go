package auth

import (
	"sync"
	"time"
)

// JwtBlacklistStore keeps revoked tokens until their natural expiry.
type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given token is blacklisted.
	IsBlacklisted(token string) (bool, error)
	// AddToBlacklist adds the given token to the blacklist with an expiration time.
	AddToBlacklist(token string, exp time.Time) error
}

// InMemoryBlacklistStore is a process-local JwtBlacklistStore.
type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex
}

// NewInMemoryBlacklistStore creates a store and starts its cleanup loop.
func NewInMemoryBlacklistStore() *InMemoryBlacklistStore {
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
	}
	go periodicCleanUp(store, time.Minute*5)
	return store
}

func periodicCleanUp(store *InMemoryBlacklistStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		store.CleanUpExpired()
	}
}

// CleanUpExpired drops entries whose expiry already passed.
func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, token)
		}
	}
}

// IsBlacklisted checks if the given token is blacklisted.
func (s *InMemoryBlacklistStore) IsBlacklisted(token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.blacklist[token]
	return exists, nil
}

// AddToBlacklist adds the given token to the blacklist with an expiration time.
func (s *InMemoryBlacklistStore) AddToBlacklist(token string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[token] = exp
	return nil
}
