package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInMemoryBlacklistStore(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	assert.NotNil(t, store)
	assert.NotNil(t, store.blacklist)
}

func TestAddToBlacklist(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	jti := "test-token-id"
	exp := time.Now().Add(time.Hour)

	err := store.AddToBlacklist(jti, exp)
	assert.NoError(t, err)

	// Verify it was added
	store.mu.RLock()
	expTime, exists := store.blacklist[jti]
	store.mu.RUnlock()

	assert.True(t, exists)
	assert.Equal(t, exp, expTime)
}

func TestIsBlacklisted_NotInList(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	isBlacklisted, err := store.IsBlacklisted("non-existent-token")
	assert.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestIsBlacklisted_InList(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	jti := "blacklisted-token"

	err := store.AddToBlacklist(jti, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	isBlacklisted, err := store.IsBlacklisted(jti)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted)
}

func TestCleanUpExpired(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	expiredTime := time.Now().Add(-time.Hour)
	assert.NoError(t, store.AddToBlacklist("expired-token-1", expiredTime))
	assert.NoError(t, store.AddToBlacklist("expired-token-2", expiredTime))

	validJti := "valid-token"
	assert.NoError(t, store.AddToBlacklist(validJti, time.Now().Add(time.Hour)))

	store.mu.RLock()
	assert.Len(t, store.blacklist, 3)
	store.mu.RUnlock()

	store.CleanUpExpired()

	// Only the valid token remains
	store.mu.RLock()
	assert.Len(t, store.blacklist, 1)
	_, exists := store.blacklist[validJti]
	assert.True(t, exists)
	store.mu.RUnlock()
}

func TestAddToBlacklist_UpdateExpiration(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	jti := "test-token"

	exp1 := time.Now().Add(time.Hour)
	assert.NoError(t, store.AddToBlacklist(jti, exp1))

	exp2 := time.Now().Add(2 * time.Hour)
	assert.NoError(t, store.AddToBlacklist(jti, exp2))

	store.mu.RLock()
	expTime, exists := store.blacklist[jti]
	store.mu.RUnlock()

	assert.True(t, exists)
	assert.Equal(t, exp2, expTime)
}

func TestCleanUpExpired_EmptyStore(t *testing.T) {
	store := NewInMemoryBlacklistStore()

	assert.NotPanics(t, func() {
		store.CleanUpExpired()
	})

	store.mu.RLock()
	assert.Len(t, store.blacklist, 0)
	store.mu.RUnlock()
}

func TestConcurrentAccess(t *testing.T) {
	store := NewInMemoryBlacklistStore()
	exp := time.Now().Add(time.Hour)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			jti := fmt.Sprintf("token-%d", id)
			err := store.AddToBlacklist(jti, exp)
			assert.NoError(t, err)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	for i := 0; i < 10; i++ {
		go func(id int) {
			jti := fmt.Sprintf("token-%d", id)
			isBlacklisted, err := store.IsBlacklisted(jti)
			assert.NoError(t, err)
			assert.True(t, isBlacklisted)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
