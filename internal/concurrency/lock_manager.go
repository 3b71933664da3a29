package concurrency

import (
	"sync"
)

// LockManager handles named locks. Reward and badge mutations serialize per
// (player, difficulty); star awards serialize per player.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// BadgeKey builds the lock key serializing badge and reward mutations for
// one player/difficulty pair.
func BadgeKey(playerID, difficulty string) string {
	return "badge:" + playerID + ":" + difficulty
}

// StarKey builds the lock key serializing star awards for one player.
func StarKey(playerID string) string {
	return "star:" + playerID
}
