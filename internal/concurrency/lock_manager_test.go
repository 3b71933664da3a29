package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock(BadgeKey("player-1", "easy"))
	b := lm.GetLock(BadgeKey("player-1", "easy"))
	c := lm.GetLock(BadgeKey("player-1", "average"))

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestGetLock_SerializesCriticalSection(t *testing.T) {
	lm := NewLockManager()
	key := StarKey("player-1")

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := lm.GetLock(key)
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeys_DistinctNamespaces(t *testing.T) {
	assert.NotEqual(t, BadgeKey("p", "easy"), StarKey("p"))
	assert.NotEqual(t, BadgeKey("p", "easy"), BadgeKey("p", "difficult"))
}
