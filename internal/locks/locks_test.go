package locks

import (
	"sync"
	"testing"
	"time"
)

func TestLockSerialisesAccess(t *testing.T) {
	table := NewTable()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := table.Lock(7)
			counter++
			release()
		}()
	}
	wg.Wait()
	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestLockDeduplicatesIDs(t *testing.T) {
	table := NewTable()
	release := table.Lock(3, 3, 3)
	release()
	// A second acquisition must succeed: the first released everything.
	release = table.Lock(3)
	release()
}

// Overlapping multi-account locks taken in opposite argument order must not
// deadlock, because acquisition is sorted by id.
func TestLockOrderingPreventsDeadlock(t *testing.T) {
	table := NewTable()
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := table.Lock(1, 2)
			release()
		}()
		go func() {
			defer wg.Done()
			release := table.Lock(2, 1)
			release()
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock: overlapping lock acquisitions did not finish")
	}
}
