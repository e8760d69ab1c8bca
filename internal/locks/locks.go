// Package locks provides per-account mutual exclusion for the ledger core.
// Multi-account operations acquire their locks in ascending account id
// order so overlapping transfers cannot deadlock.
package locks

import (
	"sort"
	"sync"
)

// Table hands out one mutex per account id. Mutexes are created on first
// use and never released; the set of active accounts is small enough that
// this does not need eviction.
type Table struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewTable() *Table {
	return &Table{locks: make(map[int64]*sync.Mutex)}
}

func (t *Table) get(id int64) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}

// Lock acquires the mutex for every distinct id, lowest id first, and
// returns the release function. The caller holds the locks across its whole
// load-validate-mutate-persist sequence.
func (t *Table) Lock(ids ...int64) func() {
	distinct := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	held := make([]*sync.Mutex, 0, len(distinct))
	for _, id := range distinct {
		l := t.get(id)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
