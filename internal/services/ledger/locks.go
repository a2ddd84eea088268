package ledger

import (
	"sort"
	"strings"
	"sync"
)

// nameLocks serializes read-check-write sequences per player name, so two
// concurrent writers for the same name cannot both observe "no active row"
// and both insert one. Locks are keyed by the case-folded name and held for
// the duration of a ledger operation; operations touching two names (replace)
// acquire both in sorted key order to avoid deadlock.
type nameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// nameKey folds a player name into its lock key
func nameKey(firstName, lastName string) string {
	return strings.ToLower(lastName) + "\x00" + strings.ToLower(firstName)
}

func (n *nameLocks) get(key string) *sync.Mutex {
	n.mu.Lock()
	defer n.mu.Unlock()

	l, ok := n.locks[key]
	if !ok {
		l = &sync.Mutex{}
		n.locks[key] = l
	}
	return l
}

// lock acquires the mutexes for the given keys and returns an unlock
// function. Duplicate keys are collapsed so locking the same name twice is
// safe.
func (n *nameLocks) lock(keys ...string) func() {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			unique = append(unique, k)
		}
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, k := range unique {
		l := n.get(k)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
