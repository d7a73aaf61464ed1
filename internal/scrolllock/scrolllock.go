// Package scrolllock guards the page scroll shared by the overlays (navigation menu, results
// viewer). Scrolling stays locked while at least one token is held.
package scrolllock

import (
	"sort"
	"sync"
)

// New returns an unlocked scroll lock.
func New() *Lock {
	return &Lock{holders: make(map[uint64]string)}
}

type Lock struct {
	mu      sync.Mutex
	holders map[uint64]string // token id -> owner
	next    uint64
}

// Token is the capability returned by Acquire; releasing it drops exactly one hold.
type Token struct {
	lock *Lock
	id   uint64
	once sync.Once
}

// Acquire adds a hold on behalf of owner.
func (l *Lock) Acquire(owner string) *Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.holders[l.next] = owner
	return &Token{lock: l, id: l.next}
}

// Locked reports whether any hold is outstanding.
func (l *Lock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.holders) > 0
}

// Holders returns the owners of the outstanding holds, sorted.
func (l *Lock) Holders() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	owners := make([]string, 0, len(l.holders))
	for _, o := range l.holders {
		owners = append(owners, o)
	}
	sort.Strings(owners)
	return owners
}

// Release drops the hold. Releasing twice, or releasing a nil token, is a no-op.
func (t *Token) Release() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		t.lock.mu.Lock()
		defer t.lock.mu.Unlock()
		delete(t.lock.holders, t.id)
	})
}
