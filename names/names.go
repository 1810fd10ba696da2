// Package names provides interned identifiers.
//
// Enumeration literals and physical units carry their names as interned
// handles rather than strings, so comparing two names is an integer
// comparison and every distinct identifier is stored once per process.
package names

import "sync"

// A Name is an interned identifier. Names are cheap to copy and
// compare; two Names are equal exactly when the strings they intern are
// equal.
type Name uint32

// New interns s and returns its Name. Interning the same string twice
// returns the same Name.
func New(s string) Name {
	return table.intern(s)
}

// String returns the interned string.
func (n Name) String() string {
	return table.resolve(n)
}

var table = &internTable{index: map[string]Name{}}

type internTable struct {
	mu    sync.RWMutex
	names []string
	index map[string]Name
}

func (t *internTable) intern(s string) Name {
	t.mu.RLock()
	n, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return n
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.index[s]; ok {
		return n
	}
	n = Name(len(t.names))
	t.names = append(t.names, s)
	t.index[s] = n
	return n
}

func (t *internTable) resolve(n Name) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.names[n]
}
