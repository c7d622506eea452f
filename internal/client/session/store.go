// Package session holds the console's single source of truth for
// authentication: the Store owning the current bearer credential.
//
// Whether the operator is authenticated is always derived from the Store
// (a credential is present); nothing else in the console keeps its own flag.
// Observers that need to react to changes subscribe instead of caching.
package session

import "sync"

// Credential is the opaque bearer token issued by the auth service.
// The zero value means "no credential".
type Credential string

// Change describes one effective transition of the Store.
type Change struct {
	Old Credential
	New Credential
}

// Cleared reports whether the change removed the credential.
func (c Change) Cleared() bool { return c.Old != "" && c.New == "" }

// Listener is called synchronously after every effective change.
type Listener func(Change)

// Store is a goroutine-safe cell holding the current Credential.
//
// Writes that do not change the value (setting the same token, clearing an
// already absent one) are no-ops and do not notify. Listeners are invoked
// outside the value lock, one change at a time, in write order, so a
// listener may read the Store but must not write to it or change
// subscriptions from inside the callback.
type Store struct {
	mu    sync.RWMutex
	value Credential

	notifyMu  sync.Mutex
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
}

// NewStore returns an empty Store (no credential).
func NewStore() *Store {
	return &Store{listeners: make(map[uint64]Listener)}
}

// Get returns the current credential and whether one is present.
func (s *Store) Get() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.value != ""
}

// Authenticated is true while a credential is held.
func (s *Store) Authenticated() bool {
	_, ok := s.Get()
	return ok
}

// Set replaces the credential. Set("") is the same as Clear.
func (s *Store) Set(c Credential) {
	s.swap(func(Credential) (Credential, bool) { return c, true })
}

// Clear removes the credential. It reports whether anything was removed.
func (s *Store) Clear() bool {
	return s.swap(func(Credential) (Credential, bool) { return "", true })
}

// ClearIf removes the credential only while the Store still holds c.
// A rejection observed for an older credential therefore cannot wipe one
// that was rotated in afterwards. Reports whether anything was removed.
func (s *Store) ClearIf(c Credential) bool {
	if c == "" {
		return false
	}
	return s.swap(func(cur Credential) (Credential, bool) { return "", cur == c })
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.notifyMu.Lock()
			defer s.notifyMu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// swap applies next under notifyMu so that notifications are delivered in
// the same order as the writes that caused them.
func (s *Store) swap(next func(cur Credential) (Credential, bool)) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	old := s.value
	nv, apply := next(old)
	if !apply || nv == old {
		s.mu.Unlock()
		return false
	}
	s.value = nv
	s.mu.Unlock()

	ch := Change{Old: old, New: nv}
	for _, id := range s.order {
		s.listeners[id](ch)
	}
	return true
}
