package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store defaults.
const (
	DefaultIdleTTL         = 2 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

// StoreConfig controls session expiry. A zero IdleTTL keeps sessions until
// they are deleted; a zero CleanupInterval disables the background sweep.
type StoreConfig struct {
	IdleTTL         time.Duration
	CleanupInterval time.Duration
}

// Store keeps sessions in memory, keyed by ID. Sessions idle longer than
// IdleTTL are evicted by a periodic sweep.
type Store struct {
	config   StoreConfig
	now      func() time.Time
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates an empty store and starts its cleanup goroutine when
// both IdleTTL and CleanupInterval are set. Call Stop to end it.
func NewStore(config StoreConfig) *Store {
	st := &Store{
		config:   config,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
		stop:     make(chan struct{}),
	}
	if config.IdleTTL > 0 && config.CleanupInterval > 0 {
		go st.cleanupLoop(config.CleanupInterval)
	}
	return st
}

// Put adds or replaces a session.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get looks up a session by its string ID.
func (st *Store) Get(id string) (*Session, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, &NotFoundError{ID: id}
	}

	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[key]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return s, nil
}

// Delete removes a session.
func (st *Store) Delete(id string) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return &NotFoundError{ID: id}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[key]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(st.sessions, key)
	return nil
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			st.Sweep()
		case <-st.stop:
			return
		}
	}
}

// Sweep drops sessions idle longer than IdleTTL and returns how many it
// removed.
func (st *Store) Sweep() int {
	if st.config.IdleTTL <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.config.IdleTTL)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (st *Store) Stop() {
	st.stopOnce.Do(func() { close(st.stop) })
}
