package counter

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dannynguyen3011/tally/internal/logging"
)

// Store owns the current state snapshot. Dispatch replaces the snapshot
// atomically under a single lock, so concurrent readers always observe
// either the state before a transition or the state after it, never a
// partial write. Callers hold a Store explicitly; there is no package
// singleton.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding the initial counter state.
func NewStore() *Store {
	return &Store{state: Initial()}
}

// NewStoreFrom creates a store holding the given snapshot. Useful for
// tests and for replaying a prepared state into a consumer.
func NewStoreFrom(s State) *Store {
	return &Store{state: s}
}

// Dispatch applies the action to the current state and installs the
// result as the new snapshot, returning it. Each dispatch is tagged with
// a short correlation id in debug logs.
func (st *Store) Dispatch(a Action) State {
	st.mu.Lock()
	next := Apply(st.state, a)
	st.state = next
	st.mu.Unlock()

	logging.DebugLog("dispatch",
		logging.KeyDispatchID, uuid.NewString()[:8],
		logging.KeyAction, next.LastAction,
		logging.KeyValue, next.Value,
		logging.KeyHistoryLen, len(next.History),
	)
	return next
}

// State returns the current snapshot.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}
