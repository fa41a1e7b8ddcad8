package state

import "sync"

// Store owns one State and applies actions to it through Reduce.
// Subscribers are notified of every new state; a slow subscriber only
// sees the latest one and never blocks Dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[int]chan State
	next  int
}

func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]chan State)}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	for _, ch := range s.subs {
		publish(ch, s.state)
	}
	return s.state
}

// Subscribe returns a channel that receives states produced by later
// dispatches, and a cancel function that closes it. Cancel may be called
// more than once.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// publish replaces any undelivered state in ch with st. Callers hold s.mu,
// so ch has no other writer.
func publish(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- st
}
