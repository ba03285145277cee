package window

import "sync"

// Pos is an on-screen coordinate in physical pixels, measured from the
// top-left of the primary monitor.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PosStore holds the last saved popup position for the lifetime of the
// process. It is the only mutable state shared across command handlers and
// is injected where needed rather than kept as a global.
type PosStore struct {
	mu  sync.Mutex
	pos *Pos
}

func NewPosStore() *PosStore {
	return &PosStore{}
}

// Save records p as the last known position.
func (s *PosStore) Save(p Pos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = &p
}

// Load returns the last saved position, if any.
func (s *PosStore) Load() (Pos, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos == nil {
		return Pos{}, false
	}
	return *s.pos, true
}
