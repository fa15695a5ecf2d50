package retrieve

import "sync"

// SelectedSet is the run-wide collection of asset IDs already bound to a
// scene. The check-then-insert is a single atomic step so that scenes
// processed concurrently can never bind the same asset.
type SelectedSet struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

func NewSelectedSet() *SelectedSet {
	return &SelectedSet{ids: make(map[int]struct{})}
}

// Reserve binds id to the caller. It reports false when some scene already
// holds the id; a successful reservation lasts for the lifetime of the run.
func (s *SelectedSet) Reserve(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.ids[id]; taken {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Len returns how many assets have been bound so far.
func (s *SelectedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
