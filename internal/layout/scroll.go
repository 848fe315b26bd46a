package layout

import (
	"sync"
)

// Scroll tracks the vertical scroll offset of the viewport.
type Scroll struct {
	mu sync.RWMutex

	top    int
	maxTop int
}

// NewScroll creates a scroll tracker at offset zero.
func NewScroll() *Scroll {
	return &Scroll{}
}

// Top returns the current scroll offset.
func (s *Scroll) Top() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.top
}

// SetTop sets the scroll offset, clamped to [0, maxTop].
func (s *Scroll) SetTop(top int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = s.clamp(top)
}

// ScrollBy adjusts the scroll offset by delta, clamped to [0, maxTop].
func (s *Scroll) ScrollBy(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = s.clamp(s.top + delta)
}

// SetMaxTop sets the maximum scroll offset. Zero means unbounded.
// The current offset is re-clamped.
func (s *Scroll) SetMaxTop(maxTop int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxTop < 0 {
		maxTop = 0
	}
	s.maxTop = maxTop
	s.top = s.clamp(s.top)
}

// MaxTop returns the maximum scroll offset.
func (s *Scroll) MaxTop() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxTop
}

// clamp bounds an offset to the valid range (caller holds the lock).
func (s *Scroll) clamp(top int) int {
	if top < 0 {
		return 0
	}
	if s.maxTop > 0 && top > s.maxTop {
		return s.maxTop
	}
	return top
}
