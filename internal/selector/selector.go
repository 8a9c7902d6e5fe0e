// Package selector holds the index of the routine the frame driver runs.
// The index is written from event handlers (button, playlist) and read once
// per frame.
package selector

import (
	"sync/atomic"
)

type Selector struct {
	idx   atomic.Int32
	count int32
}

// New returns a selector over count routines starting at start. An out of
// range start selects routine 0.
func New(count, start int) *Selector {
	if count < 1 {
		count = 1
	}
	s := &Selector{count: int32(count)}
	if start >= 0 && start < count {
		s.idx.Store(int32(start))
	}
	return s
}

func (s *Selector) Count() int { return int(s.count) }

func (s *Selector) Current() int { return int(s.idx.Load()) }

// Select jumps to routine i. It reports false and leaves the selection alone
// when i is out of range.
func (s *Selector) Select(i int) bool {
	if i < 0 || i >= int(s.count) {
		return false
	}
	s.idx.Store(int32(i))
	return true
}

// Next advances to the following routine, wrapping after the last, and
// returns the new index.
func (s *Selector) Next() int {
	for {
		cur := s.idx.Load()
		next := (cur + 1) % s.count
		if s.idx.CompareAndSwap(cur, next) {
			return int(next)
		}
	}
}
