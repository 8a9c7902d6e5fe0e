// Package pool is a fixed-capacity slot pool for short-lived animation
// entities. Slots are explicitly Empty or Active; empty slots are recycled
// through a free list.
package pool

import "slices"

type State uint8

const (
	Empty State = iota
	Active
)

type Slot[T any] struct {
	State State
	Val   T
}

type Pool[T any] struct {
	slots  []Slot[T]
	free   []int // descending, so the lowest free index is last
	active int
}

func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{slots: make([]Slot[T], capacity)}
	p.Clear()
	return p
}

func (p *Pool[T]) Cap() int { return len(p.slots) }

// Len is the number of active slots.
func (p *Pool[T]) Len() int { return p.active }

func (p *Pool[T]) Full() bool { return len(p.free) == 0 }

// Acquire stores v in the lowest-indexed empty slot and returns its index.
// ok is false when the pool is full.
func (p *Pool[T]) Acquire(v T) (i int, ok bool) {
	if len(p.free) == 0 {
		return -1, false
	}
	i = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.slots[i] = Slot[T]{State: Active, Val: v}
	p.active++
	return i, true
}

// Release empties slot i. Releasing an empty slot is a no-op.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.slots) || p.slots[i].State != Active {
		return
	}
	var zero T
	p.slots[i] = Slot[T]{State: Empty, Val: zero}
	at := len(p.free)
	for at > 0 && p.free[at-1] < i {
		at--
	}
	p.free = slices.Insert(p.free, at, i)
	p.active--
}

// Get returns the value in slot i, or nil when the slot is empty.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.slots) || p.slots[i].State != Active {
		return nil
	}
	return &p.slots[i].Val
}

// Each calls fn for every active slot in index order. fn may Release the slot it is given.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.slots {
		if p.slots[i].State == Active {
			fn(i, &p.slots[i].Val)
		}
	}
}

// Clear empties every slot.
func (p *Pool[T]) Clear() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		p.slots[i] = Slot[T]{State: Empty, Val: zero}
		p.free = append(p.free, i)
	}
	p.active = 0
}
