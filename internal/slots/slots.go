// Package slots implements a slot-recycling arena indexed by small integers.
//
// An index returned by [List.Add] stays bound to its value until
// [List.Remove] or [List.Clear]. Freed indices are reused lowest first, so
// indices stay dense under add/remove churn. Add scans for a free slot
// linearly; the arena is meant for tens of entries, not thousands.
//
// List is not safe for concurrent use.
package slots

import "iter"

type slot[T any] struct {
	value T
	used  bool
}

// List is a slot arena. The zero value is an empty list ready to use.
type List[T any] struct {
	slots []slot[T]
	live  int
}

// Add stores v in the lowest free slot, appending one if none is free,
// and returns the slot index.
func (l *List[T]) Add(v T) int {
	l.live++
	for i := range l.slots {
		if !l.slots[i].used {
			l.slots[i] = slot[T]{value: v, used: true}
			return i
		}
	}
	l.slots = append(l.slots, slot[T]{value: v, used: true})
	return len(l.slots) - 1
}

// Valid reports whether i refers to an occupied slot.
func (l *List[T]) Valid(i int) bool {
	return i >= 0 && i < len(l.slots) && l.slots[i].used
}

// Get returns the value at i. The boolean is false if i is out of range
// or the slot is free.
func (l *List[T]) Get(i int) (T, bool) {
	if !l.Valid(i) {
		var zero T
		return zero, false
	}
	return l.slots[i].value, true
}

// Remove frees slot i and returns the value it held.
// The boolean is false, and nothing changes, if i is not occupied.
func (l *List[T]) Remove(i int) (T, bool) {
	if !l.Valid(i) {
		var zero T
		return zero, false
	}
	v := l.slots[i].value
	l.slots[i] = slot[T]{}
	l.live--
	return v, true
}

// Clear frees every slot and truncates the list to zero length.
func (l *List[T]) Clear() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.live = 0
}

// Len returns the number of slots, occupied or free.
func (l *List[T]) Len() int { return len(l.slots) }

// Live returns the number of occupied slots.
func (l *List[T]) Live() int { return l.live }

// All yields occupied slots in index order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.slots {
			if !l.slots[i].used {
				continue
			}
			if !yield(i, l.slots[i].value) {
				return
			}
		}
	}
}
