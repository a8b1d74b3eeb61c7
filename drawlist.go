package stateful

import (
	"iter"
	"math"

	"github.com/gogpu/stateful/internal/slots"
)

// Handle identifies a primitive's slot in a DrawList from Add until Erase.
type Handle int

// NoHandle is the handle value meaning "no primitive".
const NoHandle Handle = -1

// Valid reports whether h could refer to a slot. It does not check that
// the slot is occupied.
func (h Handle) Valid() bool { return h >= 0 }

// DrawList is the slot-recycling registry that owns a canvas's primitives.
//
// Add fills the lowest erased slot before growing, so handles stay dense
// and low under add/erase churn. The scan is linear; a draw list is meant
// for a few dozen primitives.
//
// The zero value is an empty list ready to use. DrawList is not safe for
// concurrent use.
type DrawList struct {
	slots slots.List[Primitive]
}

// Add takes ownership of p and returns its handle.
// It panics with ErrNilPrimitive if p is nil.
func (l *DrawList) Add(p Primitive) Handle {
	if p == nil {
		fail(ErrNilPrimitive, "add")
	}
	return Handle(l.slots.Add(p))
}

// Get returns the primitive at h.
// It panics with ErrInvalidHandle or ErrEmptySlot if h is not live.
func (l *DrawList) Get(h Handle) Primitive {
	p, ok := l.slots.Get(int(h))
	if !ok {
		l.failHandle(h)
	}
	return p
}

// Erase releases the primitive at h and frees its slot for reuse.
// Erasing a handle twice is a programming error and panics.
func (l *DrawList) Erase(h Handle) {
	if _, ok := l.slots.Remove(int(h)); !ok {
		l.failHandle(h)
	}
}

func (l *DrawList) failHandle(h Handle) {
	if h < 0 || int(h) >= l.slots.Len() {
		fail(ErrInvalidHandle, "handle %d, %d slots", h, l.slots.Len())
	}
	fail(ErrEmptySlot, "handle %d", h)
}

// Clear releases every primitive and empties the list. Handles issued
// before Clear are invalid afterwards.
func (l *DrawList) Clear() {
	l.slots.Clear()
}

// Visible reports whether the primitive at h is drawn.
func (l *DrawList) Visible(h Handle) bool {
	return l.Get(h).Attributes().Visible()
}

// SetVisible shows or hides the primitive at h without erasing it.
func (l *DrawList) SetVisible(h Handle, v bool) {
	l.Get(h).Attributes().SetVisible(v)
}

// Len returns the number of slots, including erased ones.
func (l *DrawList) Len() int { return l.slots.Len() }

// Live returns the number of primitives the list owns.
func (l *DrawList) Live() int { return l.slots.Live() }

// All yields every live primitive in slot order.
func (l *DrawList) All() iter.Seq2[Handle, Primitive] {
	return func(yield func(Handle, Primitive) bool) {
		for i, p := range l.slots.All() {
			if !yield(Handle(i), p) {
				return
			}
		}
	}
}

// Layers returns the lowest and highest effective layer over all live
// primitives, hidden ones included. ok is false if the list is empty.
func (l *DrawList) Layers() (lo, hi int, ok bool) {
	lo, hi = math.MaxInt, math.MinInt
	for _, p := range l.slots.All() {
		z := p.Attributes().Layer()
		lo = min(lo, z)
		hi = max(hi, z)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Ordered yields the visible primitives back to front: ascending effective
// layer, and slot order within a layer.
//
// Every layer between the lowest and highest is visited with a full scan
// of the list, so the cost grows with the layer span. Keep layers adjacent;
// one primitive at layer 0 and another at 1,000,000 costs a million scans.
func (l *DrawList) Ordered() iter.Seq2[Handle, Primitive] {
	return func(yield func(Handle, Primitive) bool) {
		lo, hi, ok := l.Layers()
		if !ok {
			return
		}
		for z := lo; z <= hi; z++ {
			for i, p := range l.slots.All() {
				a := p.Attributes()
				if a.Hidden || a.Layer() != z {
					continue
				}
				if !yield(Handle(i), p) {
					return
				}
			}
			if z == math.MaxInt {
				return
			}
		}
	}
}
