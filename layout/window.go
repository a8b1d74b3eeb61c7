// Package layout is a small host layout system for canvases drawn in
// cursor-following mode.
//
// A Window stacks items vertically: every ItemSize call moves the cursor
// down by the reserved height plus the spacing. Items registered with
// ItemAdd can be hit-tested after the frame.
//
//	w := layout.NewWindow("main", surface, layout.WithSpacing(8))
//	for {
//		w.Begin()
//		header.Draw(w, "header", true)
//		plot.Draw(w, "plot", true)
//		if id, ok := w.HitTest(mouse); ok { ... }
//	}
package layout

import (
	"hash/fnv"
	"log/slog"

	"github.com/gogpu/stateful"
)

// DefaultSpacing is the vertical gap between items.
const DefaultSpacing = 4

// Item is an interactive item registered during the current frame.
type Item struct {
	ID    stateful.ID
	Label string
	BB    stateful.Rect
}

// Window implements stateful.Frame over a surface.
//
// Window is not safe for concurrent use.
type Window struct {
	name    string
	surface stateful.Surface

	origin  stateful.Vec2
	spacing float64
	bounds  stateful.Rect // zero means unbounded

	cursor  stateful.Vec2
	content stateful.Vec2
	skip    bool
	items   []Item
	labels  map[stateful.ID]string
}

var _ stateful.Frame = (*Window)(nil)

// NewWindow returns a window named name drawing into s. The name seeds
// every item ID, so equal labels in different windows do not collide.
func NewWindow(name string, s stateful.Surface, opts ...Option) *Window {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &Window{
		name:    name,
		surface: s,
		origin:  o.origin,
		spacing: o.spacing,
		bounds:  o.bounds,
		labels:  make(map[stateful.ID]string),
	}
	w.Begin()
	return w
}

// Name returns the window name.
func (w *Window) Name() string { return w.name }

// Begin starts a frame: the cursor returns to the origin and the items of
// the previous frame are dropped. The skip flag is kept.
func (w *Window) Begin() {
	w.cursor = w.origin
	w.content = stateful.Vec2{}
	w.items = w.items[:0]
}

// SetSkip makes the window report Skip until it is reset.
func (w *Window) SetSkip(skip bool) { w.skip = skip }

func (w *Window) Skip() bool                { return w.skip }
func (w *Window) Cursor() stateful.Vec2     { return w.cursor }
func (w *Window) Surface() stateful.Surface { return w.surface }

// SetCursor moves the layout position for the next item.
func (w *Window) SetCursor(p stateful.Vec2) { w.cursor = p }

// ID hashes label with FNV-1a, seeded by the window name.
func (w *Window) ID(label string) stateful.ID {
	h := fnv.New64a()
	h.Write([]byte(w.name))
	h.Write([]byte{0})
	h.Write([]byte(label))
	id := stateful.ID(h.Sum64())
	w.labels[id] = label
	return id
}

// Label returns the label id was hashed from.
func (w *Window) Label(id stateful.ID) (string, bool) {
	l, ok := w.labels[id]
	return l, ok
}

// ItemSize reserves size at the cursor and moves the cursor to the start
// of the next line.
func (w *Window) ItemSize(size stateful.Vec2) {
	w.content.X = max(w.content.X, w.cursor.X+size.X-w.origin.X)
	w.content.Y = max(w.content.Y, w.cursor.Y+size.Y-w.origin.Y)
	w.cursor = stateful.V(w.origin.X, w.cursor.Y+size.Y+w.spacing)
}

// ItemAdd registers an item. It reports false if bb lies entirely outside
// a bounded window; the item is recorded either way.
func (w *Window) ItemAdd(bb stateful.Rect, id stateful.ID) bool {
	w.items = append(w.items, Item{ID: id, Label: w.labels[id], BB: bb})
	visible := w.bounds == (stateful.Rect{}) || !bb.Intersect(w.bounds).Empty()
	stateful.Logger().Debug("layout: item",
		slog.String("window", w.name),
		slog.String("label", w.labels[id]),
		slog.Bool("visible", visible))
	return visible
}

// Items returns the items registered since Begin, in order.
func (w *Window) Items() []Item {
	return append([]Item(nil), w.items...)
}

// ContentSize returns the extent of everything reserved since Begin,
// relative to the origin.
func (w *Window) ContentSize() stateful.Vec2 { return w.content }

// HitTest returns the last registered item whose box contains p.
func (w *Window) HitTest(p stateful.Vec2) (stateful.ID, bool) {
	for i := len(w.items) - 1; i >= 0; i-- {
		if w.items[i].BB.Contains(p) {
			return w.items[i].ID, true
		}
	}
	return 0, false
}
