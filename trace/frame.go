package trace

import (
	"hash/fnv"

	"github.com/gogpu/stateful"
)

// Item is one ItemAdd call recorded by a Frame.
type Item struct {
	BB stateful.Rect
	ID stateful.ID
}

// Frame is a scripted host window. Its cursor and skip flag are set by the
// test; ItemSize advances the cursor vertically like a simple layout.
type Frame struct {
	Surf     stateful.Surface
	Pos      stateful.Vec2
	SkipNext bool

	// Clipped makes ItemAdd report false.
	Clipped bool

	Sizes  []stateful.Vec2
	Items  []Item
	Labels map[stateful.ID]string
}

var _ stateful.Frame = (*Frame)(nil)

// NewFrame returns a frame drawing into s with the cursor at the origin.
func NewFrame(s stateful.Surface) *Frame {
	return &Frame{Surf: s, Labels: make(map[stateful.ID]string)}
}

func (f *Frame) Skip() bool                { return f.SkipNext }
func (f *Frame) Cursor() stateful.Vec2     { return f.Pos }
func (f *Frame) Surface() stateful.Surface { return f.Surf }

func (f *Frame) ID(label string) stateful.ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	id := stateful.ID(h.Sum64())
	if f.Labels == nil {
		f.Labels = make(map[stateful.ID]string)
	}
	f.Labels[id] = label
	return id
}

func (f *Frame) ItemSize(size stateful.Vec2) {
	f.Sizes = append(f.Sizes, size)
	f.Pos.Y += size.Y
}

func (f *Frame) ItemAdd(bb stateful.Rect, id stateful.ID) bool {
	f.Items = append(f.Items, Item{BB: bb, ID: id})
	return !f.Clipped
}
