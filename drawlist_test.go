package stateful

import (
	"errors"
	"testing"
)

type dot struct {
	Attrs
	P Vec2
}

func (d *dot) Draw(Surface, Vec2)       {}
func (d *dot) Translate(dx, dy float64) { d.P = d.P.Add(V(dx, dy)) }

func newDot(z int) *dot { return &dot{Attrs: Attrs{Z: z}} }

func order(l *DrawList) []Handle {
	var hs []Handle
	for h := range l.Ordered() {
		hs = append(hs, h)
	}
	return hs
}

func TestDrawListZeroValue(t *testing.T) {
	var l DrawList
	if l.Len() != 0 || l.Live() != 0 {
		t.Errorf("zero DrawList Len=%d Live=%d", l.Len(), l.Live())
	}
	if _, _, ok := l.Layers(); ok {
		t.Error("Layers() on empty list reported ok")
	}
	if got := order(&l); len(got) != 0 {
		t.Errorf("Ordered() on empty list = %v", got)
	}
}

func TestDrawListLayers(t *testing.T) {
	var l DrawList
	l.Add(newDot(3))
	h := l.Add(newDot(-4))
	l.Add(newDot(0))
	l.SetVisible(h, false)

	lo, hi, ok := l.Layers()
	if !ok || lo != -4 || hi != 3 {
		t.Errorf("Layers() = %d, %d, %t, want -4, 3, true (hidden included)", lo, hi, ok)
	}
}

func TestDrawListOrdered(t *testing.T) {
	var l DrawList
	a := l.Add(newDot(1))
	b := l.Add(newDot(0))
	c := l.Add(newDot(1))
	d := l.Add(newDot(0))

	got := order(&l)
	want := []Handle{b, d, a, c}
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ordered() = %v, want %v", got, want)
		}
	}

	// Effective layer includes OffsetZ.
	l.Get(c).Attributes().OffsetZ = -5
	if got := order(&l); got[0] != c {
		t.Errorf("Ordered()[0] = %d, want %d after OffsetZ", got[0], c)
	}
}

func TestDrawListOrderedBreak(t *testing.T) {
	var l DrawList
	for range 5 {
		l.Add(newDot(0))
	}
	n := 0
	for range l.Ordered() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

func TestDrawListAll(t *testing.T) {
	var l DrawList
	l.Add(newDot(0))
	h := l.Add(newDot(0))
	l.Add(newDot(0))
	l.Erase(h)

	var seen []Handle
	for h := range l.All() {
		seen = append(seen, h)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Errorf("All() = %v, want [0 2]", seen)
	}
	if l.Len() != 3 || l.Live() != 2 {
		t.Errorf("Len=%d Live=%d, want 3 2", l.Len(), l.Live())
	}
}

func TestFailWraps(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrEmptySlot) {
			t.Errorf("recovered %v, want ErrEmptySlot", err)
		}
	}()
	var l DrawList
	h := l.Add(newDot(0))
	l.Erase(h)
	l.Get(h)
}

func TestDragCommitTranslates(t *testing.T) {
	d := newDot(2)
	d.DragStart(7)
	if d.OffsetZ != 5 || d.Layer() != 7 {
		t.Errorf("OffsetZ=%d Layer=%d, want 5 7", d.OffsetZ, d.Layer())
	}
	d.DragUpdate(2, 2)
	if d.Origin(V(10, 10)) != V(12, 12) {
		t.Errorf("Origin = %v, want (12,12)", d.Origin(V(10, 10)))
	}
	DragCommit(d, 3, 4)
	if d.P != V(3, 4) || d.Layer() != 2 || d.Offset != (Vec2{}) {
		t.Errorf("after commit P=%v Layer=%d Offset=%v", d.P, d.Layer(), d.Offset)
	}
}
