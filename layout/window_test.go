package layout_test

import (
	"testing"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/layout"
	"github.com/gogpu/stateful/trace"
)

func TestStacksCanvases(t *testing.T) {
	w := layout.NewWindow("main", trace.New(200, 200), layout.WithOrigin(stateful.V(10, 10)), layout.WithSpacing(5))

	a := stateful.New(50, 20)
	a.RectFilled(stateful.V(0, 0), stateful.V(50, 20), stateful.White)
	b := stateful.New(30, 40)
	b.Circle(stateful.V(15, 20), 10, stateful.White)

	a.Draw(w, "a", true)
	b.Draw(w, "b", true)

	items := w.Items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if want := stateful.R(10, 10, 60, 30); items[0].BB != want {
		t.Errorf("a bb = %v, want %v", items[0].BB, want)
	}
	if want := stateful.R(10, 35, 40, 75); items[1].BB != want {
		t.Errorf("b bb = %v, want %v", items[1].BB, want)
	}
	if items[0].Label != "a" || items[1].Label != "b" {
		t.Errorf("labels = %q, %q", items[0].Label, items[1].Label)
	}
	if got, want := w.Cursor(), stateful.V(10, 80); got != want {
		t.Errorf("cursor = %v, want %v", got, want)
	}
	if got, want := w.ContentSize(), stateful.V(50, 65); got != want {
		t.Errorf("content = %v, want %v", got, want)
	}
}

func TestBeginResets(t *testing.T) {
	w := layout.NewWindow("main", trace.New(100, 100))
	c := stateful.New(10, 10)
	c.Line(stateful.V(0, 0), stateful.V(10, 10), stateful.White)

	for range 3 {
		w.Begin()
		c.Draw(w, "c", false)
	}
	if n := len(w.Items()); n != 1 {
		t.Errorf("items after three frames = %d, want 1", n)
	}
	if got := w.Items()[0].BB.Min; got != (stateful.Vec2{}) {
		t.Errorf("item min = %v, want origin", got)
	}
}

func TestSkip(t *testing.T) {
	s := trace.New(100, 100)
	w := layout.NewWindow("main", s)
	c := stateful.New(10, 10)
	c.Line(stateful.V(0, 0), stateful.V(10, 10), stateful.White)

	w.SetSkip(true)
	w.Begin()
	c.Draw(w, "c", true)
	if n := len(s.Commands()); n != 0 {
		t.Errorf("skipped window recorded %d commands", n)
	}
	if n := len(w.Items()); n != 0 {
		t.Errorf("skipped window registered %d items", n)
	}
}

func TestIDs(t *testing.T) {
	a := layout.NewWindow("a", nil)
	b := layout.NewWindow("b", nil)
	if a.ID("x") == b.ID("x") {
		t.Error("same label in different windows collided")
	}
	if a.ID("x") != a.ID("x") {
		t.Error("ID is not deterministic")
	}
	if a.ID("x") == a.ID("y") {
		t.Error("different labels collided")
	}
	if l, ok := a.Label(a.ID("plot")); !ok || l != "plot" {
		t.Errorf("Label = %q, %t", l, ok)
	}
	if _, ok := b.Label(a.ID("plot")); ok {
		t.Error("label leaked across windows")
	}
}

func TestBoundsClip(t *testing.T) {
	w := layout.NewWindow("main", nil, layout.WithBounds(stateful.R(0, 0, 100, 100)))
	if !w.ItemAdd(stateful.R(90, 90, 120, 120), w.ID("edge")) {
		t.Error("partially visible item reported clipped")
	}
	if w.ItemAdd(stateful.R(150, 0, 160, 10), w.ID("off")) {
		t.Error("offscreen item reported visible")
	}
	if n := len(w.Items()); n != 2 {
		t.Errorf("recorded %d items, want both", n)
	}

	unbounded := layout.NewWindow("free", nil)
	if !unbounded.ItemAdd(stateful.R(1e6, 1e6, 1e6+1, 1e6+1), 1) {
		t.Error("unbounded window clipped an item")
	}
}

func TestHitTest(t *testing.T) {
	w := layout.NewWindow("main", nil)
	under, over := w.ID("under"), w.ID("over")
	w.ItemAdd(stateful.R(0, 0, 50, 50), under)
	w.ItemAdd(stateful.R(25, 25, 75, 75), over)

	tests := []struct {
		p    stateful.Vec2
		want stateful.ID
		ok   bool
	}{
		{stateful.V(10, 10), under, true},
		{stateful.V(30, 30), over, true},
		{stateful.V(70, 70), over, true},
		{stateful.V(90, 90), 0, false},
	}
	for _, tt := range tests {
		got, ok := w.HitTest(tt.p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HitTest(%v) = %d, %t, want %d, %t", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSetCursorAndSpacing(t *testing.T) {
	w := layout.NewWindow("main", nil, layout.WithSpacing(-3))
	w.SetCursor(stateful.V(0, 100))
	w.ItemSize(stateful.V(10, 10))
	if got, want := w.Cursor(), stateful.V(0, 110); got != want {
		t.Errorf("cursor = %v, want %v (negative spacing clamps to 0)", got, want)
	}
}
