package stateful

import "testing"

func TestRectNormalize(t *testing.T) {
	r := R(10, 20, 0, 5)
	if r.Min != V(0, 5) || r.Max != V(10, 20) {
		t.Errorf("R normalized to %v", r)
	}
	if r.Size() != V(10, 15) {
		t.Errorf("Size() = %v", r.Size())
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", R(0, 0, 10, 10), R(5, 5, 20, 20), R(5, 5, 10, 10)},
		{"inside", R(0, 0, 10, 10), R(2, 2, 3, 3), R(2, 2, 3, 3)},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 30, 30), Rect{}},
		{"touching", R(0, 0, 10, 10), R(10, 0, 20, 10), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	if !r.Contains(V(0, 0)) || r.Contains(V(10, 5)) {
		t.Error("Contains should include Min and exclude Max")
	}
	if got := r.Translate(V(1, 2)); got != R(1, 2, 11, 12) {
		t.Errorf("Translate = %v", got)
	}
}

func TestCorners(t *testing.T) {
	if !CornersAll.Has(CornersTop) || CornersTop.Has(CornerBottomLeft) {
		t.Error("corner flag sets wrong")
	}
	if CornersLeft|CornersRight != CornersAll {
		t.Error("left|right != all")
	}
}
