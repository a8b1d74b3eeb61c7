package slots

import "testing"

func TestAddAppends(t *testing.T) {
	var l List[string]
	for want, v := range []string{"a", "b", "c"} {
		if got := l.Add(v); got != want {
			t.Errorf("Add(%q) = %d, want %d", v, got, want)
		}
	}
	if l.Len() != 3 || l.Live() != 3 {
		t.Errorf("Len/Live = %d/%d, want 3/3", l.Len(), l.Live())
	}
}

func TestRemoveReusesLowestSlot(t *testing.T) {
	var l List[int]
	for i := 0; i < 4; i++ {
		l.Add(i * 10)
	}
	if _, ok := l.Remove(2); !ok {
		t.Fatal("Remove(2) failed")
	}
	if _, ok := l.Remove(1); !ok {
		t.Fatal("Remove(1) failed")
	}
	if got := l.Add(99); got != 1 {
		t.Errorf("Add after removals = %d, want 1", got)
	}
	if got := l.Add(98); got != 2 {
		t.Errorf("second Add = %d, want 2", got)
	}
	if got := l.Add(97); got != 4 {
		t.Errorf("third Add = %d, want 4", got)
	}
	if v, _ := l.Get(3); v != 30 {
		t.Errorf("Get(3) = %d, want 30 (untouched slot)", v)
	}
}

func TestRemoveInvalid(t *testing.T) {
	var l List[int]
	l.Add(1)
	tests := []int{-1, 1, 5}
	for _, i := range tests {
		if _, ok := l.Remove(i); ok {
			t.Errorf("Remove(%d) ok = true, want false", i)
		}
	}
	l.Remove(0)
	if _, ok := l.Remove(0); ok {
		t.Error("second Remove(0) ok = true, want false")
	}
	if l.Live() != 0 {
		t.Errorf("Live = %d, want 0", l.Live())
	}
}

func TestGet(t *testing.T) {
	var l List[string]
	i := l.Add("x")
	if v, ok := l.Get(i); !ok || v != "x" {
		t.Errorf("Get(%d) = %q, %v; want x, true", i, v, ok)
	}
	if _, ok := l.Get(i + 1); ok {
		t.Error("Get past end ok = true")
	}
	l.Remove(i)
	if l.Valid(i) {
		t.Error("Valid after Remove = true")
	}
}

func TestClear(t *testing.T) {
	var l List[int]
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Clear on empty: Len = %d", l.Len())
	}
	l.Add(1)
	l.Add(2)
	l.Clear()
	l.Clear()
	if l.Len() != 0 || l.Live() != 0 {
		t.Errorf("after Clear Len/Live = %d/%d, want 0/0", l.Len(), l.Live())
	}
	if got := l.Add(3); got != 0 {
		t.Errorf("Add after Clear = %d, want 0", got)
	}
}

func TestAllSkipsFree(t *testing.T) {
	var l List[int]
	for i := 0; i < 5; i++ {
		l.Add(i)
	}
	l.Remove(1)
	l.Remove(3)

	var got []int
	for i, v := range l.All() {
		if i != v {
			t.Errorf("All yielded (%d, %d), want matching index", i, v)
		}
		got = append(got, i)
	}
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("All yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAllBreak(t *testing.T) {
	var l List[int]
	l.Add(1)
	l.Add(2)
	n := 0
	for range l.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations = %d, want 1", n)
	}
}
