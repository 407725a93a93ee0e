package lightbox

import "testing"

func TestState_OpenWrapsAndNavigates(t *testing.T) {
	s := New(3).OpenAt(4)
	if !s.Open || s.Current != 1 {
		t.Fatalf("unexpected state: %+v", s)
	}

	s = s.Next().Next()
	if s.Current != 0 {
		t.Fatalf("next should wrap to 0, got %d", s.Current)
	}
	s = s.Previous()
	if s.Current != 2 || s.Position() != 3 {
		t.Fatalf("previous should wrap to 2, got %d", s.Current)
	}
}

func TestState_Dispatch(t *testing.T) {
	s := New(5).OpenAt(0)

	steps := []struct {
		in      Input
		current int
		open    bool
	}{
		{KeyArrowRight, 1, true},
		{SwipeLeft, 2, true},
		{KeyArrowLeft, 1, true},
		{SwipeRight, 0, true},
		{ButtonPrev, 4, true},
		{"Enter", 4, true},
		{KeyEscape, 4, false},
		{KeyArrowRight, 4, false}, // cerrado: ignora
	}
	for i, st := range steps {
		s = s.Dispatch(st.in)
		if s.Current != st.current || s.Open != st.open {
			t.Fatalf("step %d (%s): got %+v", i, st.in, s)
		}
	}
}

func TestState_Empty(t *testing.T) {
	s := New(0).OpenAt(3).Next()
	if s.Open || s.Current != 0 {
		t.Fatalf("empty gallery should stay closed: %+v", s)
	}
	if New(-1).Count != 0 {
		t.Fatal("negative count should clamp to 0")
	}
}

func TestSwipeInput(t *testing.T) {
	if in, ok := SwipeInput(80); !ok || in != SwipeRight {
		t.Fatalf("dx=80: %v %v", in, ok)
	}
	if in, ok := SwipeInput(-51); !ok || in != SwipeLeft {
		t.Fatalf("dx=-51: %v %v", in, ok)
	}
	if _, ok := SwipeInput(50); ok {
		t.Fatal("dx=50 is below threshold")
	}
}
