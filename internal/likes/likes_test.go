package likes

import "testing"

func TestToggleParity(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 11} {
		r := NewRegistry()
		var last State
		for i := 0; i < n; i++ {
			last = r.Toggle("t1")
		}
		want := n % 2
		got := r.Get("t1")
		if got.Count != want || got.Liked != (want == 1) {
			t.Fatalf("after %d toggles: got %+v, want count=%d liked=%v", n, got, want, want == 1)
		}
		if n > 0 && last != got {
			t.Fatalf("Toggle return %+v disagrees with Get %+v", last, got)
		}
	}
}

func TestTweetsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Toggle("t1")
	if s := r.Get("t2"); s.Liked || s.Count != 0 {
		t.Fatalf("t2 state leaked: %+v", s)
	}
	r.Toggle("t2")
	r.Toggle("t1")
	if s := r.Get("t1"); s.Liked || s.Count != 0 {
		t.Fatalf("t1 should be back to zero: %+v", s)
	}
	if s := r.Get("t2"); !s.Liked || s.Count != 1 {
		t.Fatalf("t2 should stay liked: %+v", s)
	}
}
