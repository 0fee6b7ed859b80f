package core

import (
	"math"
	"testing"
)

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}

	if got := EnsureLen(buf, 16); len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
}

func TestFillNaN(t *testing.T) {
	buf := []float64{1, 2, 3}
	Fill(buf, math.NaN())

	for i, v := range buf {
		if !math.IsNaN(v) {
			t.Fatalf("buf[%d] = %v, want NaN", i, v)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := []float64{1, 2}
	dst := Clone(src)
	dst[0] = 9

	if src[0] != 1 {
		t.Fatalf("src mutated: %v", src)
	}
	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should be nil")
	}
}
