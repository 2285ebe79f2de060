package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(1<<20, 8); !ok || p != 8<<20 {
		t.Fatalf("MulOverflowSafe(1<<20,8)=%d,%v", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero operand should never overflow")
	}
	if _, ok := MulOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected overflow for MinInt * -1")
	}
}

func TestCheckIndexAndPosition(t *testing.T) {
	if err := CheckIndex(0, 1); err != nil {
		t.Fatalf("CheckIndex(0,1): %v", err)
	}
	if CheckIndex(1, 1) == nil {
		t.Fatalf("CheckIndex(1,1) should fail")
	}
	if CheckIndex(-1, 5) == nil {
		t.Fatalf("CheckIndex(-1,5) should fail")
	}
	if err := CheckPosition(3, 3); err != nil {
		t.Fatalf("CheckPosition(3,3): %v", err)
	}
	if CheckPosition(4, 3) == nil {
		t.Fatalf("CheckPosition(4,3) should fail")
	}
}

func TestCheckSpan(t *testing.T) {
	cases := []struct {
		first, last, n int
		ok             bool
	}{
		{0, 0, 0, true},
		{0, 5, 5, true},
		{2, 2, 5, true},
		{3, 2, 5, false},
		{-1, 2, 5, false},
		{0, 6, 5, false},
	}
	for _, c := range cases {
		err := CheckSpan(c.first, c.last, c.n)
		if (err == nil) != c.ok {
			t.Fatalf("CheckSpan(%d,%d,%d) err=%v, want ok=%v", c.first, c.last, c.n, err, c.ok)
		}
	}
}

func TestBlockBytes(t *testing.T) {
	if b, ok := BlockBytes(4, 8); !ok || b != 32 {
		t.Fatalf("BlockBytes(4,8)=%d,%v", b, ok)
	}
	if _, ok := BlockBytes(-1, 8); ok {
		t.Fatalf("negative count should be rejected")
	}
	if _, ok := BlockBytes(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow")
	}
}
