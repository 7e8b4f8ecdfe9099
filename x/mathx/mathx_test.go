package mathx

import "testing"

func TestClampMinMax(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 {
		t.Fatal("clamp low failed")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Fatal("clamp high failed")
	}
	if Clamp(7, 10, 0) != 7 {
		t.Fatal("clamp with swapped bounds failed")
	}
	if Min(3, 4) != 3 || Max(3, 4) != 4 {
		t.Fatal("Min/Max failed")
	}
}

func TestMaxOf(t *testing.T) {
	if MaxOf[uint8]() != 0xff || MaxOf[uint32]() != 0xffffffff || MaxOf[uint64]() != ^uint64(0) {
		t.Fatal("MaxOf returned the wrong bound")
	}
}

func TestCeilDiv(t *testing.T) {
	type C struct{ a, b, want int }
	for _, c := range []C{
		{0, 16, 0}, {1, 16, 1}, {16, 16, 1}, {17, 16, 2}, {33, 16, 3}, {5, 0, 0},
	} {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
