package Go_Utils

import "testing"

func TestBitArray(t *testing.T) {
	B := New(70)
	if B.Len() < 70 {
		t.Fatalf("holds %d bits, want at least 70", B.Len())
	}
	for _, i := range []int{0, 63, 64, 69} {
		if B.Swap(i) {
			t.Errorf("bit %d was up", i)
		}
		if !B.Swap(i) || !B.Get(i) {
			t.Errorf("bit %d isn't up", i)
		}
	}
	if B.Count() != 4 {
		t.Errorf("%d bits up, want 4", B.Count())
	}
	B.Down(63)
	if B.Get(63) || B.Count() != 3 {
		t.Error("bit 63 is still up")
	}
	B.Up(1)
	if !B.Get(1) {
		t.Error("bit 1 isn't up")
	}
}
