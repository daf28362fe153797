package randutil

import "testing"

func TestSeededSequenceIsRepeatable(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		x, y := a.Intn(4), b.Intn(4)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x < 0 || x >= 4 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}
