package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, 20, 30, 40)

	if b.Left() != 10 || b.Right() != 40 {
		t.Errorf("horizontal edges = (%v, %v), expected (10, 40)", b.Left(), b.Right())
	}
	if b.Top() != 20 || b.Bottom() != 60 {
		t.Errorf("vertical edges = (%v, %v), expected (20, 60)", b.Top(), b.Bottom())
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 1, 1), true},
		{"touching edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 20, 10, 10), false},
		{"contained", NewBox(0, 0, 100, 100), NewBox(40, 40, 2, 2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
