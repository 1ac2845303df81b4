package parser

import "testing"

func TestBoundsRangeRef(t *testing.T) {
	tests := []struct {
		name     string
		cells    [][2]int // row, col
		expected string
	}{
		{"none", nil, ""},
		{"single", [][2]int{{1, 1}}, "A1:A1"},
		{"box", [][2]int{{2, 3}, {5, 1}, {3, 4}}, "A2:D5"},
		{"wide", [][2]int{{1, 27}, {10, 2}}, "B1:AA10"},
	}

	for _, tt := range tests {
		var b bounds
		for _, c := range tt.cells {
			b.add(c[0], c[1])
		}
		result, err := b.rangeRef()
		if err != nil {
			t.Errorf("%s: rangeRef failed: %v", tt.name, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("%s: rangeRef() = %q, expected %q", tt.name, result, tt.expected)
		}
	}
}
