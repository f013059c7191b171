package workload

import (
	"slices"
	"testing"
)

func TestLen(t *testing.T) {
	tests := []struct {
		size uint64
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {7, 1}, {40, 10}, {400000, 100000},
	}
	for _, tt := range tests {
		if got := Len(tt.size); got != tt.want {
			t.Errorf("Len(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(4000, 0)
	b := Generate(4000, 0)
	if len(a) != 1000 {
		t.Fatalf("len(Generate(4000, 0)) = %d, want 1000", len(a))
	}
	if !slices.Equal(a, b) {
		t.Errorf("Generate is not deterministic for a fixed seed")
	}
	if slices.Equal(a, Generate(4000, 1)) {
		t.Errorf("Generate(4000, 0) and Generate(4000, 1) are identical")
	}
}

func TestFillNonNegative(t *testing.T) {
	data := make([]int32, 10000)
	Fill(data, 123)
	for i, v := range data {
		if v < 0 {
			t.Fatalf("data[%d] = %d, want non-negative", i, v)
		}
	}
}
