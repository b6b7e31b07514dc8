package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected int64
	}{
		{"positive number", 5, 5},
		{"negative number", -5, 5},
		{"zero", 0, 0},
		{"large negative", -1000000, 1000000},
		{"int32 min", math.MinInt32, -math.MinInt32},
		{"int64 min plus one", math.MinInt64 + 1, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int64
	}{
		{"exact positive", 6, 3, 2},
		{"positive remainder", 7, 3, 2},
		{"zero", 0, 3, 0},
		{"exact negative", -6, 3, -2},
		{"negative remainder", -7, 3, -3},
		{"minus one", -1, 3, -1},
		{"small positive", 2, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloorDiv(tt.a, tt.b))
		})
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int64
	}{
		{"positive", 7, 3, 1},
		{"exact", 9, 3, 0},
		{"zero", 0, 3, 0},
		{"minus one", -1, 3, 2},
		{"minus two", -2, 3, 1},
		{"minus three", -3, 3, 0},
		{"large negative", -3000000001, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloorMod(tt.a, tt.b))
		})
	}
}

func TestFloorDivModConsistency(t *testing.T) {
	// a == b*FloorDiv(a, b) + FloorMod(a, b) with 0 <= FloorMod < b
	for a := int64(-50); a <= 50; a++ {
		for _, b := range []int64{1, 2, 3, 9} {
			q, m := FloorDiv(a, b), FloorMod(a, b)
			assert.Equal(t, a, b*q+m, "a=%d b=%d", a, b)
			assert.GreaterOrEqual(t, m, int64(0))
			assert.Less(t, m, b)
		}
	}
}

func BenchmarkFloorDiv(b *testing.B) {
	values := []int64{-5, 5, -100, 100, 0}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FloorDiv(values[i%len(values)], 3)
	}
}
