package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetersValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"120 mts", 120},
		{"0 mts", 0},
		{"30", 30},
		{"", 0},
		{"sin datos", 0},
		{"1.200 mts", 1200}, // thousands separator collapses into digits
		{"  45m  ", 45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MetersValue(tt.in), "MetersValue(%q)", tt.in)
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{30, 120, 25},
		{0, 100, 0},
		{100, 100, 100},
		{150, 100, 100}, // clamped
		{1, 3, 33},
		{2, 3, 67}, // rounds, not truncates
		{10, 0, 0}, // no total -> zero, never a division
		{5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressPercent(tt.completed, tt.total),
			"ProgressPercent(%d, %d)", tt.completed, tt.total)
	}
}

func TestTaskProgress(t *testing.T) {
	tk := Task{Completed: "30 mts", Quantity: "120 mts"}
	assert.Equal(t, 25, tk.Progress())

	// Missing quantity maps to the "0 mts" default upstream; percent
	// stays at zero rather than erroring.
	tk = Task{Completed: "30 mts", Quantity: DefaultQuantity}
	assert.Equal(t, 0, tk.Progress())
}
