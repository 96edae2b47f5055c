package services

import (
	"math"
	"testing"
)

func TestValidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  bool
	}{
		{"free giveaway", 0, true},
		{"regular price", 12.50, true},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validPrice(tt.price); got != tt.want {
				t.Errorf("validPrice(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
