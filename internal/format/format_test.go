package format

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.500"},
		{0.842, "0.842"},
		{0.84249, "0.842"},
		{1, "1.000"},
		{0, "0.000"},
	}
	for _, tt := range tests {
		if got := Score(tt.in); got != tt.want {
			t.Errorf("Score(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3.0"},
		{412.345, "412.3"},
		{0, "0.0"},
	}
	for _, tt := range tests {
		if got := Average(tt.in); got != tt.want {
			t.Errorf("Average(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
