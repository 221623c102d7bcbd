package format

import (
	"math"
	"testing"
)

func TestCookies(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"small integer", 15, "15"},
		{"small decimal", 0.1, "0.1"},
		{"thousands grouped", 1234, "1,234"},
		{"hundreds of thousands", 999999, "999,999"},
		{"million", 1500000, "1.500 million"},
		{"billion", 2.5e9, "2.500 billion"},
		{"trillion", 1e12, "1.000 trillion"},
		{"quadrillion", 3.2e15, "3.200 quadrillion"},
		{"negative", -1234, "-1,234"},
		{"zero", 0, "0"},
		{"infinity", math.Inf(1), "infinity"},
		{"nan", math.NaN(), "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cookies(tt.in); got != tt.want {
				t.Errorf("Cookies(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"sub-second", 0.4, "<1s"},
		{"seconds", 42, "42s"},
		{"minutes", 150, "2m 30s"},
		{"hours", 3700, "1h 1m"},
		{"days", 90000, "1d 1h"},
		{"sentinel", math.Inf(1), "never"},
		{"nan", math.NaN(), "never"},
		{"negative", -5, "never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.in); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
