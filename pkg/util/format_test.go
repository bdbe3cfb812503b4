package util

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5_000_000, "$5,000,000.00"},
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{math.NaN(), "N/A"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(8.5); got != "8.50%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercentage(-2.345); got != "-2.35%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercentage(math.Inf(1)); got != "N/A" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatRiskScore(t *testing.T) {
	if got := FormatRiskScore(4.25); got != "4.2/10" {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateMessage(t *testing.T) {
	if got := TruncateMessage("short", 4000); got != "short" {
		t.Fatalf("got %q", got)
	}
	long := make([]byte, 0, 5000)
	for i := 0; i < 5000; i++ {
		long = append(long, 'x')
	}
	got := TruncateMessage(string(long), 4000)
	if len(got) != 4000 {
		t.Fatalf("len = %d, want 4000", len(got))
	}
	if got[3997:] != "..." {
		t.Fatalf("expected ellipsis suffix, got %q", got[3997:])
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(0); got != "N/A" {
		t.Fatalf("got %q", got)
	}
	if got := FormatTimestamp(1700000000); got != "2023-11-14 22:13:20" {
		t.Fatalf("got %q", got)
	}
}
