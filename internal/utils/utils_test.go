package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"150", "150", true},
		{"150.5", "150.5", true},
		{" 0.01 ", "0.01", true},
		{"-20.75", "-20.75", true},
		{"", "", false},
		{"12,34", "", false},
		{"1.2.3", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(decimal.RequireFromString("12.5"), "EUR"); got != "12.50 EUR" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := FormatMoney(decimal.RequireFromString("-3"), ""); got != "-3.00" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-31", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"2024-03-31 08:15:00", time.Date(2024, 3, 31, 8, 15, 0, 0, time.UTC)},
		{"2024-03-31T08:15:00.123456", time.Date(2024, 3, 31, 8, 15, 0, 123456000, time.UTC)},
		{"2024-03-31T08:15:00Z", time.Date(2024, 3, 31, 8, 15, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if err != nil || !got.Equal(tc.want) {
			t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
		}
	}

	for _, bad := range []string{"", "31/03/2024", "2024-02-30", "tomorrow"} {
		if _, err := ParseTimestamp(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestToDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	got := ToDate(time.Date(2024, 12, 31, 23, 30, 0, 0, loc))
	if FormatDate(got) != "2024-12-31" {
		t.Fatalf("expected the local calendar date, got %s", FormatDate(got))
	}
}
