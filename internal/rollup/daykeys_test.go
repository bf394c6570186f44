package rollup

import (
	"testing"
	"time"
)

func TestNewKeys_UTCCalendarArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		ref   time.Time
		today string
		day7  string
		day30 string
	}{
		{
			name:  "month boundary",
			ref:   time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC),
			today: "20260301",
			day7:  "20260222",
			day30: "20260130",
		},
		{
			name:  "leap year february",
			ref:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			today: "20240301",
			day7:  "20240223",
			day30: "20240131",
		},
		{
			name:  "year boundary",
			ref:   time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC),
			today: "20260105",
			day7:  "20251229",
			day30: "20251206",
		},
		{
			name:  "non-UTC instant normalized to UTC",
			ref:   time.Date(2026, 3, 1, 5, 30, 0, 0, time.FixedZone("KST", 9*3600)),
			today: "20260228",
			day7:  "20260221",
			day30: "20260129",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := NewKeys(tt.ref)
			if keys.Today != tt.today {
				t.Errorf("Today = %s, want %s", keys.Today, tt.today)
			}
			if keys.Day7 != tt.day7 {
				t.Errorf("Day7 = %s, want %s", keys.Day7, tt.day7)
			}
			if keys.Day30 != tt.day30 {
				t.Errorf("Day30 = %s, want %s", keys.Day30, tt.day30)
			}
		})
	}
}

func TestNewKeys_StableForFixedInstant(t *testing.T) {
	ref := time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)

	first := NewKeys(ref)
	for i := 0; i < 100; i++ {
		if got := NewKeys(ref); got != first {
			t.Fatalf("keys not stable: %+v != %+v", got, first)
		}
	}
}
