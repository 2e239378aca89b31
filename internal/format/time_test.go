package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 23, 18, 0, 0, 0, time.UTC)

func TestClock(t *testing.T) {
	tests := []struct {
		mode     string
		seconds  bool
		expected string
	}{
		{"24h", false, "15:04"},
		{"24h", true, "15:04:05"},
		{"12h", false, "3:04 PM"},
		{"12h", true, "3:04:05 PM"},
		{"", true, "15:04:05"},
		{"bogus", false, "15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			require.Equal(t, tt.expected, Clock(tt.mode, tt.seconds))
		})
	}
}

func TestStamp(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		mode     string
		expected string
	}{
		{
			name:     "same day",
			t:        time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC),
			mode:     "24h",
			expected: "15:04:05",
		},
		{
			name:     "same day 12h",
			t:        time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC),
			mode:     "12h",
			expected: "3:04:05 PM",
		},
		{
			name:     "same year",
			t:        time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
			mode:     "24h",
			expected: "Jan 02 09:30:00",
		},
		{
			name:     "other year",
			t:        time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			mode:     "24h",
			expected: "2023-12-31 23:59:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Stamp(tt.t, now, tt.mode))
		})
	}
}
