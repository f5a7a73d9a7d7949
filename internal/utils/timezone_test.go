package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvertUTCToIST tests the ConvertUTCToIST function.
func TestConvertUTCToIST(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "morning without rollover",
			input:    "2023-12-13 07:06:16",
			expected: "Dec 13, 2023 12:36 PM IST",
		},
		{
			name:     "midnight UTC",
			input:    "2023-12-13 00:00:00",
			expected: "Dec 13, 2023 05:30 AM IST",
		},
		{
			name:     "rollover to next day",
			input:    "2023-12-13 19:00:00",
			expected: "Dec 14, 2023 12:30 AM IST",
		},
		{
			name:     "noon IST",
			input:    "2023-12-13 06:30:00",
			expected: "Dec 13, 2023 12:00 PM IST",
		},
		{
			name:     "last minute before IST midnight",
			input:    "2023-12-13 18:29:59",
			expected: "Dec 13, 2023 11:59 PM IST",
		},
		{
			name:     "rollover across year end",
			input:    "2023-12-31 20:15:00",
			expected: "Jan 01, 2024 01:45 AM IST",
		},
		{
			name:     "rollover into leap day",
			input:    "2024-02-28 23:00:00",
			expected: "Feb 29, 2024 04:30 AM IST",
		},
		{
			name:     "seconds are dropped, not rounded",
			input:    "2023-06-01 01:02:59",
			expected: "Jun 01, 2023 06:32 AM IST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ConvertUTCToIST(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestConvertUTCToIST_Invalid tests that malformed timestamps are rejected.
func TestConvertUTCToIST_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong separators", input: "2023/12/13 07:06:16"},
		{name: "empty string", input: ""},
		{name: "fractional seconds", input: "2023-12-13 07:06:16.500"},
		{name: "zone suffix", input: "2023-12-13 07:06:16Z"},
		{name: "ISO T separator", input: "2023-12-13T07:06:16"},
		{name: "invalid day", input: "2023-02-30 07:06:16"},
		{name: "invalid hour", input: "2023-12-13 24:00:00"},
		{name: "missing seconds", input: "2023-12-13 07:06"},
		{name: "single digit month", input: "2023-1-13 07:06:16"},
		{name: "leading space", input: " 2023-12-13 07:06:16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ConvertUTCToIST(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimestamp)
			assert.Empty(t, result)
		})
	}
}

// TestConvertUTCToIST_Deterministic tests that repeated calls agree.
func TestConvertUTCToIST_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := ConvertUTCToIST("2024-03-10 12:00:00")
	require.NoError(t, err)

	second, err := ConvertUTCToIST("2024-03-10 12:00:00")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestParseUTCTimestamp tests that parsed values are UTC instants.
func TestParseUTCTimestamp(t *testing.T) {
	t.Parallel()

	parsed, err := ParseUTCTimestamp("2023-12-13 19:00:00")
	require.NoError(t, err)

	name, offset := parsed.Zone()
	assert.Equal(t, "UTC", name)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 19, parsed.Hour())
}

// TestIST tests the fixed IST zone.
func TestIST(t *testing.T) {
	t.Parallel()

	parsed, err := ParseUTCTimestamp("2023-07-01 00:00:00")
	require.NoError(t, err)

	name, offset := parsed.In(IST).Zone()
	assert.Equal(t, "IST", name)
	assert.Equal(t, 19800, offset)
}
