package utils

import (
	"errors"
	"fmt"
	"time"
)

const (
	// UTCTimestampLayout is the only accepted input layout: 24-hour clock, no zone, no fractions.
	UTCTimestampLayout = "2006-01-02 15:04:05"

	// ISTDisplayLayout renders a 12-hour clock with a literal IST suffix.
	ISTDisplayLayout = "Jan 02, 2006 03:04 PM IST"

	// istOffsetSeconds is UTC+05:30.
	istOffsetSeconds = (5*60 + 30) * 60
)

// ErrInvalidTimestamp indicates that a timestamp does not match UTCTimestampLayout.
var ErrInvalidTimestamp = errors.New("invalid UTC timestamp")

// IST is Indian Standard Time. It has no daylight-saving rules.
//
//nolint:gochecknoglobals // Immutable fixed zone.
var IST = time.FixedZone("IST", istOffsetSeconds)

// ParseUTCTimestamp parses a "YYYY-MM-DD HH:MM:SS" string as a UTC instant.
func ParseUTCTimestamp(timestamp string) (time.Time, error) {
	parsed, err := time.ParseInLocation(UTCTimestampLayout, timestamp, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidTimestamp, timestamp, err)
	}

	// time.Parse silently accepts fractional seconds after the seconds field.
	if parsed.Format(UTCTimestampLayout) != timestamp {
		return time.Time{}, fmt.Errorf("%w %q: unexpected trailing characters", ErrInvalidTimestamp, timestamp)
	}

	return parsed, nil
}

// ConvertUTCToIST converts a UTC timestamp string into its IST display form,
// e.g. "2023-12-13 19:00:00" becomes "Dec 14, 2023 12:30 AM IST".
func ConvertUTCToIST(timestamp string) (string, error) {
	parsed, err := ParseUTCTimestamp(timestamp)
	if err != nil {
		return "", err
	}

	return parsed.In(IST).Format(ISTDisplayLayout), nil
}
