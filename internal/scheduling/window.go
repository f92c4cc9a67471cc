package scheduling

import (
	"errors"
	"strings"
	"time"

	"healthnet-api/internal/domain/entity"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use 24-hour HH:mm")
	ErrWindowOrder       = errors.New("start_time must be before end_time")
	ErrUnknownDayOfWeek  = errors.New("unknown day of week")
)

// ParseClock parses a strict 24-hour "HH:mm" string into minutes since
// midnight. Single-digit hours and seconds suffixes are rejected.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CanonicalDay maps a day name to its canonical form (Monday..Sunday),
// case-insensitively. Returns false for unknown names.
func CanonicalDay(s string) (string, bool) {
	for _, day := range entity.DaysOfWeek {
		if strings.EqualFold(strings.TrimSpace(s), day) {
			return day, true
		}
	}
	return "", false
}

// ValidateWindow checks an availability window's shape: a known day of
// week and well-formed HH:mm times with start strictly before end.
func ValidateWindow(w entity.AvailabilityWindow) error {
	if _, ok := CanonicalDay(w.DayOfWeek); !ok {
		return ErrUnknownDayOfWeek
	}
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrWindowOrder
	}
	return nil
}

// Overlaps reports whether two valid windows on the same day of week
// share any minutes. Windows on different days never overlap.
func Overlaps(a, b entity.AvailabilityWindow) bool {
	if !strings.EqualFold(a.DayOfWeek, b.DayOfWeek) {
		return false
	}
	aStart, err := ParseClock(a.StartTime)
	if err != nil {
		return false
	}
	aEnd, err := ParseClock(a.EndTime)
	if err != nil {
		return false
	}
	bStart, err := ParseClock(b.StartTime)
	if err != nil {
		return false
	}
	bEnd, err := ParseClock(b.EndTime)
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}
