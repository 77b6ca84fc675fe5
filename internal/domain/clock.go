package domain

import (
	"fmt"
	"time"
)

// nbsp frames each clock field on the display.
const nbsp = "\u00a0"

// Clock is the HH:MM:SS breakdown shown on the display.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// ClockFromRemaining derives the display clock from a remaining duration.
// Sub-second remainders are truncated and hours wrap at 24.
func ClockFromRemaining(remaining time.Duration) Clock {
	if remaining < 0 {
		remaining = 0
	}
	totalSeconds := int64(remaining / time.Second)
	return Clock{
		Hours:   int((totalSeconds / 3600) % 24),
		Minutes: int((totalSeconds % 3600) / 60),
		Seconds: int(totalSeconds % 60),
	}
}

// String returns the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%s:%s:%s", FormatTwoDigits(c.Hours), FormatTwoDigits(c.Minutes), FormatTwoDigits(c.Seconds))
}

// Padded returns the three fields framed by non-breaking spaces.
func (c Clock) Padded() [3]string {
	return [3]string{
		nbsp + FormatTwoDigits(c.Hours) + nbsp,
		nbsp + FormatTwoDigits(c.Minutes) + nbsp,
		nbsp + FormatTwoDigits(c.Seconds) + nbsp,
	}
}

// FormatTwoDigits zero-pads n to two digits. Negative values format as "00".
func FormatTwoDigits(n int) string {
	if n < 0 {
		return "00"
	}
	return fmt.Sprintf("%02d", n)
}
