package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DurationFields holds the raw text of the three duration inputs.
// Minutes and seconds are conventionally 0-59 but are not clamped:
// "90" seconds is a valid input meaning one and a half minutes.
type DurationFields struct {
	Hours   string
	Minutes string
	Seconds string
}

// FieldsFromDuration renders d back into input fields.
func FieldsFromDuration(d time.Duration) DurationFields {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return DurationFields{
		Hours:   strconv.FormatInt(total/3600, 10),
		Minutes: strconv.FormatInt((total%3600)/60, 10),
		Seconds: strconv.FormatInt(total%60, 10),
	}
}

// Duration derives the total countdown length from the fields.
func (f DurationFields) Duration() time.Duration {
	return DurationFromFields(ParseField(f.Hours), ParseField(f.Minutes), ParseField(f.Seconds))
}

// DurationFromFields converts hours, minutes and seconds to a duration.
// Negative components count as zero. Hours are unbounded.
func DurationFromFields(hours, minutes, seconds int) time.Duration {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	total := int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
	if total > maxSeconds {
		total = maxSeconds
	}
	return time.Duration(total) * time.Second
}

const (
	// maxField caps a parsed field.
	maxField = 1 << 31
	// maxSeconds is the longest countdown a time.Duration can hold.
	maxSeconds = int64(math.MaxInt64 / int64(time.Second))
)

// ParseField reads the leading integer of s. Surrounding whitespace is
// ignored, trailing garbage is dropped ("12abc" is 12), and anything
// without a leading number or with a negative value yields 0.
func ParseField(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n <= maxField/10 {
			n = n*10 + int(r-'0')
		} else {
			n = maxField
		}
		digits++
	}

	if digits == 0 || negative {
		return 0
	}
	return n
}
