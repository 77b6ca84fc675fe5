package domain

import (
	"testing"
	"time"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"0", 0},
		{"7", 7},
		{"  42 ", 42},
		{"12abc", 12},
		{"1.9", 1},
		{"+5", 5},
		{"-3", 0},
		{"abc", 0},
		{"-", 0},
		{"99999999999999999999", maxField},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseField(tt.input); got != tt.want {
				t.Errorf("ParseField(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDurationFromFields(t *testing.T) {
	tests := []struct {
		name    string
		h, m, s int
		want    time.Duration
	}{
		{"zero", 0, 0, 0, 0},
		{"seconds", 0, 0, 2, 2 * time.Second},
		{"mixed", 1, 2, 3, time.Hour + 2*time.Minute + 3*time.Second},
		{"unclamped minutes", 0, 90, 0, 90 * time.Minute},
		{"unclamped seconds", 0, 0, 75, 75 * time.Second},
		{"hours beyond a day", 25, 0, 0, 25 * time.Hour},
		{"negative counts as zero", -1, 1, -1, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationFromFields(tt.h, tt.m, tt.s); got != tt.want {
				t.Errorf("DurationFromFields(%d, %d, %d) = %v, want %v", tt.h, tt.m, tt.s, got, tt.want)
			}
		})
	}
}

func TestDurationFromFields_Saturates(t *testing.T) {
	got := DurationFromFields(maxField, maxField, maxField)
	if got <= 0 {
		t.Fatalf("DurationFromFields() overflowed to %v", got)
	}
	if got != time.Duration(maxSeconds)*time.Second {
		t.Errorf("DurationFromFields() = %v, want the saturated maximum", got)
	}
}

func TestDurationFields_Duration(t *testing.T) {
	f := DurationFields{Hours: "", Minutes: "x", Seconds: "30"}
	if got := f.Duration(); got != 30*time.Second {
		t.Errorf("Duration() = %v, want 30s", got)
	}
}

func TestFieldsFromDuration(t *testing.T) {
	f := FieldsFromDuration(26*time.Hour + 5*time.Minute + 9*time.Second)
	if f.Hours != "26" || f.Minutes != "5" || f.Seconds != "9" {
		t.Errorf("FieldsFromDuration() = %+v", f)
	}

	if f := FieldsFromDuration(-time.Second); f.Hours != "0" || f.Seconds != "0" {
		t.Errorf("FieldsFromDuration(negative) = %+v, want zeros", f)
	}
}
