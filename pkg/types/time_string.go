package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const (
	minutesPerHour = 60
	// MaxMinutes is the last representable minute of a day (23:59).
	MaxMinutes = 23*minutesPerHour + 59

	// EndOfDay is the latest TimeString.
	EndOfDay TimeString = "23:59"
)

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM clock time.
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when arithmetic moves a TimeString past 23:59 or before 00:00.
	ErrTimeOverflow = errors.New("time string overflows the day")

	timeStringPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// TimeString is a zero-padded 24-hour clock time "HH:MM".
// Zero padding makes lexicographic order equal chronological order.
type TimeString string

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes converts minutes since midnight into a TimeString.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MaxMinutes {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// Validate checks the HH:MM format.
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight. Invalid values yield -1.
func (t TimeString) Minutes() int {
	if t.Validate() != nil {
		return -1
	}
	h, _ := strconv.Atoi(string(t[:2]))
	m, _ := strconv.Atoi(string(t[3:]))
	return h*minutesPerHour + m
}

// AddMinutes shifts the time. The result must stay within 00:00..23:59.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// Format12h renders the time on a 12-hour clock, e.g. "09:30" -> "9:30 AM", "00:00" -> "12:00 AM".
func (t TimeString) Format12h() string {
	if t.Validate() != nil {
		return string(t)
	}
	hour := t.Minutes() / minutesPerHour
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, string(t[3:]), suffix)
}
