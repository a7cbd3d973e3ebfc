package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// ErrInvalidHours is returned when a ShopHours value breaks the one-entry-per-weekday rule
// or carries malformed times.
var ErrInvalidHours = errors.New("domain: invalid shop hours")

// Weekdays lists day names in the order the shop hours are stored (Monday first).
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// DayHours is the schedule of one weekday. Open and Close are ignored when IsOpen is false.
type DayHours struct {
	Day    string           `json:"day" yaml:"day"`
	Open   types.TimeString `json:"open" yaml:"open"`
	Close  types.TimeString `json:"close" yaml:"close"`
	IsOpen bool             `json:"isOpen" yaml:"isOpen"`
}

// ShopHours holds exactly seven entries, one per weekday.
type ShopHours []DayHours

// Validate checks that every weekday appears exactly once and open days have Open < Close.
func (h ShopHours) Validate() error {
	if len(h) != len(Weekdays) {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidHours, len(Weekdays), len(h))
	}

	seen := make(map[string]bool, len(Weekdays))
	for _, d := range h {
		if !isWeekday(d.Day) {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidHours, d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: duplicate day %q", ErrInvalidHours, d.Day)
		}
		seen[d.Day] = true

		if !d.IsOpen {
			continue
		}
		if err := d.Open.Validate(); err != nil {
			return fmt.Errorf("%w: %s open: %v", ErrInvalidHours, d.Day, err)
		}
		if err := d.Close.Validate(); err != nil {
			return fmt.Errorf("%w: %s close: %v", ErrInvalidHours, d.Day, err)
		}
		if !d.Open.IsBefore(d.Close) {
			return fmt.Errorf("%w: %s opens at %s but closes at %s", ErrInvalidHours, d.Day, d.Open, d.Close)
		}
	}

	return nil
}

// ForWeekday returns the schedule of the given weekday.
// A weekday missing from h is reported as closed.
func (h ShopHours) ForWeekday(weekday time.Weekday) DayHours {
	name := weekday.String()
	for _, d := range h {
		if d.Day == name {
			return d
		}
	}
	return DayHours{Day: name, IsOpen: false}
}

// IsOpenOn reports whether the shop works on the weekday of date.
func (h ShopHours) IsOpenOn(date time.Time) bool {
	return h.ForWeekday(date.Weekday()).IsOpen
}

func isWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// ShopProfile is the public description of the shop.
type ShopProfile struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Address     string        `json:"address" yaml:"address"`
	Phone       string        `json:"phone" yaml:"phone"`
	Email       string        `json:"email" yaml:"email"`
	Images      []string      `json:"images" yaml:"images"`
	Owner       Owner         `json:"owner" yaml:"owner"`
	Staff       []StaffMember `json:"staff" yaml:"staff"`
}

type Owner struct {
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Bio      string `json:"bio" yaml:"bio"`
	Image    string `json:"image" yaml:"image"`
}

type StaffMember struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Image    string `json:"image" yaml:"image"`
}
