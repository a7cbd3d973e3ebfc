package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every known status.
var AllStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// ErrInvalidTransition is matched by every TransitionError.
var ErrInvalidTransition = errors.New("domain: invalid booking status transition")

// ErrUnknownStatus is returned when parsing an unsupported status value.
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// TransitionError describes a rejected status change.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBookingStatus validates a raw status value.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError when the move is not allowed.
func CheckTransition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no further transitions exist.
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Customer holds the contact data entered on the booking form.
type Customer struct {
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
	Phone string `json:"customerPhone"`
}

// Vehicle describes the car brought in for service.
type Vehicle struct {
	Make  string `json:"vehicleMake"`
	Model string `json:"vehicleModel"`
	Year  string `json:"vehicleYear"`
}

// BookingData is what a customer submits to reserve a slot.
type BookingData struct {
	SlotID          SlotID
	ServiceID       string
	Customer        Customer
	Vehicle         Vehicle
	AdditionalNotes *string
}

// Booking is a customer reservation of a slot.
type Booking struct {
	ID              string        `json:"id"`
	SlotID          SlotID        `json:"slotId"`
	ServiceID       string        `json:"serviceId"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	VehicleMake     string        `json:"vehicleMake"`
	VehicleModel    string        `json:"vehicleModel"`
	VehicleYear     string        `json:"vehicleYear"`
	AdditionalNotes *string       `json:"additionalNotes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// IsActive returns true while the booking holds its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BookingFilter narrows the admin booking list.
// Search matches customer name, vehicle make and model case-insensitively.
type BookingFilter struct {
	Search string
	Status *BookingStatus
}

// Matches reports whether b passes the filter. An empty filter matches everything.
func (f BookingFilter) Matches(b Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerName), q) ||
		strings.Contains(strings.ToLower(b.VehicleMake), q) ||
		strings.Contains(strings.ToLower(b.VehicleModel), q)
}

// DashboardStats summarises the ledger for the admin dashboard.
type DashboardStats struct {
	TotalBookings     int
	PendingBookings   int
	ConfirmedBookings int
	CompletedBookings int
	CancelledBookings int
	BookingsByService map[string]int
	TodayBookings     []Booking
}
