package domain

import (
	"fmt"

	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// SlotID is the natural key of a booking slot.
// It is comparable and used directly as a map key.
type SlotID struct {
	Date      string           `json:"date"`
	TimeStart types.TimeString `json:"timeStart"`
	ServiceID string           `json:"serviceId"`
}

// String renders the key as date-time-service for logs and spreadsheets.
func (id SlotID) String() string {
	return fmt.Sprintf("%s-%s-%s", id.Date, id.TimeStart, id.ServiceID)
}

// BookingSlot is a bookable time window for one service on one date.
type BookingSlot struct {
	ID          SlotID           `json:"id"`
	Date        string           `json:"date"`
	TimeStart   types.TimeString `json:"timeStart"`
	TimeEnd     types.TimeString `json:"timeEnd"`
	ServiceID   string           `json:"serviceId"`
	IsAvailable bool             `json:"isAvailable"`
}

// NewBookingSlot builds an available slot whose ID is derived from its fields.
func NewBookingSlot(date string, start, end types.TimeString, serviceID string) BookingSlot {
	return BookingSlot{
		ID:          SlotID{Date: date, TimeStart: start, ServiceID: serviceID},
		Date:        date,
		TimeStart:   start,
		TimeEnd:     end,
		ServiceID:   serviceID,
		IsAvailable: true,
	}
}

// AvailableSlots returns the slots of the given date and service that are still open.
// Order follows the input.
func AvailableSlots(slots []BookingSlot, date, serviceID string) []BookingSlot {
	result := make([]BookingSlot, 0)
	for _, s := range slots {
		if s.Date == date && s.ServiceID == serviceID && s.IsAvailable {
			result = append(result, s)
		}
	}
	return result
}
