package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var te *TransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.from, te.From)
			assert.Equal(t, tt.to, te.To)
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseBookingStatus("in_progress")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func defaultHours() ShopHours {
	return ShopHours{
		{Day: "Monday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Tuesday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Wednesday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Thursday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Friday", Open: "08:00", Close: "17:00", IsOpen: true},
		{Day: "Saturday", Open: "09:00", Close: "15:00", IsOpen: true},
		{Day: "Sunday", Open: "00:00", Close: "00:00", IsOpen: false},
	}
}

func TestShopHours_Validate(t *testing.T) {
	assert.NoError(t, defaultHours().Validate())

	short := defaultHours()[:6]
	assert.ErrorIs(t, short.Validate(), ErrInvalidHours)

	dup := defaultHours()
	dup[6].Day = "Monday"
	assert.ErrorIs(t, dup.Validate(), ErrInvalidHours)

	unknown := defaultHours()
	unknown[0].Day = "Funday"
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidHours)

	inverted := defaultHours()
	inverted[0].Open, inverted[0].Close = "18:00", "08:00"
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidHours)

	closedGarbage := defaultHours()
	closedGarbage[6].Open = "whatever"
	assert.NoError(t, closedGarbage.Validate())
}

func TestShopHours_ForWeekday(t *testing.T) {
	h := defaultHours()

	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, h.IsOpenOn(monday))
	assert.False(t, h.IsOpenOn(sunday))
	assert.Equal(t, "Friday", h.ForWeekday(time.Friday).Day)
	assert.False(t, ShopHours{}.ForWeekday(time.Monday).IsOpen)
}

func TestAvailableSlots(t *testing.T) {
	slots := []BookingSlot{
		NewBookingSlot("2025-06-02", "09:00", "10:00", "1"),
		NewBookingSlot("2025-06-02", "10:00", "11:00", "1"),
		NewBookingSlot("2025-06-02", "09:00", "10:00", "2"),
		NewBookingSlot("2025-06-03", "09:00", "10:00", "1"),
	}
	slots[1].IsAvailable = false

	got := AvailableSlots(slots, "2025-06-02", "1")
	require.Len(t, got, 1)
	assert.Equal(t, SlotID{Date: "2025-06-02", TimeStart: "09:00", ServiceID: "1"}, got[0].ID)

	assert.Empty(t, AvailableSlots(slots, "2025-07-01", "1"))
	assert.NotNil(t, AvailableSlots(nil, "2025-07-01", "1"))
}

func TestSlotID_String(t *testing.T) {
	id := SlotID{Date: "2025-06-02", TimeStart: "10:00", ServiceID: "1"}
	assert.Equal(t, "2025-06-02-10:00-1", id.String())
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(time.Minute)))
}

func TestBookingFilter_Matches(t *testing.T) {
	b := Booking{CustomerName: "John Doe", VehicleMake: "Toyota", VehicleModel: "Camry", Status: StatusPending}
	confirmed := StatusConfirmed
	pending := StatusPending

	assert.True(t, BookingFilter{}.Matches(b))
	assert.True(t, BookingFilter{Search: "john"}.Matches(b))
	assert.True(t, BookingFilter{Search: "TOYO"}.Matches(b))
	assert.True(t, BookingFilter{Search: " camry "}.Matches(b))
	assert.False(t, BookingFilter{Search: "honda"}.Matches(b))
	assert.False(t, BookingFilter{Status: &confirmed}.Matches(b))
	assert.True(t, BookingFilter{Search: "doe", Status: &pending}.Matches(b))
}
