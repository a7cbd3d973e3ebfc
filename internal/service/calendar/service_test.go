package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubSlots []domain.BookingSlot

func (s stubSlots) AvailableSlots(date, serviceID string) []domain.BookingSlot {
	return domain.AvailableSlots(s, date, serviceID)
}

type stubHours domain.ShopHours

func (h stubHours) GetHours() domain.ShopHours { return domain.ShopHours(h) }

func hours() stubHours {
	return stubHours{
		{Day: "Monday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Tuesday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Wednesday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Thursday", Open: "08:00", Close: "18:00", IsOpen: true},
		{Day: "Friday", Open: "08:00", Close: "17:00", IsOpen: true},
		{Day: "Saturday", Open: "09:00", Close: "15:00", IsOpen: true},
		{Day: "Sunday", Open: "00:00", Close: "00:00", IsOpen: false},
	}
}

// понедельник, 2 июня 2025
var now = time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

func newService(slots stubSlots, window int) *Service {
	return NewService(slots, hours(), window, logger.NewNop()).WithTimeProvider(fixedTime{now: now})
}

func TestDateAvailability(t *testing.T) {
	slots := stubSlots{
		domain.NewBookingSlot("2025-06-02", "09:00", "10:00", "1"),
		domain.NewBookingSlot("2025-06-04", "09:00", "10:00", "1"),
		domain.NewBookingSlot("2025-06-08", "09:00", "10:00", "1"), // воскресенье
		domain.NewBookingSlot("2025-06-03", "09:00", "10:00", "2"),
	}
	taken := domain.NewBookingSlot("2025-06-05", "09:00", "10:00", "1")
	taken.IsAvailable = false
	slots = append(slots, taken)

	got := newService(slots, 7).DateAvailability("1")

	assert.Len(t, got, 7)
	assert.True(t, got["2025-06-02"])
	assert.False(t, got["2025-06-03"])
	assert.True(t, got["2025-06-04"])
	assert.False(t, got["2025-06-05"])
	assert.False(t, got["2025-06-08"])
	_, outside := got["2025-06-09"]
	assert.False(t, outside)
}

func TestIsDateDisabled(t *testing.T) {
	svc := newService(nil, 30)
	availability := map[string]bool{
		"2025-06-01": true,
		"2025-06-02": true,
		"2025-06-03": false,
	}

	assert.True(t, svc.IsDateDisabled("2025-06-01", availability), "past dates are disabled")
	assert.False(t, svc.IsDateDisabled("2025-06-02", availability))
	assert.True(t, svc.IsDateDisabled("2025-06-03", availability))
	assert.False(t, svc.IsDateDisabled("2025-07-20", availability), "unknown future date stays enabled")
	assert.True(t, svc.IsDateDisabled("not-a-date", availability))
}

func TestCalendar(t *testing.T) {
	slots := stubSlots{domain.NewBookingSlot("2025-06-03", "09:00", "10:00", "1")}

	days := newService(slots, 3).Calendar("1")
	require.Len(t, days, 3)
	assert.Equal(t, DayAvailability{Date: "2025-06-02", Available: false, Disabled: true}, days[0])
	assert.Equal(t, DayAvailability{Date: "2025-06-03", Available: true, Disabled: false}, days[1])
	assert.Equal(t, "2025-06-04", days[2].Date)
}

func TestTimeSlots(t *testing.T) {
	slots := stubSlots{
		domain.NewBookingSlot("2025-06-02", "17:15", "18:15", "1"),
		domain.NewBookingSlot("2025-06-02", "09:30", "10:30", "1"),
		domain.NewBookingSlot("2025-06-02", "12:00", "13:00", "1"),
		domain.NewBookingSlot("2025-06-02", "00:00", "01:00", "1"),
	}

	got := newService(slots, 30).TimeSlots("2025-06-02", "1")
	require.Len(t, got, 4)

	labels := make([]string, 0, len(got))
	for _, s := range got {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"12:00 AM", "9:30 AM", "12:00 PM", "5:15 PM"}, labels)
	assert.Equal(t, "2025-06-02", got[1].SlotID.Date)

	assert.Empty(t, newService(slots, 30).TimeSlots("2025-06-03", "1"))
	assert.NotNil(t, newService(slots, 30).TimeSlots("2025-06-03", "1"))
}
