package calendar

import "github.com/m04kA/SPAuto-BookingService/internal/domain"

// TimeSlot свободный слот с подписью в 12-часовом формате
type TimeSlot struct {
	SlotID    domain.SlotID `json:"slotId"`
	TimeStart string        `json:"timeStart"`
	TimeEnd   string        `json:"timeEnd"`
	Label     string        `json:"label"` // "9:30 AM"
}

// DayAvailability доступность одной даты календаря
type DayAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Disabled  bool   `json:"disabled"`
}
