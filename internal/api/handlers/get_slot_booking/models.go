package get_slot_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// ToSlotID собирает ключ слота из query параметров date, timeStart и serviceId
func ToSlotID(date, timeStart, serviceID string) (domain.SlotID, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return domain.SlotID{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start, err := types.NewTimeStringFromString(timeStart)
	if err != nil {
		return domain.SlotID{}, err
	}
	if serviceID == "" {
		return domain.SlotID{}, fmt.Errorf("serviceId is required")
	}
	return domain.SlotID{Date: date, TimeStart: start, ServiceID: serviceID}, nil
}
