package generate_slots

import (
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/service/slots"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// GenerateSlotsRequest HTTP модель запроса генерации слотов
type GenerateSlotsRequest struct {
	Date      string           `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Interval  int              `json:"interval"`
	ServiceID string           `json:"serviceId"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *GenerateSlotsRequest) ToServiceRequest() slots.GenerateRequest {
	return slots.GenerateRequest{
		Date:      strings.TrimSpace(r.Date),
		StartTime: types.TimeString(strings.TrimSpace(r.StartTime.String())),
		EndTime:   types.TimeString(strings.TrimSpace(r.EndTime.String())),
		Interval:  r.Interval,
		ServiceID: strings.TrimSpace(r.ServiceID),
	}
}

// GenerateSlotsResponse созданные слоты. Уже существующие слоты не повторяются.
type GenerateSlotsResponse struct {
	Created int                     `json:"created"`
	Slots   []handlers.SlotResponse `json:"slots"`
}
