package get_available_slots

import (
	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SPAuto-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string                  `json:"date"`
	ServiceID string                  `json:"serviceId"`
	Slots     []handlers.SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(serviceID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:      resp.Date,
		ServiceID: resp.ServiceID,
		Slots:     handlers.FromDomainSlots(resp.Slots),
	}
}
