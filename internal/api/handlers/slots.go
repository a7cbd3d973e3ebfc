package handlers

import "github.com/m04kA/SPAuto-BookingService/internal/domain"

// SlotResponse слот в ответах API
type SlotResponse struct {
	ID          string `json:"id"` // "2025-06-02-10:00-1"
	Date        string `json:"date"`
	TimeStart   string `json:"timeStart"`
	TimeEnd     string `json:"timeEnd"`
	ServiceID   string `json:"serviceId"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromDomainSlot конвертирует слот журнала в DTO
func FromDomainSlot(s domain.BookingSlot) SlotResponse {
	return SlotResponse{
		ID:          s.ID.String(),
		Date:        s.Date,
		TimeStart:   s.TimeStart.String(),
		TimeEnd:     s.TimeEnd.String(),
		ServiceID:   s.ServiceID,
		IsAvailable: s.IsAvailable,
	}
}

// FromDomainSlots конвертирует список слотов, nil превращается в пустой список
func FromDomainSlots(slots []domain.BookingSlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
