package get_available_slots

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Date      string `json:"date" validate:"isodate"` // "2025-06-02"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      string
	ServiceID string
	Slots     []domain.BookingSlot // порядок журнала, без сортировки
}
