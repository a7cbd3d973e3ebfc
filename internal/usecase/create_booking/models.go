package create_booking

import (
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования (данные формы клиента).
// Ключи ошибок валидации совпадают с json-именами полей.
type Request struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Date      string `json:"date" validate:"isodate"`   // "2025-06-02"
	TimeStart string `json:"timeStart" validate:"hhmm"` // "10:00"

	CustomerName  string `json:"customerName" validate:"min=2"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"min=7"`

	VehicleMake  string `json:"vehicleMake" validate:"required"`
	VehicleModel string `json:"vehicleModel" validate:"required"`
	VehicleYear  string `json:"vehicleYear" validate:"len=4,number"`

	AdditionalNotes *string `json:"additionalNotes,omitempty" validate:"omitempty,max=1000"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID    string
	Status       domain.BookingStatus
	SlotID       domain.SlotID
	ServiceName  string
	ServicePrice float64
}
