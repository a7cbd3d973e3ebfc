package create_booking

import (
	createBooking "github.com/m04kA/SPAuto-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (форма бронирования)
type CreateBookingRequest struct {
	ServiceID       string  `json:"serviceId"`
	Date            string  `json:"date"`      // "2025-06-02"
	TimeStart       string  `json:"timeStart"` // "10:00"
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	VehicleMake     string  `json:"vehicleMake"`
	VehicleModel    string  `json:"vehicleModel"`
	VehicleYear     string  `json:"vehicleYear"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	SlotID       string  `json:"slotId"`
	Date         string  `json:"date"`
	TimeStart    string  `json:"timeStart"`
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID:       r.ServiceID,
		Date:            r.Date,
		TimeStart:       r.TimeStart,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		VehicleYear:     r.VehicleYear,
		AdditionalNotes: r.AdditionalNotes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.BookingID,
		Status:       string(resp.Status),
		SlotID:       resp.SlotID.String(),
		Date:         resp.SlotID.Date,
		TimeStart:    resp.SlotID.TimeStart.String(),
		ServiceID:    resp.SlotID.ServiceID,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
	}
}
