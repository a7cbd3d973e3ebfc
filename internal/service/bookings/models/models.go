package models

import (
	"time"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Search string  `json:"search,omitempty"`
	Status *string `json:"status,omitempty"` // nil или "all" - без фильтра по статусу
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	if r == nil {
		return domain.BookingFilter{}, nil
	}

	filter := domain.BookingFilter{Search: r.Search}
	if r.Status != nil && *r.Status != "" && *r.Status != "all" {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	SlotID          string    `json:"slotId"` // "2025-06-02-10:00-1"
	Date            string    `json:"date"`
	TimeStart       string    `json:"timeStart"`
	ServiceID       string    `json:"serviceId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	VehicleMake     string    `json:"vehicleMake"`
	VehicleModel    string    `json:"vehicleModel"`
	VehicleYear     string    `json:"vehicleYear"`
	AdditionalNotes *string   `json:"additionalNotes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingDetailsResponse бронирование вместе со слотом и услугой
type BookingDetailsResponse struct {
	Booking BookingResponse     `json:"booking"`
	Slot    *domain.BookingSlot `json:"slot,omitempty"`
	Service *domain.Service     `json:"service,omitempty"`
}

// DashboardResponse сводка для панели администратора
type DashboardResponse struct {
	Date              string            `json:"date"`
	TotalBookings     int               `json:"totalBookings"`
	PendingBookings   int               `json:"pendingBookings"`
	ConfirmedBookings int               `json:"confirmedBookings"`
	CompletedBookings int               `json:"completedBookings"`
	CancelledBookings int               `json:"cancelledBookings"`
	BookingsByService map[string]int    `json:"bookingsByService"`
	TodayBookings     []BookingResponse `json:"todayBookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		SlotID:          b.SlotID.String(),
		Date:            b.SlotID.Date,
		TimeStart:       b.SlotID.TimeStart.String(),
		ServiceID:       b.ServiceID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		VehicleMake:     b.VehicleMake,
		VehicleModel:    b.VehicleModel,
		VehicleYear:     b.VehicleYear,
		AdditionalNotes: b.AdditionalNotes,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
		Total:    len(bookings),
	}
	for i := range bookings {
		resp.Bookings[i] = *FromDomainBooking(&bookings[i])
	}
	return resp
}

// FromDomainDashboard конвертирует сводку в DTO
func FromDomainDashboard(date string, stats domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		Date:              date,
		TotalBookings:     stats.TotalBookings,
		PendingBookings:   stats.PendingBookings,
		ConfirmedBookings: stats.ConfirmedBookings,
		CompletedBookings: stats.CompletedBookings,
		CancelledBookings: stats.CancelledBookings,
		BookingsByService: stats.BookingsByService,
		TodayBookings:     FromDomainBookingList(stats.TodayBookings).Bookings,
	}
}
