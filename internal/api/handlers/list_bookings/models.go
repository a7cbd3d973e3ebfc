package list_bookings

import (
	"net/url"

	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров search и status
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{Search: query.Get("search")}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	return req
}
