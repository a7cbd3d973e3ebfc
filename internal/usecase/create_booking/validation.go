package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

var validator = validation.New()

// formMessages тексты ошибок формы бронирования
var formMessages = validation.Messages{
	"serviceId":       "Please select a service",
	"date":            "Please select a valid date",
	"timeStart":       "Please select a time slot",
	"customerName":    "Name must be at least 2 characters",
	"customerEmail":   "Please enter a valid email address",
	"customerPhone":   "Phone number must be at least 7 digits",
	"vehicleMake":     "Vehicle make is required",
	"vehicleModel":    "Vehicle model is required",
	"vehicleYear":     "Please enter a valid year (4 digits)",
	"additionalNotes": "Additional notes must be at most 1000 characters",
}

// normalize обрезает пробелы по краям текстовых полей.
// Пустые заметки считаются отсутствующими.
func normalize(req *Request) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.Date = strings.TrimSpace(req.Date)
	req.TimeStart = strings.TrimSpace(req.TimeStart)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.VehicleMake = strings.TrimSpace(req.VehicleMake)
	req.VehicleModel = strings.TrimSpace(req.VehicleModel)
	req.VehicleYear = strings.TrimSpace(req.VehicleYear)

	if req.AdditionalNotes != nil {
		notes := strings.TrimSpace(*req.AdditionalNotes)
		if notes == "" {
			req.AdditionalNotes = nil
		} else {
			req.AdditionalNotes = &notes
		}
	}
}

// validateRequest валидирует данные формы.
// Ошибка одновременно совпадает с ErrInvalidInput и *validation.FieldsError.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if err := validator.Struct(req, formMessages); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
