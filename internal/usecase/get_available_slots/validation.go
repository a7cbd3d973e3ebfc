package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

var validator = validation.New()

var queryMessages = validation.Messages{
	"serviceId": "serviceId is required",
	"date":      "date must be in YYYY-MM-DD format",
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.Date = strings.TrimSpace(req.Date)

	if err := validator.Struct(req, queryMessages); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
