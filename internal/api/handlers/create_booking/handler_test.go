package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	createBooking "github.com/m04kA/SPAuto-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

type stubUseCase func(req *createBooking.Request) (*createBooking.Response, error)

func (f stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return f(req)
}

const body = `{
	"serviceId": "1",
	"date": "2025-06-02",
	"timeStart": "10:00",
	"customerName": "John Doe",
	"customerEmail": "john@example.com",
	"customerPhone": "5551234567",
	"vehicleMake": "Toyota",
	"vehicleModel": "Camry",
	"vehicleYear": "2018"
}`

func serve(uc CreateBookingUseCase, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := stubUseCase(func(req *createBooking.Request) (*createBooking.Response, error) {
		assert.Equal(t, "John Doe", req.CustomerName)
		assert.Nil(t, req.AdditionalNotes)
		return &createBooking.Response{
			BookingID:    "b1",
			Status:       domain.StatusPending,
			SlotID:       domain.SlotID{Date: req.Date, TimeStart: "10:00", ServiceID: req.ServiceID},
			ServiceName:  "Oil Change",
			ServicePrice: 49.99,
		}, nil
	})

	rec := serve(uc, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, BookingResponse{
		ID:           "b1",
		Status:       "pending",
		SlotID:       "2025-06-02-10:00-1",
		Date:         "2025-06-02",
		TimeStart:    "10:00",
		ServiceID:    "1",
		ServiceName:  "Oil Change",
		ServicePrice: 49.99,
	}, resp)
}

func TestHandle_ValidationErrors(t *testing.T) {
	uc := stubUseCase(func(*createBooking.Request) (*createBooking.Response, error) {
		fields := &validation.FieldsError{Fields: map[string]string{
			"customerEmail": "Please enter a valid email address",
		}}
		return nil, fmt.Errorf("%w: %w", createBooking.ErrInvalidInput, fields)
	})

	rec := serve(uc, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please enter a valid email address", resp.Fields["customerEmail"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, code: http.StatusConflict},
		{name: "invalid input", err: createBooking.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := stubUseCase(func(*createBooking.Request) (*createBooking.Response, error) {
				return nil, tt.err
			})
			assert.Equal(t, tt.code, serve(uc, body).Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := stubUseCase(func(*createBooking.Request) (*createBooking.Response, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	})

	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"serviceId":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, ``).Code)
}
