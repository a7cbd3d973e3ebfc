package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type stubService map[string]error

func (s stubService) CancelBooking(_ context.Context, id string) error {
	return s[id]
}

func TestHandle(t *testing.T) {
	svc := stubService{
		"missing":   bookings.ErrBookingNotFound,
		"done":      &domain.TransitionError{From: domain.StatusCompleted, To: domain.StatusCancelled},
		"raced":     bookings.ErrConcurrentUpdate,
		"store-err": bookings.ErrInternal,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodPatch)

	tests := []struct {
		id   string
		code int
	}{
		{id: "b1", code: http.StatusOK},
		{id: "missing", code: http.StatusNotFound},
		{id: "done", code: http.StatusConflict},
		{id: "raced", code: http.StatusConflict},
		{id: "store-err", code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+tt.id+"/cancel", nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
