package create_service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type stubCatalog struct {
	calls int
	got   domain.Service
	err   error
}

func (s *stubCatalog) AddService(_ context.Context, service domain.Service) (domain.Service, error) {
	s.calls++
	s.got = service
	if s.err != nil {
		return domain.Service{}, s.err
	}
	service.ID = "generated"
	return service, nil
}

func post(svc CatalogService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &stubCatalog{}
	rec := post(svc, `{"name":" Wheel Alignment ","price":79.99,"duration":60}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, domain.Service{Name: "Wheel Alignment", Price: 79.99, Duration: 60}, svc.got)

	var resp domain.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "generated", resp.ID)
}

func TestHandle_FormRejectsBeforeCatalog(t *testing.T) {
	svc := &stubCatalog{}
	rec := post(svc, `{"name":"Wheel Alignment","price":-5,"duration":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Price must be zero or greater", resp.Fields["price"])
	assert.Equal(t, "Duration must be between 1 and 1440 minutes", resp.Fields["duration"])
	assert.Zero(t, svc.calls)
}

func TestHandle_CatalogFailure(t *testing.T) {
	rec := post(&stubCatalog{err: errors.New("store down")}, `{"name":"Wheel Alignment","price":10,"duration":30}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	svc := &stubCatalog{}
	rec := post(svc, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}
