package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Oil Change"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Oil Change", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, map[string]string{"customerEmail": "Please enter a valid email address"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgValidation, body.Error)
	assert.Equal(t, "Please enter a valid email address", body.Fields["customerEmail"])
}

func TestValidationFields(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", &validation.FieldsError{Fields: map[string]string{"a": "b"}})

	fields, ok := ValidationFields(wrapped)
	require.True(t, ok)
	assert.Equal(t, "b", fields["a"])

	_, ok = ValidationFields(fmt.Errorf("plain"))
	assert.False(t, ok)
}
