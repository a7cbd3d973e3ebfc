package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/internal/api/handlers"
	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/service/auth"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
)

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, username, password string) (*auth.LoginResult, error) {
	switch {
	case username == "admin" && password == "secret":
		return &auth.LoginResult{
			Token:     "jwt",
			ExpiresAt: time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC),
			User:      domain.User{Username: "admin", Role: domain.RoleAdmin},
		}, nil
	case username == "broken":
		return nil, errors.New("store down")
	default:
		return nil, auth.ErrInvalidCredentials
	}
}

func post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(stubAuth{}, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := post(`{"username":" admin ","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp auth.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, domain.RoleAdmin, resp.User.Role)
}

func TestHandle_Failures(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, post(`{"username":"admin","password":"nope"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(`{"username":"broken","password":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)

	rec := post(`{"username":"  "}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		"username": "Username is required",
		"password": "Password is required",
	}, resp.Fields)
}
