package update_shop

import (
	"context"
	"encoding/json"
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

type recordingService struct {
	saved *domain.ShopProfile
}

func (s *recordingService) SetShopProfile(_ context.Context, profile domain.ShopProfile) error {
	s.saved = &profile
	return nil
}

func validProfile() ShopProfileForm {
	return ShopProfileForm{
		Name:        "AutoCare Pro",
		Description: "Full service auto repair since 2005",
		Address:     "123 Main St, Springfield",
		Phone:       "(555) 123-4567",
		Email:       "info@autocare.example",
		Images:      []string{"https://example.com/shop.jpg"},
		Owner: OwnerForm{
			Name:     "Mike Johnson",
			Position: "Owner",
			Bio:      "Twenty years of experience with imports.",
			Image:    "https://example.com/mike.jpg",
		},
		Staff: []StaffForm{
			{ID: "7", Name: "Sarah", Position: "Mechanic"},
			{Name: "Tom", Position: "Technician", Image: "https://example.com/tom.jpg"},
		},
	}
}

func put(t *testing.T, svc ShopService, form ShopProfileForm) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(form)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/shop", strings.NewReader(string(payload)))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &recordingService{}
	form := validProfile()
	form.Name = "  AutoCare Pro  "

	rec := put(t, svc, form)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.saved)

	assert.Equal(t, "AutoCare Pro", svc.saved.Name)
	require.Len(t, svc.saved.Staff, 2)
	assert.Equal(t, "7", svc.saved.Staff[0].ID)
	assert.Equal(t, "2", svc.saved.Staff[1].ID)
}

func TestHandle_FieldMessages(t *testing.T) {
	svc := &recordingService{}
	form := validProfile()
	form.Description = "short"
	form.Images = nil
	form.Owner.Image = "not a url"
	form.Staff[1].Name = ""

	rec := put(t, svc, form)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, svc.saved)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		"description":   "Description must be at least 10 characters",
		"images":        "At least one shop image is required",
		"owner.image":   "Valid image URL is required",
		"staff[1].name": "Staff name is required",
	}, resp.Fields)
}

func TestHandle_InvalidImageURL(t *testing.T) {
	form := validProfile()
	form.Images = append(form.Images, "ftp//broken")

	rec := put(t, &recordingService{}, form)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Valid image URL is required", resp.Fields["images[1]"])
}
