package update_shop

import (
	"strconv"
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

var profileMessages = validation.Messages{
	"name":           "Shop name must be at least 2 characters",
	"description":    "Description must be at least 10 characters",
	"address":        "Address is required",
	"phone":          "Valid phone number is required",
	"email":          "Valid email address is required",
	"images":         "At least one shop image is required",
	"images[]":       "Valid image URL is required",
	"owner.name":     "Owner name is required",
	"owner.position": "Position is required",
	"owner.bio":      "Bio must be at least 10 characters",
	"owner.image":    "Valid image URL is required",

	"staff[].name":     "Staff name is required",
	"staff[].position": "Position is required",
	"staff[].image":    "Valid image URL is required",
}

// ShopProfileForm тело запроса изменения профиля мастерской
type ShopProfileForm struct {
	Name        string      `json:"name" validate:"min=2"`
	Description string      `json:"description" validate:"min=10"`
	Address     string      `json:"address" validate:"min=5"`
	Phone       string      `json:"phone" validate:"min=7"`
	Email       string      `json:"email" validate:"required,email"`
	Images      []string    `json:"images" validate:"min=1,dive,url"`
	Owner       OwnerForm   `json:"owner"`
	Staff       []StaffForm `json:"staff" validate:"dive"`
}

type OwnerForm struct {
	Name     string `json:"name" validate:"min=2"`
	Position string `json:"position" validate:"min=2"`
	Bio      string `json:"bio" validate:"min=10"`
	Image    string `json:"image" validate:"required,url"`
}

type StaffForm struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"min=2"`
	Position string `json:"position" validate:"min=2"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// normalize обрезает пробелы во всех текстовых полях
func (f *ShopProfileForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	for i := range f.Images {
		f.Images[i] = strings.TrimSpace(f.Images[i])
	}

	f.Owner.Name = strings.TrimSpace(f.Owner.Name)
	f.Owner.Position = strings.TrimSpace(f.Owner.Position)
	f.Owner.Bio = strings.TrimSpace(f.Owner.Bio)
	f.Owner.Image = strings.TrimSpace(f.Owner.Image)

	for i := range f.Staff {
		f.Staff[i].Name = strings.TrimSpace(f.Staff[i].Name)
		f.Staff[i].Position = strings.TrimSpace(f.Staff[i].Position)
		f.Staff[i].Image = strings.TrimSpace(f.Staff[i].Image)
	}
}

// ToDomain конвертирует форму в профиль.
// Сотрудникам без ID присваивается порядковый номер.
func (f *ShopProfileForm) ToDomain() domain.ShopProfile {
	staff := make([]domain.StaffMember, 0, len(f.Staff))
	for i, s := range f.Staff {
		id := s.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		staff = append(staff, domain.StaffMember{
			ID:       id,
			Name:     s.Name,
			Position: s.Position,
			Image:    s.Image,
		})
	}

	images := make([]string, len(f.Images))
	copy(images, f.Images)

	return domain.ShopProfile{
		Name:        f.Name,
		Description: f.Description,
		Address:     f.Address,
		Phone:       f.Phone,
		Email:       f.Email,
		Images:      images,
		Owner: domain.Owner{
			Name:     f.Owner.Name,
			Position: f.Owner.Position,
			Bio:      f.Owner.Bio,
			Image:    f.Owner.Image,
		},
		Staff: staff,
	}
}
