package handlers

import (
	"strings"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/pkg/validation"
)

var validator = validation.New()

// Validate проверяет HTTP-модель по тегам validate.
// Возвращает *validation.FieldsError с текстами из messages.
func Validate(v interface{}, messages validation.Messages) error {
	return validator.Struct(v, messages)
}

var serviceFormMessages = validation.Messages{
	"name":     "Service name is required",
	"price":    "Price must be zero or greater",
	"duration": "Duration must be between 1 and 1440 minutes",
}

// ServiceForm тело запроса создания и изменения услуги
type ServiceForm struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Duration    *int     `json:"duration" validate:"required,min=1,max=1440"`
	Image       string   `json:"image"`
}

// Validate проверяет форму после обрезки пробелов
func (f *ServiceForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Image = strings.TrimSpace(f.Image)
	return Validate(f, serviceFormMessages)
}

// ToDomain конвертирует форму в услугу. Вызывать после успешной Validate.
func (f *ServiceForm) ToDomain(id string) domain.Service {
	return domain.Service{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       *f.Price,
		Duration:    *f.Duration,
		Image:       f.Image,
	}
}

var questionFormMessages = validation.Messages{
	"question": "Question is required",
	"answer":   "Answer is required",
}

// QuestionForm тело запроса создания и изменения готового вопроса чат-бота
type QuestionForm struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Validate проверяет форму после обрезки пробелов
func (f *QuestionForm) Validate() error {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	return Validate(f, questionFormMessages)
}
