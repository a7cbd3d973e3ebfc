package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

// ErrInvalid is matched by every *FieldsError.
var ErrInvalid = errors.New("validation: invalid input")

// Messages maps a json field path ("customerEmail", "owner.name", "staff[].name")
// to the human-readable message reported when any rule of that field fails.
type Messages map[string]string

// FieldsError carries per-field messages keyed by json field path.
type FieldsError struct {
	Fields map[string]string
}

func (e *FieldsError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%v: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *FieldsError) Unwrap() error {
	return ErrInvalid
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Validator checks structs tagged with `validate:"..."`.
// Besides the built-in rules it knows "hhmm" (types.TimeString) and "isodate" (YYYY-MM-DD).
type Validator struct {
	v *validator.Validate
}

// New builds a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Регистрация не может упасть для корректных имён правил
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return types.TimeString(fl.Field().String()).Validate() == nil
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

// Struct validates s. It returns nil, a *FieldsError, or an error for a non-struct argument.
func (v *Validator) Struct(s interface{}, messages Messages) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if _, done := fields[path]; done {
			continue
		}
		fields[path] = message(messages, path, fe)
	}
	return &FieldsError{Fields: fields}
}

// fieldPath убирает имя корневой структуры: "Request.owner.name" -> "owner.name"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(messages Messages, path string, fe validator.FieldError) string {
	if msg, ok := messages[path]; ok {
		return msg
	}
	if msg, ok := messages[indexPattern.ReplaceAllString(path, "[]")]; ok {
		return msg
	}
	if fe.Tag() == "required" {
		return fe.Field() + " is required"
	}
	return fe.Field() + " is invalid"
}
