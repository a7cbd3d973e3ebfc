// Package seed holds the initial catalog, shop profile and chatbot answers
// used when the store has not been written yet.
package seed

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
)

//go:embed seed.yaml
var defaultFixture []byte

var ErrInvalidFixture = errors.New("seed: invalid fixture")

// Fixture is the initial state of a freshly installed shop.
type Fixture struct {
	Services  []domain.Service         `yaml:"services"`
	Hours     domain.ShopHours         `yaml:"hours"`
	Shop      domain.ShopProfile       `yaml:"shop"`
	Questions []domain.ChatbotQuestion `yaml:"questions"`
}

// Default returns a fresh copy of the embedded fixture.
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

// Parse decodes a YAML fixture and checks the weekly schedule.
func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if err := f.Hours.Validate(); err != nil {
		return Fixture{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	return f, nil
}
