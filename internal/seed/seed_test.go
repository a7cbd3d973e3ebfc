package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	require.Len(t, f.Services, 4)
	assert.Equal(t, "1", f.Services[0].ID)
	assert.Equal(t, "Oil Change", f.Services[0].Name)
	assert.InDelta(t, 49.99, f.Services[0].Price, 0.001)
	assert.Equal(t, 30, f.Services[0].Duration)

	require.Len(t, f.Hours, 7)
	assert.Equal(t, types.TimeString("08:00"), f.Hours[0].Open)
	assert.False(t, f.Hours[6].IsOpen)

	assert.Equal(t, "SP AUTO WORKS", f.Shop.Name)
	assert.Equal(t, "Michael Johnson", f.Shop.Owner.Name)
	require.Len(t, f.Shop.Staff, 2)
	assert.Equal(t, "David Chen", f.Shop.Staff[1].Name)

	require.Len(t, f.Questions, 5)
	assert.Equal(t, "How long does an oil change take?", f.Questions[4].Question)
}

func TestDefault_ReturnsCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	a.Services[0].Name = "mutated"

	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Oil Change", b.Services[0].Name)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("services: ["))
	assert.ErrorIs(t, err, ErrInvalidFixture)

	_, err = Parse([]byte("hours:\n  - { day: Monday, open: \"08:00\", close: \"18:00\", isOpen: true }\n"))
	assert.ErrorIs(t, err, ErrInvalidFixture)
}
