package baloon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtmosphereSeaLevel(t *testing.T) {
	atm := StandardAtmosphere()
	state, err := atm.At(0)
	require.NoError(t, err)
	assert.InDelta(t, 101325, state.Pressure, 1)
	assert.InDelta(t, 1.225, state.Density, 0.01)
	assert.InDelta(t, 288.15, state.Temperature, 1e-9)
}

func TestAtmosphereLapse(t *testing.T) {
	atm := StandardAtmosphere()
	temp, err := atm.Temperature(1000)
	require.NoError(t, err)
	assert.InDelta(t, 281.65, temp, 1e-9)
}

func TestAtmosphereDensityStrictlyDecreasing(t *testing.T) {
	atm := StandardAtmosphere()
	prev, err := atm.Density(0)
	require.NoError(t, err)
	for h := 100.0; h <= atm.Constants.MaxAltitude; h += 100 {
		ρ, err := atm.Density(h)
		require.NoError(t, err)
		if ρ >= prev {
			t.Fatalf("density not decreasing at %g m: %g >= %g", h, ρ, prev)
		}
		prev = ρ
	}
}

func TestAtmospherePressureDecreasing(t *testing.T) {
	atm := StandardAtmosphere()
	p0, err := atm.Pressure(0)
	require.NoError(t, err)
	p3, err := atm.Pressure(3000)
	require.NoError(t, err)
	assert.Less(t, p3, p0)
}

func TestAtmosphereDomain(t *testing.T) {
	atm := StandardAtmosphere()
	for _, h := range []float64{-1, -1000, 11001, 50000} {
		_, err := atm.Density(h)
		var domainErr *DomainError
		require.Error(t, err, "altitude %g", h)
		require.True(t, errors.As(err, &domainErr), "altitude %g: %v", h, err)
		assert.Equal(t, h, domainErr.Altitude)
	}
}

func TestAtmosphereAlternateConstants(t *testing.T) {
	// Mars-ish table: the model must follow the injected constants, not
	// package globals.
	mars := Earth
	mars.Gravity = 3.71
	mars.SeaLevelPressure = 610
	atm := Atmosphere{Constants: mars, GroundTemperature: -60}
	p, err := atm.Pressure(0)
	require.NoError(t, err)
	assert.InDelta(t, 610, p, 1e-9)
}
