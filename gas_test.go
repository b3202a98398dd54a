package baloon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasFromString(t *testing.T) {
	cases := map[string]Gas{
		"helium":  Helium,
		"He":      Helium,
		"h2":      Hydrogen,
		"Hot Air": HotAir,
		"hot-air": HotAir,
	}
	for name, want := range cases {
		got, err := GasFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, want.Name, got.Name)
	}
}

func TestGasFromStringUnknown(t *testing.T) {
	_, err := GasFromString("argon")
	var unknownErr *UnknownGasError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "argon", unknownErr.Name)
}

func TestInertGasDensitySeaLevel(t *testing.T) {
	atm := StandardAtmosphere()
	ρHe, err := GasSpec{Gas: Helium}.Density(atm, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.1693, ρHe, 0.001)

	ρH2, err := GasSpec{Gas: Hydrogen}.Density(atm, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0853, ρH2, 0.001)
	assert.Less(t, ρH2, ρHe)
}

func TestInertGasDensityDropsWithAltitude(t *testing.T) {
	atm := StandardAtmosphere()
	spec := GasSpec{Gas: Helium}
	low, err := spec.Density(atm, 0)
	require.NoError(t, err)
	high, err := spec.Density(atm, 5000)
	require.NoError(t, err)
	assert.Less(t, high, low)
}

func TestHotAirDensity(t *testing.T) {
	atm := StandardAtmosphere()
	ρ, err := GasSpec{Gas: HotAir, InsideTemperature: 100}.Density(atm, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.8967, ρ, 0.001)

	// Hotter air is thinner.
	ρHotter, err := GasSpec{Gas: HotAir, InsideTemperature: 150}.Density(atm, 0)
	require.NoError(t, err)
	assert.Less(t, ρHotter, ρ)
}

func TestHotAirRequiresHeat(t *testing.T) {
	atm := StandardAtmosphere() // 15 °C ground
	_, err := GasSpec{Gas: HotAir, InsideTemperature: 15}.Density(atm, 0)
	require.Error(t, err)
	_, err = GasSpec{Gas: HotAir, InsideTemperature: 10}.Density(atm, 0)
	require.Error(t, err)
}

func TestGasDensityDomainChecked(t *testing.T) {
	atm := StandardAtmosphere()
	var domainErr *DomainError
	_, err := GasSpec{Gas: Helium}.Density(atm, 12000)
	require.True(t, errors.As(err, &domainErr))
	_, err = GasSpec{Gas: HotAir, InsideTemperature: 100}.Density(atm, 12000)
	require.True(t, errors.As(err, &domainErr))
}
