package baloon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heliumSphere is the reference configuration: helium, sphere, 35 µm TPU.
func heliumSphere() Calculator {
	return Calculator{
		Atmosphere: StandardAtmosphere(),
		Gas:        GasSpec{Gas: Helium},
		Material:   MaterialSpec{Material: TPU, ThicknessMicron: 35},
		Shape:      KindSphere,
	}
}

func TestGoldenHeliumSphereSeaLevel(t *testing.T) {
	// Pinned reference values: 10 m³ of helium at sea level lifts
	// 10.557 kg, of which 0.943 kg is the TPU envelope.
	r, err := heliumSphere().AtAltitude(0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.2250, r.AirDensity, 0.001)
	assert.InDelta(t, 0.1693, r.GasDensity, 0.001)
	assert.InDelta(t, 10.557, r.Lift, 0.01)
	assert.InDelta(t, 103.53, r.LiftForce, 0.15)
	assert.InDelta(t, 22.45, r.SurfaceArea, 0.02)
	assert.InDelta(t, 0.943, r.EnvelopeMass, 0.002)
	assert.InDelta(t, 9.614, r.Payload, 0.01)
	assert.InDelta(t, 10, r.RequiredVolume, 1e-9)
	require.IsType(t, Sphere{}, r.Dimensions)
	assert.InDelta(t, 1.3365, r.Dimensions.(Sphere).Radius, 0.001)
}

func TestAltitudeBeyondModelValidity(t *testing.T) {
	_, err := heliumSphere().AtAltitude(12000, 10)
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr), "%v", err)
}

func TestZeroThicknessRejected(t *testing.T) {
	c := heliumSphere()
	c.Material.ThicknessMicron = 0
	_, err := c.AtAltitude(0, 10)
	require.Error(t, err)
}

func TestNonPositiveGasVolumeRejected(t *testing.T) {
	for _, v := range []float64{0, -3} {
		_, err := heliumSphere().AtAltitude(0, v)
		require.Error(t, err, "volume %g", v)
	}
}

func TestEnvelopeGrowsWithAltitude(t *testing.T) {
	c := heliumSphere()
	ground, err := c.AtAltitude(0, 10)
	require.NoError(t, err)
	high, err := c.AtAltitude(5000, 10)
	require.NoError(t, err)
	assert.Greater(t, high.RequiredVolume, ground.RequiredVolume)
	assert.Greater(t, high.EnvelopeMass, ground.EnvelopeMass)
}

func TestLiftSignFlipsWhenGasIsHeavierThanAir(t *testing.T) {
	// Hot air density is pinned to the burner temperature, so high up the
	// ambient air gets thinner than the envelope contents.
	c := heliumSphere()
	c.Gas = GasSpec{Gas: HotAir, InsideTemperature: 100}
	r, err := c.AtAltitude(4000, 100)
	require.NoError(t, err)
	assert.Negative(t, r.NetLiftPerM3)
	assert.Negative(t, r.Lift)
	assert.Negative(t, r.LiftForce)
	assert.Negative(t, r.Payload)
}

func TestSeamFactorAndExtraMass(t *testing.T) {
	plain, err := heliumSphere().AtAltitude(0, 10)
	require.NoError(t, err)

	c := heliumSphere()
	c.SeamFactor = 1.1
	c.ExtraMass = 0.5
	loaded, err := c.AtAltitude(0, 10)
	require.NoError(t, err)
	assert.InDelta(t, plain.EnvelopeMass*1.1, loaded.EnvelopeMass, 1e-9)
	assert.InDelta(t, plain.Payload-0.1*plain.EnvelopeMass-0.5, loaded.Payload, 1e-9)
}

func TestProfileValidation(t *testing.T) {
	require.Error(t, Profile{Start: -1, End: 100}.Validate())
	require.Error(t, Profile{Start: 200, End: 100}.Validate())
	require.Error(t, Profile{Start: 0, End: 100, Step: -5}.Validate())
	require.NoError(t, Profile{Start: 0, End: 100}.Validate())
}

func TestProfileAltitudes(t *testing.T) {
	alts := Profile{Start: 0, End: 2000, Step: 500}.Altitudes()
	assert.Equal(t, []float64{0, 500, 1000, 1500, 2000}, alts)

	// End is always included even when the step overshoots.
	alts = Profile{Start: 0, End: 1200, Step: 500}.Altitudes()
	assert.Equal(t, []float64{0, 500, 1000, 1200}, alts)
}

func TestOverProfileKeepsSampleOrder(t *testing.T) {
	results, err := heliumSphere().OverProfile(Profile{Start: 0, End: 3000, Step: 500}, 10)
	require.NoError(t, err)
	require.Len(t, results, 7)
	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i].Altitude, results[i-1].Altitude)
	}
}

func TestOverProfileInfeasible(t *testing.T) {
	c := heliumSphere()
	c.ExtraMass = 1e6 // nothing lifts a kiloton
	results, err := c.OverProfile(Profile{Start: 0, End: 2000, Step: 500}, 10)
	var infErr *InfeasibleError
	require.True(t, errors.As(err, &infErr), "%v", err)
	assert.Equal(t, 5, infErr.Samples)
	assert.Negative(t, infErr.BestPayload)
	// The samples are still returned for inspection.
	assert.Len(t, results, 5)
}

func TestVolumeForPayloadInverseConsistency(t *testing.T) {
	c := heliumSphere()
	solved, err := c.VolumeForPayload(0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 5, solved.Payload, 1e-3)

	// Re-evaluating forward at the solved volume reproduces the target.
	forward, err := c.AtAltitude(0, solved.GasVolume)
	require.NoError(t, err)
	assert.InDelta(t, 5, forward.Payload, 1e-3)
}

func TestVolumeForPayloadInfeasibleGas(t *testing.T) {
	c := heliumSphere()
	c.Gas = GasSpec{Gas: HotAir, InsideTemperature: 100}
	_, err := c.VolumeForPayload(4000, 1)
	var infErr *InfeasibleError
	require.True(t, errors.As(err, &infErr), "%v", err)
}

func TestVolumeForPayloadRejectsNegativeTarget(t *testing.T) {
	_, err := heliumSphere().VolumeForPayload(0, -1)
	require.Error(t, err)
}
