// Package baloon computes the physical feasibility and performance of
// lighter-than-air balloons: buoyant lift, payload capacity and envelope
// dimensioning across an altitude profile, plus a bounded search for the
// altitude that maximizes a chosen objective.
package baloon

import (
	"errors"
	"fmt"
	"math"
)

// Profile is an ordered sweep of altitude samples.
type Profile struct {
	Start float64 // m
	End   float64 // m
	Step  float64 // m, 0 selects the default of 500
}

const defaultProfileStep = 500.0

// Validate enforces Start ≤ End and non-negative altitudes.
func (p Profile) Validate() error {
	if p.Start < 0 || p.End < 0 {
		return errors.New("baloon: profile altitudes must be non-negative")
	}
	if p.Start > p.End {
		return errors.New("baloon: profile start must not exceed end")
	}
	if p.Step < 0 {
		return errors.New("baloon: profile step must be positive")
	}
	return nil
}

// Altitudes expands the profile into its sample points, end inclusive.
func (p Profile) Altitudes() []float64 {
	step := p.Step
	if step == 0 {
		step = defaultProfileStep
	}
	var alts []float64
	for h := p.Start; h < p.End; h += step {
		alts = append(alts, h)
	}
	return append(alts, p.End)
}

// Result is one forward evaluation of the balloon at one altitude.
// Immutable once produced.
type Result struct {
	Altitude       float64 `json:"altitude_m"`
	TemperatureC   float64 `json:"temperature_c"`
	Pressure       float64 `json:"pressure_pa"`
	AirDensity     float64 `json:"air_density_kg_m3"`
	GasDensity     float64 `json:"gas_density_kg_m3"`
	NetLiftPerM3   float64 `json:"net_lift_per_m3"`
	GasVolume      float64 `json:"gas_volume_m3"`
	RequiredVolume float64 `json:"required_volume_m3"`
	SurfaceArea    float64 `json:"surface_area_m2"`
	EnvelopeMass   float64 `json:"envelope_mass_kg"`
	Lift           float64 `json:"lift_kg"`
	LiftForce      float64 `json:"lift_force_n"`
	Payload        float64 `json:"payload_kg"`
	Dimensions     Shape   `json:"-"`
}

// Calculator orchestrates the atmosphere, gas and shape models for one
// balloon configuration. It holds immutable specs only, so independent
// requests may run concurrently on separate calculators or share one.
type Calculator struct {
	Atmosphere Atmosphere
	Gas        GasSpec
	Material   MaterialSpec
	Shape      ShapeKind
	Hints      DimensionHints
	ExtraMass  float64 // fixed hardware mass, kg
	SeamFactor float64 // envelope area overhead for seams, ≥ 1; 0 means 1
}

func (c Calculator) seamFactor() float64 {
	if c.SeamFactor < 1 {
		return 1
	}
	return c.SeamFactor
}

// AtAltitude runs the forward evaluation: given the ground-fill gas volume,
// it derives the ambient state, gas density, the envelope volume the gas
// expands into at altitude, the shape dimensions matching that volume, and
// the resulting lift and net payload.
func (c Calculator) AtAltitude(altitude, gasVolume float64) (Result, error) {
	if gasVolume <= 0 || math.IsNaN(gasVolume) {
		return Result{}, fmt.Errorf("baloon: gas volume must be positive, got %g", gasVolume)
	}
	if err := c.Material.Validate(); err != nil {
		return Result{}, err
	}
	air, err := c.Atmosphere.At(altitude)
	if err != nil {
		return Result{}, err
	}
	ρGas, err := c.Gas.Density(c.Atmosphere, altitude)
	if err != nil {
		return Result{}, err
	}

	net := air.Density - ρGas
	lift := net * gasVolume

	// The gas expands on ascent; the envelope must hold the expanded
	// volume, not the ground-fill one.
	required := gasVolume *
		(c.Atmosphere.Constants.SeaLevelPressure / air.Pressure) *
		(air.Temperature / c.Atmosphere.seaLevelTemperature())

	dims, err := DimensionsFromVolume(c.Shape, required, c.Hints)
	if err != nil {
		return Result{}, err
	}
	area := dims.SurfaceArea()
	envMass := area * c.seamFactor() * c.Material.AreaDensity()

	return Result{
		Altitude:       altitude,
		TemperatureC:   air.Temperature - c.Atmosphere.Constants.KelvinOffset,
		Pressure:       air.Pressure,
		AirDensity:     air.Density,
		GasDensity:     ρGas,
		NetLiftPerM3:   net,
		GasVolume:      gasVolume,
		RequiredVolume: required,
		SurfaceArea:    area,
		EnvelopeMass:   envMass,
		Lift:           lift,
		LiftForce:      lift * c.Atmosphere.Constants.Gravity,
		Payload:        lift - envMass - c.ExtraMass,
		Dimensions:     dims,
	}, nil
}

// OverProfile evaluates the balloon at every sample of the profile,
// preserving sample order. A configuration with negative payload at every
// sample cannot lift itself and fails with *InfeasibleError.
func (c Calculator) OverProfile(p Profile, gasVolume float64) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	alts := p.Altitudes()
	results := make([]Result, 0, len(alts))
	best := math.Inf(-1)
	for _, h := range alts {
		r, err := c.AtAltitude(h, gasVolume)
		if err != nil {
			return nil, err
		}
		if r.Payload > best {
			best = r.Payload
		}
		results = append(results, r)
	}
	if best < 0 {
		return results, &InfeasibleError{Samples: len(results), BestPayload: best}
	}
	return results, nil
}

// VolumeForPayload works the calculation backward: it searches for the
// ground-fill gas volume whose net payload at the given altitude equals the
// target. Payload grows monotonically with volume past its early dip (lift
// scales with V, envelope mass only with V^(2/3)), so the unique crossing
// is found by growing a bracket geometrically and bisecting it.
func (c Calculator) VolumeForPayload(altitude, targetPayload float64) (Result, error) {
	if targetPayload < 0 {
		return Result{}, fmt.Errorf("baloon: target payload must be non-negative, got %g", targetPayload)
	}
	probe, err := c.AtAltitude(altitude, 1)
	if err != nil {
		return Result{}, err
	}
	if probe.NetLiftPerM3 <= 0 {
		return Result{}, &InfeasibleError{Samples: 1, BestPayload: probe.Payload}
	}

	f := func(v float64) float64 {
		r, ferr := c.AtAltitude(altitude, v)
		if ferr != nil {
			return math.Inf(-1)
		}
		return r.Payload - targetPayload
	}

	lo := 1e-9
	hi := math.Max(1, (targetPayload+c.ExtraMass)/probe.NetLiftPerM3)
	grow := 0
	for f(hi) < 0 {
		hi *= 2
		if grow++; grow > 60 {
			return Result{}, &ConvergenceError{Iterations: grow, Reason: "payload target not bracketed by any volume"}
		}
	}
	v, _, err := Bisect(f, lo, hi, hi*1e-9, maxSolveIterations)
	if err != nil {
		return Result{}, err
	}
	return c.AtAltitude(altitude, v)
}
