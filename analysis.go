package baloon

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// minPermeationDeltaP is the pressure differential floor used for loss
// estimates: even a vented envelope carries some superpressure.
const minPermeationDeltaP = 100.0 // Pa

// GasLoss returns the gas volume in m³ permeating through the envelope
// over the given duration.
func GasLoss(permeability, surfaceArea, deltaP float64, duration time.Duration, thickness float64) float64 {
	if thickness <= 0 {
		return 0
	}
	if deltaP < minPermeationDeltaP {
		deltaP = minPermeationDeltaP
	}
	return permeability * surfaceArea * deltaP * duration.Seconds() / thickness
}

// MaxFlightTime estimates how long the balloon stays above the payload
// floor as gas permeates out. The loss rate is taken as constant at the
// initial surface area, which overestimates slightly.
func (c Calculator) MaxFlightTime(altitude, gasVolume, minPayload float64) (time.Duration, error) {
	perm := c.Material.Material.PermeabilityFor(c.Gas.Gas)
	if perm <= 0 {
		return 0, fmt.Errorf("baloon: no permeability data for %s through %s", c.Gas.Gas, c.Material.Material)
	}
	r, err := c.AtAltitude(altitude, gasVolume)
	if err != nil {
		return 0, err
	}
	if r.NetLiftPerM3 <= 0 || r.Payload < minPayload {
		return 0, &InfeasibleError{Samples: 1, BestPayload: r.Payload}
	}
	lossPerSec := GasLoss(perm, r.SurfaceArea, minPermeationDeltaP, time.Second, c.Material.Thickness())
	if lossPerSec <= 0 {
		return 0, fmt.Errorf("baloon: zero permeation rate for %s through %s", c.Gas.Gas, c.Material.Material)
	}
	seconds := (r.Payload - minPayload) / (r.NetLiftPerM3 * lossPerSec)
	return time.Duration(seconds * float64(time.Second)), nil
}

// CompareMaterials evaluates the same balloon across the whole material
// table at one altitude, keyed by material name.
func (c Calculator) CompareMaterials(altitude, gasVolume float64) (map[string]Result, error) {
	out := make(map[string]Result, len(Materials()))
	for _, m := range Materials() {
		alt := c
		alt.Material = MaterialSpec{Material: m, ThicknessMicron: c.Material.ThicknessMicron}
		r, err := alt.AtAltitude(altitude, gasVolume)
		if err != nil {
			return nil, err
		}
		out[m.Name] = r
	}
	return out, nil
}

// Summary condenses a profile sweep.
type Summary struct {
	Samples      int     `json:"samples"`
	BestAltitude float64 `json:"best_altitude_m"`
	MaxPayload   float64 `json:"max_payload_kg"`
	MinPayload   float64 `json:"min_payload_kg"`
	MeanPayload  float64 `json:"mean_payload_kg"`
}

// Summarize reduces an ordered profile sweep to its payload statistics.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	payloads := make([]float64, len(results))
	s := Summary{Samples: len(results), MaxPayload: math.Inf(-1), MinPayload: math.Inf(1)}
	for i, r := range results {
		payloads[i] = r.Payload
		if r.Payload > s.MaxPayload {
			s.MaxPayload = r.Payload
			s.BestAltitude = r.Altitude
		}
		if r.Payload < s.MinPayload {
			s.MinPayload = r.Payload
		}
	}
	s.MeanPayload = stat.Mean(payloads, nil)
	return s
}
