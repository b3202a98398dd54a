package baloon

import (
	"errors"
	"strings"
)

// Material defines an envelope film material. Permeability maps gas name to
// a permeation coefficient in m²/(s·Pa); gases without data permeate zero
// and are rejected by the flight-time analysis.
type Material struct {
	Name         string
	Density      float64 // kg/m³
	Permeability map[string]float64
}

/* Definitions */

// TPU is thermoplastic polyurethane film.
var TPU = Material{"tpu", 1200, map[string]float64{"helium": 3e-13, "hydrogen": 2e-13}}

// PE is polyethylene film.
var PE = Material{"pe", 950, map[string]float64{"helium": 5e-13, "hydrogen": 3e-13}}

// Mylar is biaxially-oriented PET, the least permeable of the set.
var Mylar = Material{"mylar", 1390, map[string]float64{"helium": 1e-14, "hydrogen": 8e-15}}

// Latex is the classic meteorological balloon rubber.
var Latex = Material{"latex", 920, map[string]float64{"helium": 5e-12, "hydrogen": 3e-12}}

// Nylon is ripstop fabric, used for hot-air envelopes.
var Nylon = Material{"nylon", 1150, nil}

// Materials returns the material table in a stable order.
func Materials() []Material {
	return []Material{TPU, PE, Mylar, Latex, Nylon}
}

// MaterialFromString returns the material from its name.
func MaterialFromString(name string) (Material, error) {
	for _, m := range Materials() {
		if strings.EqualFold(strings.TrimSpace(name), m.Name) {
			return m, nil
		}
	}
	return Material{}, errors.New("baloon: unknown material '" + name + "'")
}

func (m Material) String() string {
	return m.Name
}

// PermeabilityFor returns the permeation coefficient for a gas, zero when
// no data exists for the pairing.
func (m Material) PermeabilityFor(g Gas) float64 {
	return m.Permeability[g.Name]
}

// MaterialSpec is a material at a chosen film thickness.
// Thickness is given in micrometers and converted internally to meters.
type MaterialSpec struct {
	Material        Material
	ThicknessMicron float64
}

// Validate rejects non-physical specs before any mass arithmetic.
func (m MaterialSpec) Validate() error {
	if m.Material.Density <= 0 {
		return errors.New("baloon: material has no density")
	}
	if m.ThicknessMicron <= 0 {
		return errors.New("baloon: film thickness must be positive")
	}
	return nil
}

// Thickness returns the film thickness in meters.
func (m MaterialSpec) Thickness() float64 {
	return m.ThicknessMicron * 1e-6
}

// AreaDensity returns the envelope mass per unit surface area in kg/m².
func (m MaterialSpec) AreaDensity() float64 {
	return m.Thickness() * m.Material.Density
}
