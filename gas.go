package baloon

import (
	"fmt"
	"strings"
)

// Gas defines a lifting gas.
type Gas struct {
	Name      string
	MolarMass float64 // kg/mol
	R         float64 // specific gas constant, J/(kg·K)
	Heated    bool    // density driven by internal temperature, not altitude
}

/* Definitions */

// Helium is the usual choice.
var Helium = Gas{"helium", 4.0026e-3, 2077.1, false}

// Hydrogen lifts more and burns better.
var Hydrogen = Gas{"hydrogen", 2.01588e-3, 4124.2, false}

// HotAir is plain air kept above ambient temperature.
var HotAir = Gas{"hot-air", 28.9644e-3, 287.05, true}

// GasFromString returns the gas from its name.
func GasFromString(name string) (Gas, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "helium", "he":
		return Helium, nil
	case "hydrogen", "h2":
		return Hydrogen, nil
	case "hot-air", "hot air", "hotair":
		return HotAir, nil
	default:
		return Gas{}, &UnknownGasError{Name: name}
	}
}

func (g Gas) String() string {
	return g.Name
}

// GasSpec is a gas plus the conditions it is flown with. Immutable once
// constructed. InsideTemperature (°C) only matters for heated gases.
type GasSpec struct {
	Gas               Gas
	InsideTemperature float64
}

// Density returns the gas density in kg/m³ at the given altitude.
// Inert gases follow the ideal-gas relation at ambient pressure and
// temperature. Hot air is pinned to its internal temperature and must be
// warmer than the ground air to provide any lift at all.
func (g GasSpec) Density(atm Atmosphere, altitude float64) (float64, error) {
	if g.Gas.R == 0 {
		return 0, &UnknownGasError{Name: g.Gas.Name}
	}
	if g.Gas.Heated {
		if g.InsideTemperature <= atm.GroundTemperature {
			return 0, fmt.Errorf("baloon: inside temperature %.1f °C must exceed ground temperature %.1f °C", g.InsideTemperature, atm.GroundTemperature)
		}
		if err := atm.checkAltitude(altitude); err != nil {
			return 0, err
		}
		inside := g.InsideTemperature + atm.Constants.KelvinOffset
		return atm.Constants.SeaLevelAirDensity * atm.Constants.KelvinOffset / inside, nil
	}
	state, err := atm.At(altitude)
	if err != nil {
		return 0, err
	}
	return state.Pressure / (g.Gas.R * state.Temperature), nil
}
