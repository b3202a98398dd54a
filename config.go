package baloon

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario is a calculation request loaded from a TOML file. It carries a
// fully assembled Calculator plus the run mode and its inputs.
type Scenario struct {
	Name string
	Mode string // "volume", "payload", "profile" or "optimal"
	Calc Calculator

	GasVolume     float64
	TargetPayload float64
	Altitude      float64
	Profile       Profile

	MinAlt, MaxAlt float64
	Tolerance      float64
	MaxEvaluations int

	CSVPath  string
	JSONPath string
}

// LoadScenario reads a scenario TOML file, e.g.:
//
//	[scenario]
//	name = "helium sounding"
//	mode = "profile"
//	[gas]
//	type = "helium"
//	[shape]
//	kind = "sphere"
//	[material]
//	name = "tpu"
//	thickness = 35.0    # µm
//	[flight]
//	gas_volume = 10.0
//	ground_temp = 15.0
//	start_height = 0.0
//	work_height = 3000.0
//	step = 500.0
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("scenario.mode", "volume")
	v.SetDefault("gas.inside_temp", 100.0)
	v.SetDefault("flight.ground_temp", 15.0)
	v.SetDefault("flight.seam_factor", 1.0)
	v.SetDefault("optimize.tolerance", 1.0)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("baloon: cannot read scenario %s: %w", path, err)
	}

	gas, err := GasFromString(v.GetString("gas.type"))
	if err != nil {
		return Scenario{}, err
	}
	material, err := MaterialFromString(v.GetString("material.name"))
	if err != nil {
		return Scenario{}, err
	}
	kind, err := ShapeKindFromString(v.GetString("shape.kind"))
	if err != nil {
		return Scenario{}, err
	}

	atm := StandardAtmosphere()
	atm.GroundTemperature = v.GetFloat64("flight.ground_temp")

	calc := Calculator{
		Atmosphere: atm,
		Gas:        GasSpec{Gas: gas, InsideTemperature: v.GetFloat64("gas.inside_temp")},
		Material:   MaterialSpec{Material: material, ThicknessMicron: v.GetFloat64("material.thickness")},
		Shape:      kind,
		Hints: DimensionHints{
			AspectRatio: v.GetFloat64("shape.aspect_ratio"),
			TaperRatio:  v.GetFloat64("shape.taper_ratio"),
			FixedLength: v.GetFloat64("shape.fixed_length"),
			FixedHeight: v.GetFloat64("shape.fixed_height"),
		},
		ExtraMass:  v.GetFloat64("flight.extra_mass"),
		SeamFactor: v.GetFloat64("flight.seam_factor"),
	}

	start := v.GetFloat64("flight.start_height")
	work := v.GetFloat64("flight.work_height")
	sc := Scenario{
		Name:          v.GetString("scenario.name"),
		Mode:          v.GetString("scenario.mode"),
		Calc:          calc,
		GasVolume:     v.GetFloat64("flight.gas_volume"),
		TargetPayload: v.GetFloat64("flight.target_payload"),
		Altitude:      start + work,
		Profile: Profile{
			Start: start,
			End:   start + work,
			Step:  v.GetFloat64("flight.step"),
		},
		MinAlt:         v.GetFloat64("optimize.min_alt"),
		MaxAlt:         v.GetFloat64("optimize.max_alt"),
		Tolerance:      v.GetFloat64("optimize.tolerance"),
		MaxEvaluations: v.GetInt("optimize.max_evaluations"),
		CSVPath:        v.GetString("output.csv"),
		JSONPath:       v.GetString("output.json"),
	}
	if sc.MaxAlt == 0 {
		sc.MaxAlt = atm.Constants.MaxAltitude
	}
	switch sc.Mode {
	case "volume", "payload", "profile", "optimal":
	default:
		return Scenario{}, fmt.Errorf("baloon: unknown scenario mode %q", sc.Mode)
	}
	return sc, nil
}
