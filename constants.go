package baloon

// Constants groups the physical constants the models depend on. It is
// read-only configuration: components receive a copy and never mutate it,
// so tests can substitute alternative tables (different gravity, different
// lapse rate) without touching global state.
type Constants struct {
	Gravity            float64 // m/s²
	AirGasConstant     float64 // specific gas constant of dry air, J/(kg·K)
	LapseRate          float64 // tropospheric temperature lapse rate, K/m
	SeaLevelPressure   float64 // Pa
	SeaLevelAirDensity float64 // kg/m³
	KelvinOffset       float64 // 0 °C in Kelvin
	MaxAltitude        float64 // ceiling of the atmospheric model, m
}

// Earth is the standard-atmosphere constants table.
var Earth = Constants{
	Gravity:            9.80665,
	AirGasConstant:     287.05,
	LapseRate:          0.0065,
	SeaLevelPressure:   101325.0,
	SeaLevelAirDensity: 1.225,
	KelvinOffset:       273.15,
	MaxAltitude:        11000, // troposphere only, cf. Atmosphere
}
