package baloon

import "math"

// Atmosphere is a standard-atmosphere approximation of the troposphere:
// linear temperature lapse from the ground and the barometric power law
//
//	T(h) = T_sea − L·h
//	P(h) = P0 · (T(h)/T_sea)^(g/(R·L))
//	ρ(h) = P(h) / (R·T(h))
//
// The formula is valid from sea level up to Constants.MaxAltitude (the
// tropopause, 11 km for Earth); any altitude outside [0, MaxAltitude]
// fails with *DomainError rather than extrapolating.
type Atmosphere struct {
	Constants         Constants
	GroundTemperature float64 // sea-level temperature, °C
}

// AirState is the ambient air at one altitude.
type AirState struct {
	Altitude    float64 // m
	Temperature float64 // K
	Pressure    float64 // Pa
	Density     float64 // kg/m³
}

// StandardAtmosphere returns the Earth atmosphere at 15 °C ground temperature.
func StandardAtmosphere() Atmosphere {
	return Atmosphere{Constants: Earth, GroundTemperature: 15}
}

func (a Atmosphere) seaLevelTemperature() float64 {
	return a.GroundTemperature + a.Constants.KelvinOffset
}

func (a Atmosphere) checkAltitude(altitude float64) error {
	if altitude < 0 || altitude > a.Constants.MaxAltitude || math.IsNaN(altitude) {
		return &DomainError{Altitude: altitude, Min: 0, Max: a.Constants.MaxAltitude}
	}
	return nil
}

// Temperature returns the ambient temperature in Kelvin at the given altitude.
func (a Atmosphere) Temperature(altitude float64) (float64, error) {
	if err := a.checkAltitude(altitude); err != nil {
		return 0, err
	}
	return a.seaLevelTemperature() - a.Constants.LapseRate*altitude, nil
}

// Pressure returns the ambient pressure in Pa at the given altitude.
func (a Atmosphere) Pressure(altitude float64) (float64, error) {
	t, err := a.Temperature(altitude)
	if err != nil {
		return 0, err
	}
	exponent := a.Constants.Gravity / (a.Constants.AirGasConstant * a.Constants.LapseRate)
	return a.Constants.SeaLevelPressure * math.Pow(t/a.seaLevelTemperature(), exponent), nil
}

// Density returns the ambient air density in kg/m³ at the given altitude.
// It is strictly decreasing over the valid altitude range.
func (a Atmosphere) Density(altitude float64) (float64, error) {
	state, err := a.At(altitude)
	if err != nil {
		return 0, err
	}
	return state.Density, nil
}

// At evaluates temperature, pressure and density in one pass.
func (a Atmosphere) At(altitude float64) (AirState, error) {
	t, err := a.Temperature(altitude)
	if err != nil {
		return AirState{}, err
	}
	p, err := a.Pressure(altitude)
	if err != nil {
		return AirState{}, err
	}
	return AirState{
		Altitude:    altitude,
		Temperature: t,
		Pressure:    p,
		Density:     p / (a.Constants.AirGasConstant * t),
	}, nil
}
