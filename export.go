package baloon

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"altitude_m", "temperature_c", "pressure_pa", "air_density_kg_m3",
	"gas_density_kg_m3", "net_lift_per_m3", "gas_volume_m3",
	"required_volume_m3", "surface_area_m2", "envelope_mass_kg",
	"lift_kg", "lift_force_n", "payload_kg",
}

// WriteResultsCSV streams one row per altitude sample, in sample order.
func WriteResultsCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []float64{
			r.Altitude, r.TemperatureC, r.Pressure, r.AirDensity,
			r.GasDensity, r.NetLiftPerM3, r.GasVolume,
			r.RequiredVolume, r.SurfaceArea, r.EnvelopeMass,
			r.Lift, r.LiftForce, r.Payload,
		}
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Report is the JSON rendering of a calculation run, consumed by whatever
// sits downstream (tabulation, plotting, archival).
type Report struct {
	Scenario    string    `json:"scenario"`
	GeneratedAt time.Time `json:"generated_at"`
	Gas         string    `json:"gas"`
	Shape       string    `json:"shape"`
	Material    string    `json:"material"`
	Results     []Result  `json:"results,omitempty"`
	Optimum     *Optimum  `json:"optimum,omitempty"`
	Summary     *Summary  `json:"summary,omitempty"`
}

// NewReport stamps a report for the given calculator.
func NewReport(name string, c Calculator) Report {
	return Report{
		Scenario:    name,
		GeneratedAt: time.Now().UTC(),
		Gas:         c.Gas.Gas.Name,
		Shape:       c.Shape.String(),
		Material:    c.Material.Material.Name,
	}
}

// Write emits the report as indented JSON.
func (r Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
