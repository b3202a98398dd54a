package baloon

import (
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// Objective maps one forward evaluation to the scalar being maximized.
type Objective func(Result) float64

// PayloadObjective is the default: maximize net payload.
func PayloadObjective(r Result) float64 {
	return r.Payload
}

// OptimizeOptions tunes the altitude search. The zero value selects a 1 m
// tolerance, the package evaluation cap, the payload objective and no
// iteration tracing.
type OptimizeOptions struct {
	Tolerance      float64 // m, convergence threshold on the altitude bracket
	MaxEvaluations int
	Objective      Objective
	Logger         kitlog.Logger
}

// Optimum is the outcome of an optimal-altitude search.
type Optimum struct {
	Altitude    float64      `json:"altitude_m"`
	Value       float64      `json:"objective"`
	Status      SearchStatus `json:"-"`
	StatusText  string       `json:"status"`
	Evaluations int          `json:"evaluations"`
	Best        Result       `json:"best"`
}

// OptimalHeight searches [minAlt, maxAlt] for the altitude maximizing the
// objective, by golden-section over repeated forward evaluations. Hitting
// the evaluation cap is reported in the status, not as an error: the
// best-found point is still actionable. A monotonic objective terminates
// at the interval edge with the boundary status.
func (c Calculator) OptimalHeight(gasVolume, minAlt, maxAlt float64, opts OptimizeOptions) (Optimum, error) {
	if minAlt >= maxAlt {
		return Optimum{}, fmt.Errorf("baloon: empty altitude interval [%g, %g]", minAlt, maxAlt)
	}
	if err := c.Atmosphere.checkAltitude(minAlt); err != nil {
		return Optimum{}, err
	}
	if err := c.Atmosphere.checkAltitude(maxAlt); err != nil {
		return Optimum{}, err
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = 1
	}
	maxEval := opts.MaxEvaluations
	if maxEval <= 0 {
		maxEval = maxSolveIterations
	}
	objective := opts.Objective
	if objective == nil {
		objective = PayloadObjective
	}

	// Surface configuration errors before the search starts; inside the
	// loop a failed evaluation only demotes its altitude.
	if _, err := c.AtAltitude(minAlt, gasVolume); err != nil {
		return Optimum{}, err
	}

	f := func(h float64) float64 {
		r, err := c.AtAltitude(h, gasVolume)
		if err != nil {
			return math.Inf(-1)
		}
		v := objective(r)
		if opts.Logger != nil {
			opts.Logger.Log("altitude", fmt.Sprintf("%.1f", h), "objective", fmt.Sprintf("%.4f", v))
		}
		return v
	}

	alt, val, evals, status := GoldenSection(f, minAlt, maxAlt, tol, maxEval)
	best, err := c.AtAltitude(alt, gasVolume)
	if err != nil {
		return Optimum{}, err
	}
	return Optimum{
		Altitude:    alt,
		Value:       val,
		Status:      status,
		StatusText:  status.String(),
		Evaluations: evals,
		Best:        best,
	}, nil
}
