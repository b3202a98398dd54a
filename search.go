package baloon

import (
	"fmt"
	"math"
)

// maxSolveIterations caps every bounded numerical search in the package.
// No search loop is permitted to run unbounded.
const maxSolveIterations = 200

// invφ is the inverse golden ratio, (√5−1)/2.
var invφ = (math.Sqrt(5) - 1) / 2

// SearchStatus reports how a bounded search terminated.
type SearchStatus uint8

const (
	// StatusConverged means successive estimates got within tolerance.
	StatusConverged SearchStatus = iota + 1
	// StatusMaxIterations means the evaluation cap was hit first; the
	// best-found point is still returned.
	StatusMaxIterations
	// StatusBoundary means the search ran into an edge of its interval:
	// the objective has no interior optimum there.
	StatusBoundary
)

func (s SearchStatus) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max_iterations"
	case StatusBoundary:
		return "boundary"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Bisect finds the root of f within [lo, hi] by bisection. The function
// must change sign over the bracket; iteration stops when the bracket
// shrinks below xtol or maxIter halvings have run, whichever first.
// Failure to bracket or to converge returns *ConvergenceError.
func Bisect(f func(float64) float64, lo, hi, xtol float64, maxIter int) (float64, int, error) {
	if lo >= hi {
		return 0, 0, &ConvergenceError{Reason: fmt.Sprintf("empty bracket [%g, %g]", lo, hi)}
	}
	fLo, fHi := f(lo), f(hi)
	if fLo == 0 {
		return lo, 0, nil
	}
	if fHi == 0 {
		return hi, 0, nil
	}
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return 0, 0, &ConvergenceError{Reason: fmt.Sprintf("no sign change over [%g, %g]", lo, hi)}
	}
	var iter int
	for iter = 0; iter < maxIter; iter++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if fMid == 0 || hi-lo < xtol {
			return mid, iter + 1, nil
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, iter, &ConvergenceError{Iterations: iter, Reason: fmt.Sprintf("bracket still %g wide (tolerance %g)", hi-lo, xtol)}
}

// GoldenSection maximizes f over [lo, hi] by golden-section search.
// It stops once the bracket shrinks below xtol or maxEval evaluations have
// been spent. The status distinguishes a genuine interior optimum from a
// boundary hit (monotonic objective) and from running out of budget;
// the best point found so far is returned in every case.
func GoldenSection(f func(float64) float64, lo, hi, xtol float64, maxEval int) (x, fx float64, evals int, status SearchStatus) {
	a, b := lo, hi
	c := b - invφ*(b-a)
	d := a + invφ*(b-a)
	fc, fd := f(c), f(d)
	evals = 2
	for b-a > xtol && evals < maxEval {
		if fc > fd {
			b = d
			d, fd = c, fc
			c = b - invφ*(b-a)
			fc = f(c)
		} else {
			a = c
			c, fc = d, fd
			d = a + invφ*(b-a)
			fd = f(d)
		}
		evals++
	}
	if fc > fd {
		x, fx = c, fc
	} else {
		x, fx = d, fd
	}
	switch {
	case b-a > xtol:
		status = StatusMaxIterations
	case x-lo <= 2*xtol || hi-x <= 2*xtol:
		status = StatusBoundary
	default:
		status = StatusConverged
	}
	return x, fx, evals, status
}
