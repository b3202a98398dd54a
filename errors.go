package baloon

import "fmt"

// DomainError reports an altitude outside the atmospheric model's validity.
// The engine never extrapolates silently; callers must stay within bounds.
type DomainError struct {
	Altitude float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("baloon: altitude %.1f m outside model validity [%.0f, %.0f] m", e.Altitude, e.Min, e.Max)
}

// UnknownGasError reports an unsupported lifting gas identity.
type UnknownGasError struct {
	Name string
}

func (e *UnknownGasError) Error() string {
	return fmt.Sprintf("baloon: unknown gas %q", e.Name)
}

// InvalidShapeParamsError reports non-physical geometric parameters.
// It is raised before any arithmetic on the parameters happens.
type InvalidShapeParamsError struct {
	Kind   ShapeKind
	Reason string
}

func (e *InvalidShapeParamsError) Error() string {
	return fmt.Sprintf("baloon: invalid %s parameters: %s", e.Kind, e.Reason)
}

// ConvergenceError reports a bounded numerical search which failed to
// bracket its root or exhausted its iteration budget.
type ConvergenceError struct {
	Iterations int
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("baloon: search did not converge after %d iterations: %s", e.Iterations, e.Reason)
}

// InfeasibleError reports a configuration which cannot lift itself at any
// sampled altitude. Reported, never clipped to zero.
type InfeasibleError struct {
	Samples     int
	BestPayload float64
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("baloon: negative payload at all %d sampled altitudes (best %.3f kg)", e.Samples, e.BestPayload)
}
