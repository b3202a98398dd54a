package baloon

import (
	"bytes"
	"errors"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalHeightSyntheticObjective(t *testing.T) {
	// A constructed objective with a known analytic optimum at 2500 m.
	opts := OptimizeOptions{
		Tolerance: 1,
		Objective: func(r Result) float64 {
			return -(r.Altitude - 2500) * (r.Altitude - 2500)
		},
	}
	opt, err := heliumSphere().OptimalHeight(10, 0, 5000, opts)
	require.NoError(t, err)
	assert.Equal(t, StatusConverged, opt.Status)
	assert.InDelta(t, 2500, opt.Altitude, 2)
	assert.Equal(t, opt.Altitude, opt.Best.Altitude)
}

func TestOptimalHeightPayloadIsBoundary(t *testing.T) {
	// With a fixed ground fill, payload only falls with altitude: net
	// lift shrinks and the envelope grows. The optimizer must terminate
	// at the lower edge and say so.
	opt, err := heliumSphere().OptimalHeight(10, 0, 3000, OptimizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, StatusBoundary, opt.Status)
	assert.InDelta(t, 0, opt.Altitude, 5)
}

func TestOptimalHeightEvaluationCap(t *testing.T) {
	opt, err := heliumSphere().OptimalHeight(10, 0, 11000, OptimizeOptions{
		Tolerance:      1e-9,
		MaxEvaluations: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusMaxIterations, opt.Status)
	assert.Equal(t, 8, opt.Evaluations)
	// Best-effort answer is still a real evaluation.
	assert.Positive(t, opt.Best.SurfaceArea)
}

func TestOptimalHeightBoundsChecked(t *testing.T) {
	c := heliumSphere()
	_, err := c.OptimalHeight(10, 3000, 1000, OptimizeOptions{})
	require.Error(t, err)

	var domainErr *DomainError
	_, err = c.OptimalHeight(10, -100, 1000, OptimizeOptions{})
	require.True(t, errors.As(err, &domainErr), "%v", err)
	_, err = c.OptimalHeight(10, 0, 20000, OptimizeOptions{})
	require.True(t, errors.As(err, &domainErr), "%v", err)
}

func TestOptimalHeightLogsIterations(t *testing.T) {
	var buf bytes.Buffer
	opts := OptimizeOptions{Logger: kitlog.NewLogfmtLogger(&buf)}
	_, err := heliumSphere().OptimalHeight(10, 0, 3000, opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "altitude=")
	assert.Contains(t, buf.String(), "objective=")
}

func TestOptimalHeightStatusInJSON(t *testing.T) {
	opt, err := heliumSphere().OptimalHeight(10, 0, 3000, OptimizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, opt.Status.String(), opt.StatusText)
}
