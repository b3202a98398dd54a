package baloon

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// RevolutionProfile describes an envelope as a surface of revolution
// r(z) around the vertical axis. It is the single source of geometry the
// cut-pattern side consumes: volume, lateral area and the meridian length
// all come from the same profile, so they stay consistent.
type RevolutionProfile struct {
	Radius     func(z float64) float64
	ZMin, ZMax float64
	Samples    int // quadrature nodes, 0 selects 201
}

func (p RevolutionProfile) grid() ([]float64, []float64) {
	n := p.Samples
	if n < 3 {
		n = 201
	}
	if n%2 == 0 {
		n++ // Simpson needs an odd node count
	}
	z := make([]float64, n)
	r := make([]float64, n)
	dz := (p.ZMax - p.ZMin) / float64(n-1)
	for i := range z {
		z[i] = p.ZMin + float64(i)*dz
		r[i] = p.Radius(z[i])
	}
	return z, r
}

// Volume integrates π·r(z)² over the axis.
func (p RevolutionProfile) Volume() float64 {
	z, r := p.grid()
	f := make([]float64, len(z))
	for i := range z {
		f[i] = math.Pi * r[i] * r[i]
	}
	return integrate.Simpsons(z, f)
}

// LateralArea integrates 2π·r(z)·√(1+r′(z)²) over the axis. The derivative
// is taken by central differences on the quadrature grid.
func (p RevolutionProfile) LateralArea() float64 {
	z, r := p.grid()
	f := make([]float64, len(z))
	for i := range z {
		f[i] = 2 * math.Pi * r[i] * math.Sqrt(1+p.slope(z, r, i)*p.slope(z, r, i))
	}
	return integrate.Simpsons(z, f)
}

// MeridianLength integrates √(1+r′(z)²): the arc length of the profile
// curve, which sets the gore length of a flat pattern.
func (p RevolutionProfile) MeridianLength() float64 {
	z, r := p.grid()
	f := make([]float64, len(z))
	for i := range z {
		f[i] = math.Sqrt(1 + p.slope(z, r, i)*p.slope(z, r, i))
	}
	return integrate.Trapezoidal(z, f)
}

func (p RevolutionProfile) slope(z, r []float64, i int) float64 {
	switch i {
	case 0:
		return (r[1] - r[0]) / (z[1] - z[0])
	case len(z) - 1:
		return (r[i] - r[i-1]) / (z[i] - z[i-1])
	default:
		return (r[i+1] - r[i-1]) / (z[i+1] - z[i-1])
	}
}

// SphereProfile is the revolution profile of a sphere, for cross-checking
// the numeric machinery against the closed forms.
func SphereProfile(s Sphere) RevolutionProfile {
	return RevolutionProfile{
		Radius: func(z float64) float64 {
			d := s.Radius*s.Radius - (z-s.Radius)*(z-s.Radius)
			if d <= 0 {
				return 0
			}
			return math.Sqrt(d)
		},
		ZMin: 0,
		ZMax: 2 * s.Radius,
	}
}

// CigarProfile is the revolution profile of a cigar lying on its axis.
func CigarProfile(c Cigar) RevolutionProfile {
	return RevolutionProfile{
		Radius: func(z float64) float64 {
			switch {
			case z < c.Radius:
				d := c.Radius*c.Radius - (z-c.Radius)*(z-c.Radius)
				if d <= 0 {
					return 0
				}
				return math.Sqrt(d)
			case z > c.Length-c.Radius:
				d := c.Radius*c.Radius - (z-(c.Length-c.Radius))*(z-(c.Length-c.Radius))
				if d <= 0 {
					return 0
				}
				return math.Sqrt(d)
			default:
				return c.Radius
			}
		},
		ZMin: 0,
		ZMax: c.Length,
	}
}

// PearProfile is the revolution profile of the pear: linear taper over the
// lower 60% of the height, spherical dome above.
func PearProfile(p Pear) RevolutionProfile {
	hCone := 0.6 * p.Height
	return RevolutionProfile{
		Radius: func(z float64) float64 {
			if z <= hCone {
				return p.BottomRadius + (p.TopRadius-p.BottomRadius)*z/hCone
			}
			// Dome of radius TopRadius above the cone.
			d := p.TopRadius*p.TopRadius - (z-hCone)*(z-hCone)
			if d <= 0 {
				return 0
			}
			return math.Sqrt(d)
		},
		ZMin: 0,
		ZMax: hCone + p.TopRadius,
	}
}
