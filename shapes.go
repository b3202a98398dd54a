package baloon

import (
	"fmt"
	"math"
	"strings"
)

// ShapeKind enumerates the envelope shapes.
type ShapeKind uint8

const (
	// KindSphere is the classic spherical envelope.
	KindSphere ShapeKind = iota + 1
	// KindPear is a hemispherical cap over a truncated cone, wide side up.
	KindPear
	// KindCigar is a cylinder closed by two hemispherical ends.
	KindCigar
	// KindPillow is two rectangular panels welded along their edges.
	KindPillow
	// KindCylinder is a straight cylinder with flat ends.
	KindCylinder
	// KindTorus is a closed ring envelope.
	KindTorus
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPear:
		return "pear"
	case KindCigar:
		return "cigar"
	case KindPillow:
		return "pillow"
	case KindCylinder:
		return "cylinder"
	case KindTorus:
		return "torus"
	default:
		return fmt.Sprintf("shape(%d)", uint8(k))
	}
}

// ShapeKindFromString returns the shape kind from its name.
func ShapeKindFromString(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sphere":
		return KindSphere, nil
	case "pear":
		return KindPear, nil
	case "cigar":
		return KindCigar, nil
	case "pillow":
		return KindPillow, nil
	case "cylinder":
		return KindCylinder, nil
	case "torus":
		return KindTorus, nil
	default:
		return 0, &InvalidShapeParamsError{Reason: "unknown shape '" + name + "'"}
	}
}

// Shape is the capability contract every envelope variant satisfies.
// Volume and SurfaceArea assume a validated receiver; callers go through
// Validate first (the calculator and the inverse mapping always do).
type Shape interface {
	Kind() ShapeKind
	Validate() error
	Volume() float64      // m³
	SurfaceArea() float64 // m²
}

// Sphere envelope.
type Sphere struct {
	Radius float64
}

func (s Sphere) Kind() ShapeKind { return KindSphere }

func (s Sphere) Validate() error {
	if s.Radius <= 0 {
		return &InvalidShapeParamsError{Kind: KindSphere, Reason: "radius must be positive"}
	}
	return nil
}

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(s.Radius, 3)
}

func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Pear envelope: a hemisphere of TopRadius caps a truncated cone which
// tapers to BottomRadius over the lower 60% of the height.
type Pear struct {
	Height       float64
	TopRadius    float64
	BottomRadius float64
}

func (p Pear) Kind() ShapeKind { return KindPear }

func (p Pear) Validate() error {
	if p.Height <= 0 || p.TopRadius <= 0 || p.BottomRadius <= 0 {
		return &InvalidShapeParamsError{Kind: KindPear, Reason: "all dimensions must be positive"}
	}
	if p.TopRadius >= p.Height {
		return &InvalidShapeParamsError{Kind: KindPear, Reason: "top radius must be smaller than height"}
	}
	if p.BottomRadius > p.TopRadius {
		return &InvalidShapeParamsError{Kind: KindPear, Reason: "bottom radius must not exceed top radius"}
	}
	return nil
}

func (p Pear) Volume() float64 {
	dome := 2.0 / 3.0 * math.Pi * math.Pow(p.TopRadius, 3)
	hCone := 0.6 * p.Height
	cone := math.Pi * hCone / 3 * (p.TopRadius*p.TopRadius + p.TopRadius*p.BottomRadius + p.BottomRadius*p.BottomRadius)
	return dome + cone
}

func (p Pear) SurfaceArea() float64 {
	dome := 2 * math.Pi * p.TopRadius * p.TopRadius
	hCone := 0.6 * p.Height
	slant := math.Hypot(hCone, p.TopRadius-p.BottomRadius)
	return dome + math.Pi*(p.TopRadius+p.BottomRadius)*slant
}

// Cigar envelope: a cylinder of Length−2·Radius closed by two hemispheres.
type Cigar struct {
	Length float64
	Radius float64
}

func (c Cigar) Kind() ShapeKind { return KindCigar }

func (c Cigar) Validate() error {
	if c.Length <= 0 || c.Radius <= 0 {
		return &InvalidShapeParamsError{Kind: KindCigar, Reason: "all dimensions must be positive"}
	}
	if c.Length < 2*c.Radius {
		return &InvalidShapeParamsError{Kind: KindCigar, Reason: "length must be at least twice the radius"}
	}
	return nil
}

func (c Cigar) Volume() float64 {
	barrel := math.Pi * c.Radius * c.Radius * (c.Length - 2*c.Radius)
	return barrel + 4.0/3.0*math.Pi*math.Pow(c.Radius, 3)
}

func (c Cigar) SurfaceArea() float64 {
	barrel := 2 * math.Pi * c.Radius * (c.Length - 2*c.Radius)
	return barrel + 4*math.Pi*c.Radius*c.Radius
}

// Pillow envelope: two Length×Width panels, Thickness is the inflated gap.
type Pillow struct {
	Length    float64
	Width     float64
	Thickness float64
}

func (p Pillow) Kind() ShapeKind { return KindPillow }

func (p Pillow) Validate() error {
	if p.Length <= 0 || p.Width <= 0 || p.Thickness <= 0 {
		return &InvalidShapeParamsError{Kind: KindPillow, Reason: "all dimensions must be positive"}
	}
	return nil
}

func (p Pillow) Volume() float64 {
	return p.Length * p.Width * p.Thickness
}

// SurfaceArea counts the two panels only; the welded edge adds no material.
func (p Pillow) SurfaceArea() float64 {
	return 2 * p.Length * p.Width
}

// Cylinder envelope with flat closed ends.
type Cylinder struct {
	Radius float64
	Height float64
}

func (c Cylinder) Kind() ShapeKind { return KindCylinder }

func (c Cylinder) Validate() error {
	if c.Radius <= 0 || c.Height <= 0 {
		return &InvalidShapeParamsError{Kind: KindCylinder, Reason: "all dimensions must be positive"}
	}
	return nil
}

func (c Cylinder) Volume() float64 {
	return math.Pi * c.Radius * c.Radius * c.Height
}

func (c Cylinder) SurfaceArea() float64 {
	return 2*math.Pi*c.Radius*c.Height + 2*math.Pi*c.Radius*c.Radius
}

// Torus envelope.
type Torus struct {
	MajorRadius float64 // center of tube to axis
	MinorRadius float64 // tube radius
}

func (t Torus) Kind() ShapeKind { return KindTorus }

func (t Torus) Validate() error {
	if t.MajorRadius <= 0 || t.MinorRadius <= 0 {
		return &InvalidShapeParamsError{Kind: KindTorus, Reason: "all dimensions must be positive"}
	}
	if t.MinorRadius >= t.MajorRadius {
		return &InvalidShapeParamsError{Kind: KindTorus, Reason: "tube radius must be smaller than ring radius"}
	}
	return nil
}

func (t Torus) Volume() float64 {
	return 2 * math.Pi * math.Pi * t.MajorRadius * t.MinorRadius * t.MinorRadius
}

func (t Torus) SurfaceArea() float64 {
	return 4 * math.Pi * math.Pi * t.MajorRadius * t.MinorRadius
}

// DimensionHints carries the aspect-ratio assumptions used by the inverse
// mapping. Zero values select the shape's default proportions.
type DimensionHints struct {
	// AspectRatio is the shape's primary proportion: height/radius for
	// pear and cylinder, length/radius for cigar, length/width for
	// pillow, ring/tube radius for torus. Ignored for spheres.
	AspectRatio float64
	// TaperRatio is the pear's top/bottom radius ratio.
	TaperRatio float64
	// FixedLength pins the cigar's total length; the radius is then
	// solved numerically.
	FixedLength float64
	// FixedHeight pins the pear's height; the radii are then solved
	// numerically.
	FixedHeight float64
}

const (
	defaultCylinderAspect = 2.0 // height = 2·radius
	defaultCigarAspect    = 5.0 // length = 5·radius
	defaultPillowAspect   = 1.5 // length = 1.5·width
	defaultTorusAspect    = 4.0 // ring = 4·tube
	defaultPearAspect     = 2.5 // height = 2.5·top radius
	defaultPearTaper      = 2.0 // top = 2·bottom
)

// DimensionsFromVolume solves the inverse problem: concrete dimensions for
// a target internal volume under the hinted proportions. Shapes with a
// closed-form inverse use it directly; a pinned cigar length or pear height
// turns the problem into a monotonic 1-D root-find handled by Bisect.
func DimensionsFromVolume(kind ShapeKind, volume float64, hints DimensionHints) (Shape, error) {
	if volume <= 0 || math.IsNaN(volume) {
		return nil, &InvalidShapeParamsError{Kind: kind, Reason: "target volume must be positive"}
	}
	var shape Shape
	switch kind {
	case KindSphere:
		shape = Sphere{Radius: math.Cbrt(3 * volume / (4 * math.Pi))}
	case KindCylinder:
		k := hints.AspectRatio
		if k <= 0 {
			k = defaultCylinderAspect
		}
		r := math.Cbrt(volume / (math.Pi * k))
		shape = Cylinder{Radius: r, Height: k * r}
	case KindTorus:
		k := hints.AspectRatio
		if k <= 0 {
			k = defaultTorusAspect
		}
		r := math.Cbrt(volume / (2 * math.Pi * math.Pi * k))
		shape = Torus{MajorRadius: k * r, MinorRadius: r}
	case KindPillow:
		k := hints.AspectRatio
		if k <= 0 {
			k = defaultPillowAspect
		}
		// Gap fixed at half the width, so V = k·w²·(w/2).
		w := math.Cbrt(2 * volume / k)
		shape = Pillow{Length: k * w, Width: w, Thickness: volume / (k * w * w)}
	case KindCigar:
		var err error
		if shape, err = cigarFromVolume(volume, hints); err != nil {
			return nil, err
		}
	case KindPear:
		var err error
		if shape, err = pearFromVolume(volume, hints); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidShapeParamsError{Kind: kind, Reason: "unknown shape"}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func cigarFromVolume(volume float64, hints DimensionHints) (Shape, error) {
	if hints.FixedLength <= 0 {
		k := hints.AspectRatio
		if k <= 0 {
			k = defaultCigarAspect
		}
		if k < 2 {
			return nil, &InvalidShapeParamsError{Kind: KindCigar, Reason: "length/radius ratio must be at least 2"}
		}
		// V(r) = π r² (k−2) r + (4/3) π r³ scales as r³.
		r := math.Cbrt(volume / (math.Pi * (k - 2 + 4.0/3.0)))
		return Cigar{Length: k * r, Radius: r}, nil
	}
	// Pinned length: V(r) = π r² L − (2/3) π r³ is strictly increasing on
	// (0, L/2], maxing out at the sphere of radius L/2.
	l := hints.FixedLength
	if sphereMax := (Sphere{Radius: l / 2}).Volume(); volume > sphereMax {
		return nil, &ConvergenceError{Reason: fmt.Sprintf("volume %.3f m³ not bracketed: length %.3f m holds at most %.3f m³", volume, l, sphereMax)}
	}
	f := func(r float64) float64 {
		return Cigar{Length: l, Radius: r}.Volume() - volume
	}
	r, _, err := Bisect(f, l*1e-9, l/2, l*1e-10, maxSolveIterations)
	if err != nil {
		return nil, err
	}
	return Cigar{Length: l, Radius: r}, nil
}

func pearFromVolume(volume float64, hints DimensionHints) (Shape, error) {
	taper := hints.TaperRatio
	if taper < 1 {
		taper = defaultPearTaper
	}
	if hints.FixedHeight <= 0 {
		aspect := hints.AspectRatio
		if aspect <= 1 {
			aspect = defaultPearAspect
		}
		// Uniform scaling of the unit proportions keeps all ratios, so
		// the scale factor comes straight from the cube root.
		unit := Pear{Height: aspect, TopRadius: 1, BottomRadius: 1 / taper}
		scale := math.Cbrt(volume / unit.Volume())
		return Pear{Height: unit.Height * scale, TopRadius: scale, BottomRadius: scale / taper}, nil
	}
	// Pinned height: V is strictly increasing in the top radius, which is
	// capped just below the height to keep the shape valid.
	h := hints.FixedHeight
	rMax := h * (1 - 1e-9)
	if maxVol := (Pear{Height: h, TopRadius: rMax, BottomRadius: rMax / taper}).Volume(); volume > maxVol {
		return nil, &ConvergenceError{Reason: fmt.Sprintf("volume %.3f m³ not bracketed: height %.3f m holds at most %.3f m³", volume, h, maxVol)}
	}
	f := func(r float64) float64 {
		return Pear{Height: h, TopRadius: r, BottomRadius: r / taper}.Volume() - volume
	}
	r, _, err := Bisect(f, h*1e-9, rMax, h*1e-10, maxSolveIterations)
	if err != nil {
		return nil, err
	}
	return Pear{Height: h, TopRadius: r, BottomRadius: r / taper}, nil
}
