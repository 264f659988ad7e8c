package svt

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Axis names a component of a Point, Curve or Surface.
type Axis int

// Axes in component order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// components holds the x, y and optional z members shared by Point, Curve
// and Surface.
type components []Measured

func (cs components) component(a Axis) (Measured, error) {
	if a < 0 || int(a) >= len(cs) {
		return Measured{}, fmt.Errorf("svt: no %s component in %d-D collection: %w", a, len(cs), ErrInvalidDimensionality)
	}
	return cs[a], nil
}

func (cs components) clone() components {
	out := make(components, len(cs))
	for i, q := range cs {
		out[i] = q.Clone()
	}
	return out
}

// matched returns a copy with component i expressed in ms[i].
func (cs components) matched(ms []Measure) (components, error) {
	if len(ms) != len(cs) {
		return nil, fmt.Errorf("svt: %d units for %d components: %w", len(ms), len(cs), ErrInvalidDimensionality)
	}
	out := cs.clone()
	for i := range out {
		if err := out[i].MatchUnitTo(ms[i]); err != nil {
			return nil, fmt.Errorf("svt: %s component: %w", Axis(i), err)
		}
	}
	return out, nil
}

func buildComponents(x, y Measured, z []Measured) (components, error) {
	if len(z) > 1 {
		return nil, fmt.Errorf("svt: %d components: %w", 2+len(z), ErrInvalidDimensionality)
	}
	return append(components{x, y}, z...), nil
}

// -------------------------------------------------------------------
// Point
// -------------------------------------------------------------------

// Point is a coordinate tuple of scalar quantities.
type Point struct {
	cs components
}

// NewPoint builds a 2-D point, or a 3-D point when z is given.
func NewPoint(x, y Measured, z ...Measured) (Point, error) {
	cs, err := buildComponents(x, y, z)
	if err != nil {
		return Point{}, err
	}
	for i, q := range cs {
		if q.IsArray() {
			return Point{}, fmt.Errorf("svt: point %s component has shape %v: %w", Axis(i), q.Shape(), ErrShapeMismatch)
		}
	}
	return Point{cs: cs}, nil
}

// Dim returns 2 or 3.
func (p Point) Dim() int { return len(p.cs) }

// Component returns the component on axis a.
func (p Point) Component(a Axis) (Measured, error) { return p.cs.component(a) }

// X returns the x component.
func (p Point) X() Measured { return p.cs[AxisX] }

// Y returns the y component.
func (p Point) Y() Measured { return p.cs[AxisY] }

// Z returns the z component of a 3-D point.
func (p Point) Z() (Measured, bool) {
	if len(p.cs) < 3 {
		return Measured{}, false
	}
	return p.cs[AxisZ], true
}

// -------------------------------------------------------------------
// Curve
// -------------------------------------------------------------------

// Curve is a sampled 2-D or 3-D curve. All components are one-dimensional
// arrays of the same length.
type Curve struct {
	cs components
}

// NewCurve builds a 2-D curve, or a 3-D curve when z is given.
func NewCurve(x, y Measured, z ...Measured) (Curve, error) {
	cs, err := buildComponents(x, y, z)
	if err != nil {
		return Curve{}, err
	}
	for i, q := range cs {
		if len(q.Shape()) != 1 {
			return Curve{}, fmt.Errorf("svt: curve %s component has shape %v: %w", Axis(i), q.Shape(), ErrShapeMismatch)
		}
		if q.Len() != x.Len() {
			return Curve{}, fmt.Errorf("svt: curve %s has %d samples, x has %d: %w", Axis(i), q.Len(), x.Len(), ErrShapeMismatch)
		}
	}
	return Curve{cs: cs}, nil
}

// Dim returns 2 or 3.
func (c Curve) Dim() int { return len(c.cs) }

// Len returns the number of samples.
func (c Curve) Len() int {
	if len(c.cs) == 0 {
		return 0
	}
	return c.cs[0].Len()
}

// Component returns the component on axis a.
func (c Curve) Component(a Axis) (Measured, error) { return c.cs.component(a) }

// X returns the x component.
func (c Curve) X() Measured { return c.cs[AxisX] }

// Y returns the y component.
func (c Curve) Y() Measured { return c.cs[AxisY] }

// Z returns the z component of a 3-D curve.
func (c Curve) Z() (Measured, bool) {
	if len(c.cs) < 3 {
		return Measured{}, false
	}
	return c.cs[AxisZ], true
}

// MatchUnits returns a copy of c with each component expressed in the
// corresponding measure. One measure per component is required.
func (c Curve) MatchUnits(ms ...Measure) (Curve, error) {
	cs, err := c.cs.matched(ms)
	if err != nil {
		return Curve{}, err
	}
	return Curve{cs: cs}, nil
}

// -------------------------------------------------------------------
// Surface
// -------------------------------------------------------------------

// Surface is a sampled surface: x, y and z arrays of one common shape,
// usually a 2-D grid.
type Surface struct {
	cs components
}

// NewSurface builds a surface from three equally shaped arrays.
func NewSurface(x, y, z Measured) (Surface, error) {
	cs := components{x, y, z}
	for i, q := range cs {
		if !q.IsArray() {
			return Surface{}, fmt.Errorf("svt: surface %s component is a scalar: %w", Axis(i), ErrShapeMismatch)
		}
		if !slices.Equal(q.Shape(), x.Shape()) {
			return Surface{}, fmt.Errorf("svt: surface %s has shape %v, x has %v: %w", Axis(i), q.Shape(), x.Shape(), ErrShapeMismatch)
		}
	}
	return Surface{cs: cs}, nil
}

// Component returns the component on axis a.
func (s Surface) Component(a Axis) (Measured, error) { return s.cs.component(a) }

// Shape returns the common shape of the components.
func (s Surface) Shape() []int { return s.cs[AxisX].Shape() }

// MatchUnits returns a copy of s with x, y and z expressed in the given
// measures.
func (s Surface) MatchUnits(x, y, z Measure) (Surface, error) {
	cs, err := s.cs.matched([]Measure{x, y, z})
	if err != nil {
		return Surface{}, err
	}
	return Surface{cs: cs}, nil
}

// -------------------------------------------------------------------
// Curve algebra
// -------------------------------------------------------------------

// FindCommonRange returns the intersection of the domains of c1 and c2 on
// axis, expressed in c1's unit for that axis. The axes must have
// combinable units.
func FindCommonRange(c1, c2 Curve, axis Axis) (lo, hi Measured, err error) {
	a1, a2, err := reconciledAxes(c1, c2, axis, func(q Measured) Measure { return q.Measure() })
	if err != nil {
		return Measured{}, Measured{}, err
	}
	l, h, err := intersect(a1.Value(), a2.Value(), axis)
	if err != nil {
		return Measured{}, Measured{}, err
	}
	return New(Scalar(l), a1.Measure()), New(Scalar(h), a1.Measure()), nil
}

// FindCommonAxis clips the axis of both curves to their common range and
// returns the sorted union of the remaining samples, without duplicates, in
// canonical form.
func FindCommonAxis(c1, c2 Curve, axis Axis) (Measured, error) {
	a1, a2, err := reconciledAxes(c1, c2, axis, func(q Measured) Measure { return q.Unit() })
	if err != nil {
		return Measured{}, err
	}
	v1, v2 := a1.Value(), a2.Value()
	lo, hi, err := intersect(v1, v2, axis)
	if err != nil {
		return Measured{}, err
	}
	var xs []float64
	for _, x := range slices.Concat(v1.Floats(), v2.Floats()) {
		if x >= lo && x <= hi {
			xs = append(xs, x)
		}
	}
	slices.Sort(xs)
	xs = slices.CompactFunc(xs, nearlyEqual)
	Logger().Debug("svt: common axis", "axis", axis.String(), "samples", len(xs), "lo", lo, "hi", hi)
	return New(Array(xs...), a1.Unit()), nil
}

// reconciledAxes returns copies of the axis components of c1 and c2, both
// expressed in target(c1's axis).
func reconciledAxes(c1, c2 Curve, axis Axis, target func(Measured) Measure) (Measured, Measured, error) {
	a1, err := c1.Component(axis)
	if err != nil {
		return Measured{}, Measured{}, err
	}
	a2, err := c2.Component(axis)
	if err != nil {
		return Measured{}, Measured{}, err
	}
	a1, a2 = a1.Clone(), a2.Clone()
	m := target(a1)
	if err := a1.MatchUnitTo(m); err != nil {
		return Measured{}, Measured{}, err
	}
	if err := a2.MatchUnitTo(m); err != nil {
		return Measured{}, Measured{}, fmt.Errorf("svt: %s axis: %w", axis, err)
	}
	return a1, a2, nil
}

func intersect(v1, v2 Value, axis Axis) (lo, hi float64, err error) {
	if v1.Len() == 0 || v2.Len() == 0 {
		return 0, 0, fmt.Errorf("svt: %s axis has no samples: %w", axis, ErrEmptyRange)
	}
	lo = math.Max(v1.Min(), v2.Min())
	hi = math.Min(v1.Max(), v2.Max())
	if lo > hi {
		return 0, 0, fmt.Errorf("svt: %s domains [%g, %g] and [%g, %g] do not overlap: %w",
			axis, v1.Min(), v1.Max(), v2.Min(), v2.Max(), ErrEmptyRange)
	}
	return lo, hi, nil
}

// nearlyEqual treats samples that differ only by conversion round-off as
// the same sample.
func nearlyEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e-12*scale
}

// InterpolateBasedOnNewX resamples c onto newX by piecewise-linear
// interpolation of y (and z). Samples outside c's x domain take the value of
// the nearest end sample. The x axis of c is reconciled with newX's unit
// first; the other components keep their units.
//
// Samples of c whose x is not finite are gaps and take no part in the
// interpolation. A non-finite newX sample yields NaN. When c has repeated x
// samples the first one wins.
func InterpolateBasedOnNewX(c Curve, newX Measured) (Curve, error) {
	if len(newX.Shape()) != 1 {
		return Curve{}, fmt.Errorf("svt: interpolate onto shape %v: %w", newX.Shape(), ErrShapeMismatch)
	}
	x := c.X().Clone()
	if err := x.MatchUnitTo(newX.Measure()); err != nil {
		return Curve{}, fmt.Errorf("svt: x axis: %w", err)
	}
	xp, idx := sortedSamples(x.Floats())
	if len(xp) == 0 {
		return Curve{}, fmt.Errorf("svt: interpolate curve without finite x samples: %w", ErrEmptyRange)
	}
	at := newX.Floats()

	out := components{newX.Clone()}
	for _, comp := range c.cs[1:] {
		ys, err := resample(xp, gather(comp.Floats(), idx), at)
		if err != nil {
			return Curve{}, err
		}
		out = append(out, New(Array(ys...), comp.Measure()))
	}
	if dropped := c.Len() - len(xp); dropped > 0 {
		Logger().Warn("svt: interpolate skipped samples without a finite x", "skipped", dropped, "samples", c.Len())
	}
	Logger().Debug("svt: interpolate", "samples", len(xp), "targets", len(at))
	return Curve{cs: out}, nil
}

// sortedSamples returns the finite values of xs in strictly ascending order
// together with their positions in xs.
func sortedSamples(xs []float64) ([]float64, []int) {
	var finite []float64
	var pos []int
	for i, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
			pos = append(pos, i)
		}
	}
	order := make([]int, len(finite))
	floats.ArgsortStable(finite, order)

	var out []float64
	var idx []int
	for i, x := range finite {
		if n := len(out); n > 0 && out[n-1] == x {
			continue
		}
		out = append(out, x)
		idx = append(idx, pos[order[i]])
	}
	return out, idx
}

func gather(xs []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

// resample evaluates the piecewise-linear function through (xp, fp) at each
// of at. xp must be strictly ascending and non-empty.
func resample(xp, fp, at []float64) ([]float64, error) {
	out := make([]float64, len(at))
	if len(xp) == 1 {
		for i, x := range at {
			out[i] = fp[0]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				out[i] = math.NaN()
			}
		}
		return out, nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xp, fp); err != nil {
		return nil, fmt.Errorf("svt: fit %d samples: %w", len(xp), err)
	}
	for i, x := range at {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out[i] = math.NaN()
			continue
		}
		out[i] = pl.Predict(x)
	}
	return out, nil
}

// MinCurve returns the point-wise minimum of two 2-D curves over their
// common x domain. Both curves are resampled onto the union of their x
// samples within that domain; the result is expressed in c1's units.
func MinCurve(c1, c2 Curve) (Curve, error) {
	return extremum(c1, c2, math.Min)
}

// MaxCurve returns the point-wise maximum of two 2-D curves, see MinCurve.
func MaxCurve(c1, c2 Curve) (Curve, error) {
	return extremum(c1, c2, math.Max)
}

func extremum(c1, c2 Curve, pick func(a, b float64) float64) (Curve, error) {
	if c1.Dim() != 2 || c2.Dim() != 2 {
		return Curve{}, fmt.Errorf("svt: min/max needs two 2-D curves, got %d-D and %d-D: %w",
			c1.Dim(), c2.Dim(), ErrInvalidDimensionality)
	}
	x, err := FindCommonAxis(c1, c2, AxisX)
	if err != nil {
		return Curve{}, err
	}
	i1, err := InterpolateBasedOnNewX(c1, x)
	if err != nil {
		return Curve{}, err
	}
	i2, err := InterpolateBasedOnNewX(c2, x)
	if err != nil {
		return Curve{}, err
	}
	y1 := i1.Y()
	y2 := i2.Y().Clone()
	if err := y2.MatchUnitTo(y1.Measure()); err != nil {
		return Curve{}, fmt.Errorf("svt: y axis: %w", err)
	}
	y, err := Zip(y1.Value(), y2.Value(), pick)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(x, New(y, y1.Measure()))
}

// Envelope folds MinCurve and MaxCurve over two or more 2-D curves. The
// result spans the domain common to all of them.
func Envelope(curves ...Curve) (lo, hi Curve, err error) {
	if len(curves) < 2 {
		return Curve{}, Curve{}, fmt.Errorf("svt: envelope of %d curves: %w", len(curves), ErrInvalidDimensionality)
	}
	lo, hi = curves[0], curves[0]
	for _, c := range curves[1:] {
		if lo, err = MinCurve(lo, c); err != nil {
			return Curve{}, Curve{}, err
		}
		if hi, err = MaxCurve(hi, c); err != nil {
			return Curve{}, Curve{}, err
		}
	}
	return lo, hi, nil
}
