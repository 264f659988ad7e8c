package svt

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Measured is a value bound to a unit.
//
// A quantity built from a Unit is held in canonical form: the value is
// expressed in the unit with its alternate prefix normalized (multiplier 1).
// A quantity built from a MiscUnit keeps the display value in the misc unit
// and the canonical value in the misc unit's canonical Unit.
//
// Operations return new quantities. Only Set, Append and ScaleInPlace modify
// the receiver, and they never write to storage another quantity can see.
type Measured struct {
	value   Value // canonical value, expressed in unit
	unit    Unit  // normalized
	misc    *MiscUnit
	display Value // value in misc; unused when misc is nil
}

// New binds v to a Unit or MiscUnit. The caller's unit is never modified.
func New(v Value, m Measure) Measured {
	switch mu := m.(type) {
	case MiscUnit:
		unit, mult := mu.canonical.normalized()
		canon := mu.ToCanonical(v)
		return Measured{
			value:   canon.Map(func(x float64) float64 { return x * mult }),
			unit:    unit,
			misc:    &mu,
			display: v.Map(identity),
		}
	case Unit:
		unit, mult := mu.normalized()
		return Measured{
			value: v.Map(func(x float64) float64 { return x * mult }),
			unit:  unit,
		}
	default:
		// Measure is sealed, so only the zero interface can get here.
		return Measured{value: v.Map(identity), unit: Dimensionless()}
	}
}

// NewScalar is shorthand for New(Scalar(x), m).
func NewScalar(x float64, m Measure) Measured { return New(Scalar(x), m) }

// NewArray is shorthand for New(Array(xs...), m).
func NewArray(xs []float64, m Measure) Measured { return New(Array(xs...), m) }

func identity(x float64) float64 { return x }

// IsCanonical reports whether the quantity is held in a Unit rather than a
// MiscUnit.
func (q Measured) IsCanonical() bool { return q.misc == nil }

// Unit returns the canonical unit. For a misc quantity this is the misc
// unit's canonical Unit.
func (q Measured) Unit() Unit { return q.unit }

// Misc returns the misc unit, if the quantity is held in one.
func (q Measured) Misc() (MiscUnit, bool) {
	if q.misc == nil {
		return MiscUnit{}, false
	}
	return *q.misc, true
}

// Measure returns the misc unit or the unit the quantity is displayed in.
func (q Measured) Measure() Measure {
	if q.misc != nil {
		return *q.misc
	}
	return q.unit
}

// Value returns the value as displayed: in the misc unit when there is one,
// otherwise the canonical value.
func (q Measured) Value() Value {
	if q.misc != nil {
		return q.display.Map(identity)
	}
	return q.value.Map(identity)
}

// Canonical returns the canonical value.
func (q Measured) Canonical() Value { return q.value.Map(identity) }

// Float returns the displayed scalar.
func (q Measured) Float() (float64, error) { return q.Value().Float() }

// Floats returns the displayed elements.
func (q Measured) Floats() []float64 { return q.Value().Floats() }

// Shape returns the value shape, nil for scalars.
func (q Measured) Shape() []int { return q.value.Shape() }

// Len returns the number of elements.
func (q Measured) Len() int { return q.value.Len() }

// IsArray reports whether the quantity holds an array.
func (q Measured) IsArray() bool { return q.value.IsArray() }

// Clone returns a deep copy.
func (q Measured) Clone() Measured {
	c := q
	c.value = q.value.Map(identity)
	if q.misc != nil {
		m := *q.misc
		c.misc = &m
		c.display = q.display.Map(identity)
	}
	return c
}

// -------------------------------------------------------------------
// Arithmetic
// -------------------------------------------------------------------

// Add returns q+o. Units must be combinable; the result is expressed at the
// coarser of the two prefixes. Two quantities in the same misc unit add
// their displayed values and stay in the misc unit; any other mix is carried
// out on canonical values.
func (q Measured) Add(o Measured) (Measured, error) {
	return q.combine(o, "add", func(a, b float64) float64 { return a + b })
}

// Sub returns q-o under the same rules as Add.
func (q Measured) Sub(o Measured) (Measured, error) {
	return q.combine(o, "subtract", func(a, b float64) float64 { return a - b })
}

func (q Measured) combine(o Measured, op string, f func(a, b float64) float64) (Measured, error) {
	if q.misc != nil && o.misc != nil && q.misc.Equal(*o.misc) {
		v, err := Zip(q.display, o.display, f)
		if err != nil {
			return Measured{}, fmt.Errorf("svt: %s: %w", op, err)
		}
		return New(v, *q.misc), nil
	}
	a, b, unit, err := q.unified(o)
	if err != nil {
		return Measured{}, fmt.Errorf("svt: %s: %w", op, err)
	}
	v, err := Zip(a, b, f)
	if err != nil {
		return Measured{}, fmt.Errorf("svt: %s: %w", op, err)
	}
	return New(v, unit), nil
}

// unified returns both canonical values rescaled to a common unit.
func (q Measured) unified(o Measured) (Value, Value, Unit, error) {
	m1, m2, unit, err := UnifyPrefixes(q.unit, o.unit)
	if err != nil {
		return Value{}, Value{}, Unit{}, err
	}
	a := q.value.Map(func(x float64) float64 { return x * m1 })
	b := o.value.Map(func(x float64) float64 { return x * m2 })
	return a, b, unit, nil
}

// Mul returns q*o on canonical values with the composed unit. Misc units
// have no multiplicative semantics, so two misc quantities cannot be
// multiplied.
func (q Measured) Mul(o Measured) (Measured, error) {
	if q.misc != nil && o.misc != nil {
		return Measured{}, fmt.Errorf("svt: multiply %s by %s: %w", q.misc, o.misc, ErrUnsupportedOperation)
	}
	v, err := Zip(q.value, o.value, func(a, b float64) float64 { return a * b })
	if err != nil {
		return Measured{}, fmt.Errorf("svt: multiply: %w", err)
	}
	return New(v, q.unit.Mul(o.unit)), nil
}

// Div returns q/o on canonical values with the composed unit.
func (q Measured) Div(o Measured) (Measured, error) {
	if q.misc != nil && o.misc != nil {
		return Measured{}, fmt.Errorf("svt: divide %s by %s: %w", q.misc, o.misc, ErrUnsupportedOperation)
	}
	v, err := Zip(q.value, o.value, func(a, b float64) float64 { return a / b })
	if err != nil {
		return Measured{}, fmt.Errorf("svt: divide: %w", err)
	}
	return New(v, q.unit.Div(o.unit)), nil
}

// Scale multiplies the value by a plain number, keeping the unit or misc
// unit.
func (q Measured) Scale(f float64) Measured {
	return q.remap(func(x float64) float64 { return x * f })
}

// DivScalar divides the value by a plain number, keeping the unit or misc
// unit.
func (q Measured) DivScalar(f float64) Measured {
	return q.remap(func(x float64) float64 { return x / f })
}

// Neg returns -q in the same form.
func (q Measured) Neg() Measured {
	return q.remap(func(x float64) float64 { return -x })
}

func (q Measured) remap(f func(float64) float64) Measured {
	if q.misc != nil {
		return New(q.display.Map(f), *q.misc)
	}
	return Measured{value: q.value.Map(f), unit: q.unit}
}

// Reciprocal returns 1/q in canonical form. x/q is q.Reciprocal().Scale(x).
func (q Measured) Reciprocal() Measured {
	return New(q.value.Map(func(x float64) float64 { return 1 / x }), q.unit.Inverse())
}

// Pow raises a canonical quantity to an integer power.
func (q Measured) Pow(n int) (Measured, error) {
	if q.misc != nil {
		return Measured{}, fmt.Errorf("svt: power of %s quantity: %w", q.misc, ErrUnsupportedOperation)
	}
	e := float64(n)
	return New(q.value.Map(func(x float64) float64 { return math.Pow(x, e) }), q.unit.Pow(n)), nil
}

// -------------------------------------------------------------------
// Comparison
// -------------------------------------------------------------------

// Compare compares q and o element-wise after prefix unification and
// returns -1, 0 or +1 per element. Two quantities in the same misc unit
// compare their displayed values.
func (q Measured) Compare(o Measured) ([]int, error) {
	var a, b Value
	if q.misc != nil && o.misc != nil && q.misc.Equal(*o.misc) {
		a, b = q.display, o.display
	} else {
		var err error
		a, b, _, err = q.unified(o)
		if err != nil {
			return nil, fmt.Errorf("svt: compare: %w", err)
		}
	}
	v, err := Zip(a, b, func(x, y float64) float64 {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
	if err != nil {
		return nil, fmt.Errorf("svt: compare: %w", err)
	}
	out := make([]int, v.Len())
	for i, s := range v.Floats() {
		out[i] = int(s)
	}
	return out, nil
}

func (q Measured) all(o Measured, ok func(int) bool) (bool, error) {
	cmp, err := q.Compare(o)
	if err != nil {
		return false, err
	}
	for _, c := range cmp {
		if !ok(c) {
			return false, nil
		}
	}
	return true, nil
}

// Less reports whether every element of q is less than o.
func (q Measured) Less(o Measured) (bool, error) {
	return q.all(o, func(c int) bool { return c < 0 })
}

// LessEqual reports whether every element of q is at most o.
func (q Measured) LessEqual(o Measured) (bool, error) {
	return q.all(o, func(c int) bool { return c <= 0 })
}

// Greater reports whether every element of q is greater than o.
func (q Measured) Greater(o Measured) (bool, error) {
	return q.all(o, func(c int) bool { return c > 0 })
}

// GreaterEqual reports whether every element of q is at least o.
func (q Measured) GreaterEqual(o Measured) (bool, error) {
	return q.all(o, func(c int) bool { return c >= 0 })
}

// Equal reports whether every element of q equals o.
func (q Measured) Equal(o Measured) (bool, error) {
	return q.all(o, func(c int) bool { return c == 0 })
}

// Min returns the smallest element as a scalar in the same form.
func (q Measured) Min() Measured {
	if q.misc != nil {
		return New(Scalar(q.display.Min()), *q.misc)
	}
	return Measured{value: Scalar(q.value.Min()), unit: q.unit}
}

// Max returns the largest element as a scalar in the same form.
func (q Measured) Max() Measured {
	if q.misc != nil {
		return New(Scalar(q.display.Max()), *q.misc)
	}
	return Measured{value: Scalar(q.value.Max()), unit: q.unit}
}

// -------------------------------------------------------------------
// Indexing
// -------------------------------------------------------------------

// At returns element i as a scalar quantity in the same form.
func (q Measured) At(i int) (Measured, error) {
	if q.misc != nil {
		x, err := q.display.Index(i)
		if err != nil {
			return Measured{}, err
		}
		return New(Scalar(x), *q.misc), nil
	}
	x, err := q.value.Index(i)
	if err != nil {
		return Measured{}, err
	}
	return Measured{value: Scalar(x), unit: q.unit}, nil
}

// Slice returns elements [i, j) of a one-dimensional quantity.
func (q Measured) Slice(i, j int) (Measured, error) {
	if q.misc != nil {
		v, err := q.display.Slice(i, j)
		if err != nil {
			return Measured{}, err
		}
		return New(v, *q.misc), nil
	}
	v, err := q.value.Slice(i, j)
	if err != nil {
		return Measured{}, err
	}
	return Measured{value: v, unit: q.unit}, nil
}

// Set assigns a displayed value to element i. The canonical value is
// derived through the same rule as construction.
func (q *Measured) Set(i int, x float64) error {
	if i < 0 || i >= q.Len() {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, q.Len())
	}
	e := New(Scalar(x), q.Measure())
	if !q.IsArray() {
		q.value, q.display = e.value, e.display
		return nil
	}
	q.value = setAt(q.value, i, e.value.at(0))
	if q.misc != nil {
		q.display = setAt(q.display, i, x)
	}
	return nil
}

func setAt(v Value, i int, x float64) Value {
	out := v.Map(identity)
	out.data[i] = x
	return out
}

// Append adds displayed values to the end of a one-dimensional quantity.
func (q *Measured) Append(xs ...float64) error {
	if len(q.value.shape) != 1 {
		return fmt.Errorf("svt: append to shape %v: %w", q.value.shape, ErrShapeMismatch)
	}
	e := New(Array(xs...), q.Measure())
	q.value = Array(slices.Concat(q.value.data, e.value.data)...)
	if q.misc != nil {
		q.display = Array(slices.Concat(q.display.data, xs)...)
	}
	return nil
}

// ScaleInPlace multiplies the value by f, keeping the unit or misc unit.
func (q *Measured) ScaleInPlace(f float64) {
	*q = q.Scale(f)
}

// -------------------------------------------------------------------
// Conversion
// -------------------------------------------------------------------

// ConvertTo re-expresses a canonical quantity at the named prefix, for
// example 2 m as 2000 mm. The displayed symbol is kept.
func (q Measured) ConvertTo(prefix string) (Measured, error) {
	if q.misc != nil {
		return Measured{}, fmt.Errorf("svt: convert %s quantity to prefix %q: %w", q.misc, prefix, ErrUnsupportedConversion)
	}
	unit, err := q.unit.UpdatePrefix(prefix)
	if err != nil {
		return Measured{}, err
	}
	return New(q.value, unit), nil
}

// MatchUnitTo converts q in place so that it is expressed in target, which
// may be a Unit or a MiscUnit. The target's canonical unit must be
// combinable with q's unit.
func (q *Measured) MatchUnitTo(target Measure) error {
	from := q.Measure().Label()
	switch t := target.(type) {
	case Unit:
		unit, _ := t.normalized()
		v, err := q.rescaled(unit)
		if err != nil {
			return err
		}
		q.value, q.unit, q.misc, q.display = v, unit, nil, Value{}
	case MiscUnit:
		if q.misc != nil && q.misc.Equal(t) {
			return nil
		}
		unit, mult := t.canonical.normalized()
		v, err := q.rescaled(unit)
		if err != nil {
			return err
		}
		q.display = t.FromCanonical(v.Map(func(x float64) float64 { return x / mult }))
		q.value, q.unit, q.misc = v, unit, &t
	default:
		return fmt.Errorf("svt: match unit to %T: %w", target, ErrIncompatibleUnits)
	}
	Logger().Debug("svt: matched unit", "from", from, "to", target.Label())
	return nil
}

// rescaled returns the canonical value expressed in unit.
func (q Measured) rescaled(unit Unit) (Value, error) {
	if !q.unit.Compare(unit).Combinable() {
		return Value{}, fmt.Errorf("svt: match %s to %s: %w", q.unit, unit, ErrIncompatibleUnits)
	}
	m := math.Pow10(q.unit.prefix.Power() - unit.prefix.Power())
	return q.value.Map(func(x float64) float64 { return x * m }), nil
}

// MatchUnitIn converts q in place to the collection entry stored under key.
// An empty key looks the entry up by q's dimension.
func (q *Measured) MatchUnitIn(c *UnitCollection, key string) error {
	if key == "" {
		key = q.unit.Dimension().Key()
	}
	m, err := c.Get(key)
	if err != nil {
		return err
	}
	return q.MatchUnitTo(m)
}

// -------------------------------------------------------------------
// Formatting
// -------------------------------------------------------------------

func (q Measured) String() string {
	return fmt.Sprintf("%v %s", q.Value(), q.Measure().Label())
}

// Format renders the displayed value with locale-aware number formatting,
// for example "1,500.25 mm" for English or "1.500,25 mm" for German.
func (q Measured) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	label := q.Measure().Label()
	v := q.Value()
	if !v.IsArray() {
		x, _ := v.Float()
		return p.Sprintf("%v %s", number.Decimal(x, number.MaxFractionDigits(6)), label)
	}
	parts := make([]string, 0, v.Len())
	for _, x := range v.Floats() {
		parts = append(parts, p.Sprint(number.Decimal(x, number.MaxFractionDigits(6))))
	}
	return "[" + strings.Join(parts, " ") + "] " + label
}
