package svt

import (
	"fmt"
	"math"
)

// Compatibility is the strength of the match between two units.
type Compatibility int

const (
	// Incompatible units measure different quantities and cannot be combined.
	Incompatible Compatibility = iota
	// SameDimensionDifferentScale units share symbol and dimension but not
	// the prefix. They combine after prefix unification.
	SameDimensionDifferentScale
	// Identical units are fully interchangeable.
	Identical
)

// Strength returns 0, 0.5 or 1.
func (c Compatibility) Strength() float64 {
	switch c {
	case Identical:
		return 1
	case SameDimensionDifferentScale:
		return 0.5
	default:
		return 0
	}
}

// Combinable reports whether values in both units can be added or compared.
func (c Compatibility) Combinable() bool { return c > Incompatible }

func (c Compatibility) String() string {
	switch c {
	case Identical:
		return "Identical"
	case SameDimensionDifferentScale:
		return "SameDimensionDifferentScale"
	default:
		return "Incompatible"
	}
}

// Measure is implemented by Unit and MiscUnit, the two things a Measured
// quantity can be expressed in.
type Measure interface {
	// CompatibleWith reports how well values in both measures combine.
	CompatibleWith(other Measure) Compatibility
	// CanonicalUnit returns the multiplicative unit values convert to.
	CanonicalUnit() Unit
	// ToCanonical converts display values into the canonical unit.
	ToCanonical(v Value) Value
	// FromCanonical converts canonical values back into display values.
	FromCanonical(v Value) Value
	// Label is the preferred display symbol, used for axis labels.
	Label() string

	measure()
}

// Unit is a multiplicative physical unit. It tracks a base form (symbol,
// dimension and prefix) used for dimensional bookkeeping and an alternate
// form (symbol and prefix) used for display, such as "N" for "kg*m/s^2".
//
// The ratio between the base and alternate prefixes is fixed when the unit
// is built and carried through every operation. Unit is an immutable value.
type Unit struct {
	symbol    Symbol
	dimension Dimension
	prefix    Prefix
	altSymbol Symbol
	altPrefix Prefix
	ratio     Prefix
}

// UnitOption configures NewUnit.
type UnitOption func(*unitOptions)

type unitOptions struct {
	altSymbol *Symbol
	altPrefix *Prefix
}

// WithAlternateSymbol sets the preferred display symbol.
// By default the base symbol is displayed.
func WithAlternateSymbol(s Symbol) UnitOption {
	return func(o *unitOptions) {
		o.altSymbol = &s
	}
}

// WithAlternatePrefix sets the prefix shown with the alternate symbol.
// By default it equals the base prefix.
func WithAlternatePrefix(p Prefix) UnitOption {
	return func(o *unitOptions) {
		o.altPrefix = &p
	}
}

// NewUnit builds a unit from its primitives.
//
// Example, the newton expressed over grams:
//
//	newton := svt.NewUnit(
//	    svt.NewSymbol([]string{"m", "g"}, []string{"s", "s"}),
//	    svt.MustDimension([]string{svt.Length, svt.Mass}, []string{svt.Time, svt.Time}),
//	    svt.MustPrefix("k"),
//	    svt.WithAlternateSymbol(svt.NewSymbol([]string{"N"}, nil)),
//	    svt.WithAlternatePrefix(svt.MustPrefix("")),
//	)
func NewUnit(symbol Symbol, dimension Dimension, prefix Prefix, opts ...UnitOption) Unit {
	var o unitOptions
	for _, opt := range opts {
		opt(&o)
	}
	u := Unit{
		symbol:    symbol,
		dimension: dimension,
		prefix:    prefix,
		altSymbol: symbol,
		altPrefix: prefix,
	}
	if o.altSymbol != nil {
		u.altSymbol = *o.altSymbol
	}
	if o.altPrefix != nil {
		u.altPrefix = *o.altPrefix
	}
	u.ratio = u.prefix.Div(u.altPrefix)
	return u
}

// Dimensionless returns the unit of pure numbers.
func Dimensionless() Unit {
	return NewUnit(Symbol{}, Dimension{}, Prefix{})
}

func (Unit) measure() {}

// Symbol returns the base symbol.
func (u Unit) Symbol() Symbol { return u.symbol }

// Dimension returns the unit's dimension.
func (u Unit) Dimension() Dimension { return u.dimension }

// Prefix returns the base prefix.
func (u Unit) Prefix() Prefix { return u.prefix }

// AlternateSymbol returns the preferred display symbol.
func (u Unit) AlternateSymbol() Symbol { return u.altSymbol }

// AlternatePrefix returns the prefix of the display form.
func (u Unit) AlternatePrefix() Prefix { return u.altPrefix }

// PrefixRatio returns Prefix()/AlternatePrefix().
func (u Unit) PrefixRatio() Prefix { return u.ratio }

// HasAlternate reports whether the display symbol differs from the base
// symbol.
func (u Unit) HasAlternate() bool { return !u.altSymbol.Equal(u.symbol) }

// Mul composes u*v. Base and alternate pairs are combined independently.
func (u Unit) Mul(v Unit) Unit {
	return compose(
		u.symbol.Mul(v.symbol),
		u.dimension.Mul(v.dimension),
		u.prefix.Mul(v.prefix),
		u.altSymbol.Mul(v.altSymbol),
		u.altPrefix.Mul(v.altPrefix),
	)
}

// Div composes u/v.
func (u Unit) Div(v Unit) Unit {
	return compose(
		u.symbol.Div(v.symbol),
		u.dimension.Div(v.dimension),
		u.prefix.Div(v.prefix),
		u.altSymbol.Div(v.altSymbol),
		u.altPrefix.Div(v.altPrefix),
	)
}

// Pow raises the unit to an integer power.
func (u Unit) Pow(n int) Unit {
	return compose(
		u.symbol.Pow(n),
		u.dimension.Pow(n),
		u.prefix.Pow(n),
		u.altSymbol.Pow(n),
		u.altPrefix.Pow(n),
	)
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit { return u.Pow(-1) }

func compose(sym Symbol, dim Dimension, prefix Prefix, altSym Symbol, altPrefix Prefix) Unit {
	return Unit{
		symbol:    sym,
		dimension: dim,
		prefix:    prefix,
		altSymbol: altSym,
		altPrefix: altPrefix,
		ratio:     prefix.Div(altPrefix),
	}
}

// WithPrefix returns the same unit labelled with the standard prefix name,
// for example meters as millimeters. It carries no value semantics; use
// Measured.ConvertTo to re-express a quantity.
func (u Unit) WithPrefix(name string) (Unit, error) {
	p, err := NewPrefix(name)
	if err != nil {
		return Unit{}, err
	}
	return u.withAlternatePrefix(p), nil
}

// UpdatePrefix rebinds the alternate prefix to the named standard prefix
// while keeping its power, so the returned unit's alternate multiplier holds
// the rescale a value needs. The base prefix becomes AlternatePrefix*ratio.
func (u Unit) UpdatePrefix(name string) (Unit, error) {
	p, err := u.altPrefix.ConvertTo(name)
	if err != nil {
		return Unit{}, err
	}
	return u.withAlternatePrefix(p), nil
}

func (u Unit) withAlternatePrefix(p Prefix) Unit {
	u.altPrefix = p
	u.prefix = u.ratio.Mul(p)
	return u
}

// withBasePrefix moves the unit to base prefix p, keeping the ratio.
func (u Unit) withBasePrefix(p Prefix) Unit {
	u.prefix = p
	u.altPrefix = p.Div(u.ratio)
	return u
}

// normalized returns u with a standard alternate prefix and the multiplier
// that a value expressed in u must be scaled by to be expressed in the
// result.
func (u Unit) normalized() (Unit, float64) {
	m := u.altPrefix.Multiplier()
	return u.withAlternatePrefix(u.altPrefix.Normalized()), m
}

// Compare returns the tri-state compatibility between u and v: Identical
// when symbol, dimension and prefix all match, SameDimensionDifferentScale
// when only the prefix differs, Incompatible otherwise.
func (u Unit) Compare(v Unit) Compatibility {
	if !u.symbol.Equal(v.symbol) || !u.dimension.Equal(v.dimension) {
		return Incompatible
	}
	if !u.prefix.Equal(v.prefix) {
		return SameDimensionDifferentScale
	}
	return Identical
}

// Equal reports whether u and v are Identical.
func (u Unit) Equal(v Unit) bool { return u.Compare(v) == Identical }

// CompatibleWith implements Measure. Only Units can be compatible with a
// Unit; a MiscUnit is Incompatible even if it shares the canonical unit.
func (u Unit) CompatibleWith(other Measure) Compatibility {
	v, ok := other.(Unit)
	if !ok {
		return Incompatible
	}
	return u.Compare(v)
}

// CanonicalUnit implements Measure.
func (u Unit) CanonicalUnit() Unit { return u }

// ToCanonical implements Measure. It applies the alternate prefix multiplier.
func (u Unit) ToCanonical(v Value) Value {
	m := u.altPrefix.Multiplier()
	return v.Map(func(x float64) float64 { return x * m })
}

// FromCanonical implements Measure.
func (u Unit) FromCanonical(v Value) Value {
	m := u.altPrefix.Multiplier()
	return v.Map(func(x float64) float64 { return x / m })
}

// Label returns the preferred display form, alternate prefix followed by the
// alternate symbol with grouped powers ("kN", "m/s^2").
func (u Unit) Label() string {
	return u.altPrefix.Name() + u.altSymbol.PowerString()
}

// String returns the display form followed by the base form when they
// differ, for example "kN [(m*g)/(s*s), M]".
func (u Unit) String() string {
	label := u.Label()
	base := u.prefix.Name() + u.symbol.PowerString()
	if label == base && u.prefix.IsNormalized() && u.altPrefix.IsNormalized() {
		return label
	}
	return fmt.Sprintf("%s [%s, %s]", label, u.symbol, u.prefix)
}

// UnifyPrefixes brings two combinable units to a common scale. The coarser
// base prefix wins; m1 and m2 are the multipliers to apply to values in u1
// and u2 before combining them. The result keeps the more readable label:
// the operand with an alternate symbol, preferring the shorter one, and u1
// when neither or both qualify equally.
func UnifyPrefixes(u1, u2 Unit) (m1, m2 float64, unified Unit, err error) {
	if !u1.Compare(u2).Combinable() {
		return 0, 0, Unit{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleUnits, u1, u2)
	}
	target := u1.prefix
	if u2.prefix.Compare(target) > 0 {
		target = u2.prefix
	}
	m1 = math.Pow10(u1.prefix.Power() - target.Power())
	m2 = math.Pow10(u2.prefix.Power() - target.Power())

	pick := u1
	switch {
	case u1.HasAlternate() && u2.HasAlternate():
		if u2.altSymbol.Len() < u1.altSymbol.Len() {
			pick = u2
		}
	case u2.HasAlternate():
		pick = u2
	}
	return m1, m2, pick.withBasePrefix(target), nil
}
