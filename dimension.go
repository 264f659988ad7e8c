package svt

import (
	"fmt"
	"slices"
)

// Base dimension tokens.
const (
	Length            = "length"
	Mass              = "mass"
	Time              = "time"
	Temperature       = "temperature"
	Current           = "current"
	Amount            = "amount"
	LuminousIntensity = "luminous-intensity"
)

var baseDimensions = []string{Length, Mass, Time, Temperature, Current, Amount, LuminousIntensity}

// BaseDimensions returns the seven base physical dimensions.
func BaseDimensions() []string { return slices.Clone(baseDimensions) }

// Dimension is a Symbol restricted to base dimension tokens. It is used to
// decide whether two units measure the same physical quantity.
type Dimension struct {
	sym Symbol
}

// NewDimension validates the tokens and builds a dimension.
func NewDimension(num, den []string) (Dimension, error) {
	for _, tok := range num {
		if !slices.Contains(baseDimensions, tok) {
			return Dimension{}, fmt.Errorf("%w: %q in numerator", ErrInvalidDimension, tok)
		}
	}
	for _, tok := range den {
		if !slices.Contains(baseDimensions, tok) {
			return Dimension{}, fmt.Errorf("%w: %q in denominator", ErrInvalidDimension, tok)
		}
	}
	return Dimension{sym: NewSymbol(num, den)}, nil
}

// MustDimension is like NewDimension but panics on an invalid token.
func MustDimension(num, den []string) Dimension {
	d, err := NewDimension(num, den)
	if err != nil {
		panic(err)
	}
	return d
}

// Symbol returns the underlying symbol.
func (d Dimension) Symbol() Symbol { return d.sym }

// IsDimensionless reports whether d has no tokens.
func (d Dimension) IsDimensionless() bool { return d.sym.IsEmpty() }

// Mul returns d*e.
func (d Dimension) Mul(e Dimension) Dimension { return Dimension{sym: d.sym.Mul(e.sym)} }

// Div returns d/e.
func (d Dimension) Div(e Dimension) Dimension { return Dimension{sym: d.sym.Div(e.sym)} }

// Pow returns d^n.
func (d Dimension) Pow(n int) Dimension { return Dimension{sym: d.sym.Pow(n)} }

// Inverse returns 1/d.
func (d Dimension) Inverse() Dimension { return Dimension{sym: d.sym.Inverse()} }

// Equal reports whether both dimensions have the same tokens.
func (d Dimension) Equal(e Dimension) bool { return d.sym.Equal(e.sym) }

func (d Dimension) String() string { return d.sym.String() }

// Key returns a representation that is equal for equal dimensions regardless
// of token order. Unit collections index entries by it.
func (d Dimension) Key() string {
	return NewSymbol(sorted(d.sym.num), sorted(d.sym.den)).PowerString()
}

func sorted(toks []string) []string {
	out := slices.Clone(toks)
	slices.Sort(out)
	return out
}
