package svt

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"
)

// standardPrefixes is the SI prefix table in ascending order of power.
// Snapping to the nearest entry walks this table front to back, so ties go
// to the smaller power.
var standardPrefixes = [...]struct {
	name  string
	power int
}{
	{"q", -30}, {"r", -27}, {"y", -24}, {"z", -21}, {"a", -18},
	{"f", -15}, {"p", -12}, {"n", -9}, {"µ", -6}, {"m", -3},
	{"c", -2}, {"d", -1}, {"", 0}, {"da", 1}, {"h", 2},
	{"k", 3}, {"M", 6}, {"G", 9}, {"T", 12}, {"P", 15},
	{"E", 18}, {"Z", 21}, {"Y", 24}, {"R", 27}, {"Q", 30},
}

// Prefixes returns the names of the 25 SI prefixes from 10^-30 to 10^30.
// The unity prefix is the empty string.
func Prefixes() []string {
	names := make([]string, len(standardPrefixes))
	for i, p := range standardPrefixes {
		names[i] = p.name
	}
	return names
}

// Prefix is a metric scale factor. It pairs an exact power of ten with the
// nearest standard SI prefix; the difference between the two is the
// multiplier a value must be scaled by to be expressed in the standard
// prefix.
//
// The zero value is the unity prefix (power 0, empty name).
// Prefix is an immutable value.
type Prefix struct {
	name          string
	standardPower int
	power         int
}

// NewPrefix returns the standard prefix with the given name. Names are
// compared after NFKC normalization, so both the micro sign and the Greek
// letter mu select 10^-6.
func NewPrefix(name string) (Prefix, error) {
	i, ok := prefixIndex(name)
	if !ok {
		return Prefix{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, name)
	}
	p := standardPrefixes[i]
	return Prefix{name: p.name, standardPower: p.power, power: p.power}, nil
}

// MustPrefix is like NewPrefix but panics on an unknown name.
// It is intended for package-level unit tables.
func MustPrefix(name string) Prefix {
	p, err := NewPrefix(name)
	if err != nil {
		panic(err)
	}
	return p
}

// PrefixFromPower returns a prefix for an arbitrary power of ten, named
// after the nearest standard prefix.
func PrefixFromPower(power int) Prefix {
	i := nearestIndex(power)
	return Prefix{
		name:          standardPrefixes[i].name,
		standardPower: standardPrefixes[i].power,
		power:         power,
	}
}

func prefixIndex(name string) (int, bool) {
	want := norm.NFKC.String(name)
	for i, p := range standardPrefixes {
		if norm.NFKC.String(p.name) == want {
			return i, true
		}
	}
	return 0, false
}

func nearestIndex(power int) int {
	best := 0
	bestDist := math.MaxInt
	for i, p := range standardPrefixes {
		d := power - p.power
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Name returns the standard prefix name ("k", "m", "" ...).
func (p Prefix) Name() string { return p.name }

// Power returns the exact power of ten the prefix stands for.
func (p Prefix) Power() int { return p.power }

// StandardPower returns the power of the named standard prefix.
func (p Prefix) StandardPower() int { return p.standardPower }

// Multiplier returns 10^(Power-StandardPower).
func (p Prefix) Multiplier() float64 {
	return math.Pow10(p.power - p.standardPower)
}

// IsNormalized reports whether the multiplier is 1.
func (p Prefix) IsNormalized() bool { return p.power == p.standardPower }

// Normalized returns the standard prefix p is named after.
func (p Prefix) Normalized() Prefix {
	return Prefix{name: p.name, standardPower: p.standardPower, power: p.standardPower}
}

// Mul combines two scales: powers add and the result is re-snapped to the
// nearest standard prefix.
func (p Prefix) Mul(q Prefix) Prefix {
	return PrefixFromPower(p.power + q.power)
}

// Div is the inverse of Mul.
func (p Prefix) Div(q Prefix) Prefix {
	return PrefixFromPower(p.power - q.power)
}

// Pow raises the scale to an integer power.
func (p Prefix) Pow(n int) Prefix {
	return PrefixFromPower(p.power * n)
}

// Compare orders prefixes by power. It returns -1, 0 or +1.
func (p Prefix) Compare(q Prefix) int {
	switch {
	case p.power < q.power:
		return -1
	case p.power > q.power:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both prefixes stand for the same power of ten.
func (p Prefix) Equal(q Prefix) bool { return p.power == q.power }

// ConvertTo rebinds the prefix to another standard name while keeping its
// power. Only the multiplier changes.
func (p Prefix) ConvertTo(name string) (Prefix, error) {
	i, ok := prefixIndex(name)
	if !ok {
		return Prefix{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, name)
	}
	return Prefix{
		name:          standardPrefixes[i].name,
		standardPower: standardPrefixes[i].power,
		power:         p.power,
	}, nil
}

// String returns the prefix name, followed by the pending multiplier when
// the prefix is not normalized (for example "µ(x10)").
func (p Prefix) String() string {
	if p.IsNormalized() {
		return p.name
	}
	return fmt.Sprintf("%s(x%g)", p.name, p.Multiplier())
}
