package si

import "github.com/gogpu/svt"

type entry struct {
	name string
	m    func() svt.Measure
}

func u(f func() svt.Unit) func() svt.Measure     { return func() svt.Measure { return f() } }
func mu(f func() svt.MiscUnit) func() svt.Measure { return func() svt.Measure { return f() } }

// The registration order matters: the first unit registered for a
// dimension answers dimension lookups.
var siEntries = []entry{
	{"m", u(Meter)},
	{"s", u(Second)},
	{"Hz", u(Hertz)},
	{"kg", u(Kilogram)},
	{"K", u(Kelvin)},
	{"A", u(Ampere)},
	{"mol", u(Mole)},
	{"cd", u(Candela)},
	{"C", u(Coulomb)},
	{"V", u(Volt)},
	{"N", u(Newton)},
	{"J", u(Joule)},
	{"W", u(Watt)},
	{"Pa", u(Pascal)},
}

var miscEntries = []entry{
	{"degC", mu(Celsius)},
	{"degF", mu(Fahrenheit)},
	{"per_degC", mu(PerCelsius)},
}

func build(entries ...[]entry) *svt.UnitCollection {
	c := svt.NewUnitCollection()
	for _, list := range entries {
		for _, e := range list {
			c.MustRegister(e.name, e.m())
		}
	}
	return c
}

// Units returns a new collection of the SI units in this package, keyed by
// their symbol ("m", "kg", "N", ...).
func Units() *svt.UnitCollection { return build(siEntries) }

// MiscUnits returns a new collection of the misc units ("degC", "degF",
// "per_degC").
func MiscUnits() *svt.UnitCollection { return build(miscEntries) }

// Default returns Units followed by MiscUnits in one collection. Dimension
// lookups resolve to SI units.
func Default() *svt.UnitCollection { return build(siEntries, miscEntries) }
