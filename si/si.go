// Package si provides the SI base and derived units, common misc units
// (degrees Celsius and Fahrenheit), and ready-made unit collections.
//
// Every constructor returns a fresh value built from svt primitives. Use
// [svt.Unit.WithPrefix] for scaled variants:
//
//	mm, _ := si.Meter().WithPrefix("m")
//	q := svt.NewScalar(1000, mm)
package si

import (
	"github.com/gogpu/svt"
)

func sym(num ...string) []string { return num }

func unit(num, den, dimNum, dimDen []string, prefix string, opts ...svt.UnitOption) svt.Unit {
	return svt.NewUnit(
		svt.NewSymbol(num, den),
		svt.MustDimension(dimNum, dimDen),
		svt.MustPrefix(prefix),
		opts...,
	)
}

// derived builds a unit whose base form is expressed over grams, so its
// base prefix is one "k" above the displayed prefix.
func derived(alt string, num, den, dimNum, dimDen []string) svt.Unit {
	return unit(num, den, dimNum, dimDen, "k",
		svt.WithAlternateSymbol(svt.NewSymbol(sym(alt), nil)),
		svt.WithAlternatePrefix(svt.MustPrefix("")),
	)
}

// Meter is the SI unit of length.
func Meter() svt.Unit { return unit(sym("m"), nil, sym(svt.Length), nil, "") }

// Second is the SI unit of time.
func Second() svt.Unit { return unit(sym("s"), nil, sym(svt.Time), nil, "") }

// Hertz is 1/s displayed as "Hz".
func Hertz() svt.Unit {
	return unit(nil, sym("s"), nil, sym(svt.Time), "",
		svt.WithAlternateSymbol(svt.NewSymbol(sym("Hz"), nil)))
}

// Kilogram is the SI unit of mass: grams with the "k" prefix.
func Kilogram() svt.Unit { return unit(sym("g"), nil, sym(svt.Mass), nil, "k") }

// Kelvin is the SI unit of temperature.
func Kelvin() svt.Unit { return unit(sym("K"), nil, sym(svt.Temperature), nil, "") }

// Ampere is the SI unit of electric current.
func Ampere() svt.Unit { return unit(sym("A"), nil, sym(svt.Current), nil, "") }

// Mole is the SI unit of amount of substance.
func Mole() svt.Unit { return unit(sym("mol"), nil, sym(svt.Amount), nil, "") }

// Candela is the SI unit of luminous intensity.
func Candela() svt.Unit { return unit(sym("cd"), nil, sym(svt.LuminousIntensity), nil, "") }

// Coulomb is A*s displayed as "C".
func Coulomb() svt.Unit {
	return unit(sym("A", "s"), nil, sym(svt.Current, svt.Time), nil, "",
		svt.WithAlternateSymbol(svt.NewSymbol(sym("C"), nil)))
}

// Volt is kg*m^2/(s^3*A) displayed as "V".
func Volt() svt.Unit {
	return derived("V",
		sym("g", "m", "m"), sym("s", "s", "s", "A"),
		sym(svt.Mass, svt.Length, svt.Length), sym(svt.Time, svt.Time, svt.Time, svt.Current))
}

// Newton is kg*m/s^2 displayed as "N".
func Newton() svt.Unit {
	return derived("N",
		sym("m", "g"), sym("s", "s"),
		sym(svt.Length, svt.Mass), sym(svt.Time, svt.Time))
}

// Joule is kg*m^2/s^2 displayed as "J".
func Joule() svt.Unit {
	return derived("J",
		sym("m", "m", "g"), sym("s", "s"),
		sym(svt.Length, svt.Length, svt.Mass), sym(svt.Time, svt.Time))
}

// Watt is kg*m^2/s^3 displayed as "W".
func Watt() svt.Unit {
	return derived("W",
		sym("m", "m", "g"), sym("s", "s", "s"),
		sym(svt.Length, svt.Length, svt.Mass), sym(svt.Time, svt.Time, svt.Time))
}

// Pascal is kg/(m*s^2) displayed as "Pa".
func Pascal() svt.Unit {
	return derived("Pa",
		sym("m", "g"), sym("s", "m", "s", "m"),
		sym(svt.Length, svt.Mass), sym(svt.Time, svt.Length, svt.Time, svt.Length))
}

// Celsius is degrees Celsius over Kelvin.
func Celsius() svt.MiscUnit {
	return svt.NewMiscUnit("degC", svt.NewSymbol(sym("°C"), nil), Kelvin(),
		func(c float64) float64 { return c + 273.15 },
		func(k float64) float64 { return k - 273.15 },
	)
}

// Fahrenheit is degrees Fahrenheit over Kelvin.
func Fahrenheit() svt.MiscUnit {
	return svt.NewMiscUnit("degF", svt.NewSymbol(sym("°F"), nil), Kelvin(),
		func(f float64) float64 { return (f-32)/1.8 + 273.15 },
		func(k float64) float64 { return 1.8*(k-273.15) + 32 },
	)
}

// PerCelsius is 1/°C, used for thermal expansion coefficients. A
// temperature difference of one degree Celsius equals one kelvin, so the
// conversion is the identity.
func PerCelsius() svt.MiscUnit {
	return svt.NewMiscUnit("per_degC", svt.NewSymbol(nil, sym("°C")), Kelvin().Inverse(),
		func(x float64) float64 { return x },
		func(x float64) float64 { return x },
	)
}
