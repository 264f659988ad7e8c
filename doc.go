// Package svt handles physical quantities with units and dimensional
// analysis.
//
// # Overview
//
// A [Measured] binds numbers (a scalar or an n-dimensional [Value]) to a
// [Measure]. Measures are either multiplicative units ([Unit]) built from
// a [Symbol], a [Dimension] and a decimal [Prefix], or affine
// miscellaneous units ([MiscUnit]) such as degrees Celsius that convert
// through a canonical unit.
//
// Arithmetic checks dimensions and reconciles prefixes:
//
//	m := si.Meter()
//	km, _ := m.WithPrefix("k")
//	a := svt.NewScalar(2, km)
//	b := svt.NewScalar(500, m)
//	sum, err := a.Add(b) // 2.5 km
//
// Adding a length to a time fails with [ErrIncompatibleUnits]. Products
// compose symbols and dimensions, so newtons divided by square meters
// give pascals.
//
// # Curves
//
// A [Curve] pairs two equally long measured arrays. [FindCommonRange],
// [FindCommonAxis] and [InterpolateBasedOnNewX] resample curves onto a
// shared abscissa; [MinCurve], [MaxCurve] and [Envelope] combine them
// pointwise.
//
// # Unit tables
//
// Package si provides the SI base and derived units plus the Celsius and
// Fahrenheit scales, grouped in a [UnitCollection] for lookup by key or
// dimension. Package plot renders curves to PNG.
//
// # Logging
//
// svt is silent by default. Install a [log/slog] logger with [SetLogger]
// to trace unit reconciliation and curve resampling.
package svt
