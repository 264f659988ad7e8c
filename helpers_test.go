package svt

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= epsilon*scale
}

func floatsApprox(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !approx(got[i], want[i]) {
			return false
		}
	}
	return true
}

func testMeter(t *testing.T, prefix string) Unit {
	t.Helper()
	u := NewUnit(NewSymbol([]string{"m"}, nil), MustDimension([]string{Length}, nil), Prefix{})
	u, err := u.WithPrefix(prefix)
	if err != nil {
		t.Fatalf("WithPrefix(%q) error = %v", prefix, err)
	}
	return u
}

func testSecond() Unit {
	return NewUnit(NewSymbol([]string{"s"}, nil), MustDimension([]string{Time}, nil), Prefix{})
}

func testKilogram() Unit {
	return NewUnit(NewSymbol([]string{"g"}, nil), MustDimension([]string{Mass}, nil), MustPrefix("k"))
}

func testNewton() Unit {
	return NewUnit(
		NewSymbol([]string{"m", "g"}, []string{"s", "s"}),
		MustDimension([]string{Length, Mass}, []string{Time, Time}),
		MustPrefix("k"),
		WithAlternateSymbol(NewSymbol([]string{"N"}, nil)),
		WithAlternatePrefix(MustPrefix("")),
	)
}

func testKelvin() Unit {
	return NewUnit(NewSymbol([]string{"K"}, nil), MustDimension([]string{Temperature}, nil), Prefix{})
}

func testCelsius() MiscUnit {
	return NewMiscUnit("degC", NewSymbol([]string{"°C"}, nil), testKelvin(),
		func(c float64) float64 { return c + 273.15 },
		func(k float64) float64 { return k - 273.15 },
	)
}

func testFahrenheit() MiscUnit {
	return NewMiscUnit("degF", NewSymbol([]string{"°F"}, nil), testKelvin(),
		func(f float64) float64 { return (f-32)/1.8 + 273.15 },
		func(k float64) float64 { return 1.8*(k-273.15) + 32 },
	)
}

func mustFloat(t *testing.T, q Measured) float64 {
	t.Helper()
	x, err := q.Float()
	if err != nil {
		t.Fatalf("Float() error = %v", err)
	}
	return x
}
