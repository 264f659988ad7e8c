package svt

import (
	"errors"
	"testing"
)

func TestUnit_Compare(t *testing.T) {
	m := testMeter(t, "")
	km := testMeter(t, "k")

	tests := []struct {
		name     string
		a, b     Unit
		want     Compatibility
		strength float64
	}{
		{"identical", m, testMeter(t, ""), Identical, 1},
		{"different prefix", km, m, SameDimensionDifferentScale, 0.5},
		{"different dimension", m, testSecond(), Incompatible, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			if got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
			if got.Strength() != tt.strength {
				t.Errorf("Strength() = %v, want %v", got.Strength(), tt.strength)
			}
			if got.Combinable() != (tt.strength > 0) {
				t.Errorf("Combinable() = %v", got.Combinable())
			}
		})
	}
}

func TestUnit_CompatibleWithMisc(t *testing.T) {
	if got := testKelvin().CompatibleWith(testCelsius()); got != Incompatible {
		t.Errorf("Kelvin vs Celsius = %v, want Incompatible", got)
	}
	if got := testCelsius().CompatibleWith(testCelsius()); got != Identical {
		t.Errorf("Celsius vs Celsius = %v, want Identical", got)
	}
	if got := testCelsius().CompatibleWith(testFahrenheit()); got != Incompatible {
		t.Errorf("Celsius vs Fahrenheit = %v, want Incompatible", got)
	}
}

func TestUnit_NewtonComposition(t *testing.T) {
	composed := testKilogram().Mul(testMeter(t, "")).Div(testSecond().Pow(2))
	newton := testNewton()

	got := composed.Compare(newton)
	if got.Strength() < 0.5 {
		t.Fatalf("kg*m/s^2 vs N = %v, want combinable", got)
	}
	if got != Identical {
		t.Errorf("kg*m/s^2 vs N = %v, want Identical", got)
	}
	if newton.Label() != "N" {
		t.Errorf("Label() = %q, want N", newton.Label())
	}
	if composed.HasAlternate() {
		t.Error("composed unit should not have an alternate symbol")
	}
	if !newton.HasAlternate() {
		t.Error("newton should have an alternate symbol")
	}
}

func TestUnit_Labels(t *testing.T) {
	m := testMeter(t, "")
	tests := []struct {
		unit Unit
		want string
	}{
		{m, "m"},
		{testKilogram(), "kg"},
		{m.Div(testSecond().Pow(2)), "m/s^2"},
		{m.Mul(m), "m^2"},
		{testSecond().Inverse(), "1/s"},
	}
	for _, tt := range tests {
		if got := tt.unit.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestUnit_WithPrefix(t *testing.T) {
	kN, err := testNewton().WithPrefix("k")
	if err != nil {
		t.Fatalf("WithPrefix error = %v", err)
	}
	if kN.Label() != "kN" {
		t.Errorf("Label() = %q, want kN", kN.Label())
	}
	if kN.Prefix().Power() != 6 {
		t.Errorf("base prefix power = %d, want 6", kN.Prefix().Power())
	}
	if kN.PrefixRatio().Power() != 3 {
		t.Errorf("ratio power = %d, want 3", kN.PrefixRatio().Power())
	}
	if _, err := testNewton().WithPrefix("kk"); !errors.Is(err, ErrInvalidPrefix) {
		t.Errorf("WithPrefix(kk) error = %v, want ErrInvalidPrefix", err)
	}
}

func TestUnit_UpdatePrefix(t *testing.T) {
	u, err := testMeter(t, "").UpdatePrefix("m")
	if err != nil {
		t.Fatalf("UpdatePrefix error = %v", err)
	}
	alt := u.AlternatePrefix()
	if alt.Name() != "m" || alt.Power() != 0 || alt.Multiplier() != 1000 {
		t.Errorf("alternate prefix = %v power %d", alt, alt.Power())
	}
	if u.Prefix().Power() != 0 {
		t.Errorf("base prefix power = %d, want 0", u.Prefix().Power())
	}
}

func TestUnit_MeasuredDoesNotMutateUnit(t *testing.T) {
	u, err := testMeter(t, "").UpdatePrefix("m")
	if err != nil {
		t.Fatal(err)
	}
	q1 := NewScalar(1, u)
	q2 := NewScalar(1, u)
	if mustFloat(t, q1) != 1000 || mustFloat(t, q2) != 1000 {
		t.Errorf("quantities built from the same unit differ: %v, %v", q1, q2)
	}
	if u.AlternatePrefix().Multiplier() != 1000 {
		t.Errorf("unit was modified by construction: %v", u.AlternatePrefix())
	}
}

func TestUnifyPrefixes(t *testing.T) {
	m := testMeter(t, "")
	mm := testMeter(t, "m")

	t.Run("idempotent", func(t *testing.T) {
		m1, m2, u, err := UnifyPrefixes(m, m)
		if err != nil {
			t.Fatal(err)
		}
		if m1 != 1 || m2 != 1 {
			t.Errorf("multipliers = %v, %v, want 1, 1", m1, m2)
		}
		if u.Compare(m) != Identical {
			t.Errorf("unified unit %v not identical to %v", u, m)
		}
	})

	t.Run("coarser prefix wins", func(t *testing.T) {
		m1, m2, u, err := UnifyPrefixes(mm, m)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(m1, 0.001) || m2 != 1 {
			t.Errorf("multipliers = %v, %v, want 0.001, 1", m1, m2)
		}
		if u.Label() != "m" || u.Prefix().Power() != 0 {
			t.Errorf("unified = %v, want m", u)
		}
	})

	t.Run("keeps alternate symbol", func(t *testing.T) {
		composed := testKilogram().Mul(testMeter(t, "")).Div(testSecond().Pow(2))
		_, _, u, err := UnifyPrefixes(composed, testNewton())
		if err != nil {
			t.Fatal(err)
		}
		if u.Label() != "N" {
			t.Errorf("unified label = %q, want N", u.Label())
		}
	})

	t.Run("shorter alternate symbol", func(t *testing.T) {
		jPerM := NewUnit(
			testNewton().Symbol(), testNewton().Dimension(), MustPrefix("k"),
			WithAlternateSymbol(NewSymbol([]string{"J"}, []string{"m"})),
			WithAlternatePrefix(MustPrefix("")),
		)
		_, _, u, err := UnifyPrefixes(jPerM, testNewton())
		if err != nil {
			t.Fatal(err)
		}
		if u.Label() != "N" {
			t.Errorf("unified label = %q, want N", u.Label())
		}
	})

	t.Run("incompatible", func(t *testing.T) {
		if _, _, _, err := UnifyPrefixes(m, testSecond()); !errors.Is(err, ErrIncompatibleUnits) {
			t.Errorf("error = %v, want ErrIncompatibleUnits", err)
		}
	})
}

func TestDimensionless(t *testing.T) {
	m := testMeter(t, "")
	ratio := m.Div(m)
	if ratio.Compare(Dimensionless()) != Identical {
		t.Errorf("m/m = %v, want dimensionless", ratio)
	}
}
