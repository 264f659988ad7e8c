package svt

import (
	"errors"
	"testing"
)

func TestSymbol_Cancellation(t *testing.T) {
	tests := []struct {
		name     string
		got      Symbol
		want     Symbol
		wantSize int
	}{
		{"full", NewSymbol([]string{"m"}, []string{"m"}), NewSymbol(nil, nil), 0},
		{"repeated", NewSymbol([]string{"m", "m"}, []string{"m", "m"}), Symbol{}, 0},
		{"partial", NewSymbol([]string{"s", "s"}, []string{"s"}), NewSymbol([]string{"s"}, nil), 1},
		{"mixed", NewSymbol([]string{"m", "g"}, []string{"s", "m", "s", "m"}), NewSymbol([]string{"g"}, []string{"s", "s", "m"}), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
			if tt.got.Len() != tt.wantSize {
				t.Errorf("Len() = %d, want %d", tt.got.Len(), tt.wantSize)
			}
		})
	}
}

func TestSymbol_Mul(t *testing.T) {
	ms := NewSymbol([]string{"m", "s"}, nil)
	perS := NewSymbol(nil, []string{"s"})
	if got := ms.Mul(perS); !got.Equal(NewSymbol([]string{"m"}, nil)) {
		t.Errorf("(m*s)*(1/s) = %q, want m", got)
	}
}

func TestSymbol_Div(t *testing.T) {
	mPerS := NewSymbol([]string{"m"}, []string{"s"})
	perS := NewSymbol(nil, []string{"s"})
	if got := mPerS.Div(perS); !got.Equal(NewSymbol([]string{"m"}, nil)) {
		t.Errorf("(m/s)/(1/s) = %q, want m", got)
	}
	if got := mPerS.Div(mPerS); !got.IsEmpty() {
		t.Errorf("(m/s)/(m/s) = %q, want empty", got)
	}
}

func TestSymbol_Pow(t *testing.T) {
	mPerS := NewSymbol([]string{"m"}, []string{"s"})
	if got := mPerS.Pow(2); !got.Equal(NewSymbol([]string{"m", "m"}, []string{"s", "s"})) {
		t.Errorf("(m/s)^2 = %q", got)
	}
	if got := mPerS.Pow(-1); !got.Equal(NewSymbol([]string{"s"}, []string{"m"})) {
		t.Errorf("(m/s)^-1 = %q", got)
	}
	if got := mPerS.Pow(0); !got.IsEmpty() {
		t.Errorf("(m/s)^0 = %q, want empty", got)
	}
}

func TestSymbol_EqualIgnoresOrder(t *testing.T) {
	a := NewSymbol([]string{"m", "g"}, []string{"s", "A"})
	b := NewSymbol([]string{"g", "m"}, []string{"A", "s"})
	if !a.Equal(b) {
		t.Error("symbols with the same tokens in different order should be equal")
	}
	c := NewSymbol([]string{"g", "g"}, []string{"A", "s"})
	if a.Equal(c) {
		t.Error("symbols with different token counts should differ")
	}
}

func TestSymbol_String(t *testing.T) {
	tests := []struct {
		num, den []string
		want     string
		power    string
	}{
		{nil, nil, "", ""},
		{[]string{"m"}, nil, "(m)", "m"},
		{[]string{"m", "g"}, nil, "(m*g)", "m*g"},
		{[]string{"m", "m"}, nil, "(m*m)", "m^2"},
		{nil, []string{"s"}, "1/(s)", "1/s"},
		{nil, []string{"a", "b"}, "1/(a*b)", "1/(a*b)"},
		{[]string{"m"}, []string{"s"}, "(m)/(s)", "m/s"},
		{[]string{"m", "g"}, []string{"s", "s"}, "(m*g)/(s*s)", "(m*g)/s^2"},
		{[]string{"m", "m", "g"}, []string{"s"}, "(m*m*g)/(s)", "(m^2*g)/s"},
	}
	for _, tt := range tests {
		s := NewSymbol(tt.num, tt.den)
		if got := s.String(); got != tt.want {
			t.Errorf("String(%v/%v) = %q, want %q", tt.num, tt.den, got, tt.want)
		}
		if got := s.PowerString(); got != tt.power {
			t.Errorf("PowerString(%v/%v) = %q, want %q", tt.num, tt.den, got, tt.power)
		}
	}
}

func TestSymbol_CopiesInput(t *testing.T) {
	num := []string{"m"}
	s := NewSymbol(num, nil)
	num[0] = "s"
	if s.PowerString() != "m" {
		t.Errorf("symbol changed with its input slice: %q", s)
	}
}

// -------------------------------------------------------------------
// Dimension
// -------------------------------------------------------------------

func TestNewDimension_Invalid(t *testing.T) {
	if _, err := NewDimension([]string{"color"}, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("numerator error = %v, want ErrInvalidDimension", err)
	}
	if _, err := NewDimension([]string{Length}, []string{"luminousity"}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("denominator error = %v, want ErrInvalidDimension", err)
	}
}

func TestBaseDimensions(t *testing.T) {
	dims := BaseDimensions()
	if len(dims) != 7 {
		t.Fatalf("len(BaseDimensions()) = %d, want 7", len(dims))
	}
	for _, d := range dims {
		if _, err := NewDimension([]string{d}, nil); err != nil {
			t.Errorf("NewDimension(%q) error = %v", d, err)
		}
	}
}

func TestDimension_Algebra(t *testing.T) {
	length := MustDimension([]string{Length}, nil)
	tm := MustDimension([]string{Time}, nil)
	speed := length.Div(tm)
	accel := speed.Div(tm)
	if !accel.Equal(MustDimension([]string{Length}, []string{Time, Time})) {
		t.Errorf("length/time/time = %v", accel)
	}
	if !speed.Mul(tm).Equal(length) {
		t.Errorf("speed*time = %v, want length", speed.Mul(tm))
	}
	if !length.Pow(2).Div(length.Pow(2)).IsDimensionless() {
		t.Error("length^2/length^2 should be dimensionless")
	}
}

func TestDimension_Key(t *testing.T) {
	a := MustDimension([]string{Length, Mass}, []string{Time, Time})
	b := MustDimension([]string{Mass, Length}, []string{Time, Time})
	if a.Key() != b.Key() {
		t.Errorf("Key() differs by order: %q vs %q", a.Key(), b.Key())
	}
	if want := "(length*mass)/time^2"; a.Key() != want {
		t.Errorf("Key() = %q, want %q", a.Key(), want)
	}
}
