package svt

// MiscUnit is a unit that is not a pure multiplicative scale of an SI unit,
// such as degrees Celsius. Values convert to and from the canonical Unit
// through explicit functions.
type MiscUnit struct {
	name          string
	symbol        Symbol
	canonical     Unit
	toCanonical   func(float64) float64
	fromCanonical func(float64) float64
}

// NewMiscUnit builds a misc unit. to converts a value in the misc unit into
// the canonical unit; from is its inverse.
//
//	celsius := svt.NewMiscUnit("degC", svt.NewSymbol([]string{"°C"}, nil), kelvin,
//	    func(c float64) float64 { return c + 273.15 },
//	    func(k float64) float64 { return k - 273.15 },
//	)
func NewMiscUnit(name string, symbol Symbol, canonical Unit, to, from func(float64) float64) MiscUnit {
	return MiscUnit{
		name:          name,
		symbol:        symbol,
		canonical:     canonical,
		toCanonical:   to,
		fromCanonical: from,
	}
}

func (MiscUnit) measure() {}

// Name returns the name the unit was registered with.
func (m MiscUnit) Name() string { return m.name }

// Symbol returns the display symbol.
func (m MiscUnit) Symbol() Symbol { return m.symbol }

// Equal reports whether both misc units have the same symbol and an
// identical canonical unit.
func (m MiscUnit) Equal(n MiscUnit) bool {
	return m.symbol.Equal(n.symbol) && m.canonical.Compare(n.canonical) == Identical
}

// CompatibleWith implements Measure. A misc unit combines only with itself.
func (m MiscUnit) CompatibleWith(other Measure) Compatibility {
	n, ok := other.(MiscUnit)
	if !ok || !m.Equal(n) {
		return Incompatible
	}
	return Identical
}

// CanonicalUnit implements Measure.
func (m MiscUnit) CanonicalUnit() Unit { return m.canonical }

// ToCanonical implements Measure.
func (m MiscUnit) ToCanonical(v Value) Value { return v.Map(m.toCanonical) }

// FromCanonical implements Measure.
func (m MiscUnit) FromCanonical(v Value) Value { return v.Map(m.fromCanonical) }

// Label implements Measure.
func (m MiscUnit) Label() string { return m.symbol.PowerString() }

func (m MiscUnit) String() string { return m.Label() }
