package svt

import (
	"fmt"
	"slices"
)

// UnitCollection is a registry of units and misc units. Entries are found by
// the name they were registered with or by their dimension key; when
// several entries share a dimension the first one registered wins.
type UnitCollection struct {
	names []string
	byKey map[string]Measure
	byDim map[string]string
}

// NewUnitCollection returns an empty collection.
func NewUnitCollection() *UnitCollection {
	return &UnitCollection{
		byKey: make(map[string]Measure),
		byDim: make(map[string]string),
	}
}

// Register adds m under name.
func (c *UnitCollection) Register(name string, m Measure) error {
	if name == "" {
		return fmt.Errorf("svt: register unit: %w: empty name", ErrMissingKey)
	}
	if _, ok := c.byKey[name]; ok {
		return fmt.Errorf("svt: register unit %q: %w", name, ErrDuplicateKey)
	}
	c.byKey[name] = m
	c.names = append(c.names, name)
	dim := m.CanonicalUnit().Dimension().Key()
	if _, ok := c.byDim[dim]; !ok {
		c.byDim[dim] = name
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (c *UnitCollection) MustRegister(name string, m Measure) *UnitCollection {
	if err := c.Register(name, m); err != nil {
		panic(err)
	}
	return c
}

// Contains reports whether key names an entry or a dimension in c.
func (c *UnitCollection) Contains(key string) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Lookup returns the entry registered under key, falling back to the first
// entry with dimension key.
func (c *UnitCollection) Lookup(key string) (Measure, bool) {
	if m, ok := c.byKey[key]; ok {
		return m, true
	}
	if name, ok := c.byDim[key]; ok {
		return c.byKey[name], true
	}
	return nil, false
}

// Get is like Lookup but returns ErrMissingKey for unknown keys.
func (c *UnitCollection) Get(key string) (Measure, error) {
	m, ok := c.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("svt: unit %q: %w", key, ErrMissingKey)
	}
	return m, nil
}

// Names returns the registered names in registration order.
func (c *UnitCollection) Names() []string { return slices.Clone(c.names) }

// Len returns the number of registered entries.
func (c *UnitCollection) Len() int { return len(c.names) }

// Merge returns a new collection holding the entries of c followed by the
// entries of other. Names present in both fail with ErrDuplicateKey.
func (c *UnitCollection) Merge(other *UnitCollection) (*UnitCollection, error) {
	out := NewUnitCollection()
	for _, src := range []*UnitCollection{c, other} {
		for _, name := range src.names {
			if err := out.Register(name, src.byKey[name]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Collection is an ordered, named bag of quantities.
type Collection struct {
	keys  []string
	items map[string]Measured
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{items: make(map[string]Measured)}
}

// Append adds q under key.
func (c *Collection) Append(key string, q Measured) error {
	if _, ok := c.items[key]; ok {
		return fmt.Errorf("svt: collection key %q: %w", key, ErrDuplicateKey)
	}
	c.items[key] = q
	c.keys = append(c.keys, key)
	return nil
}

// Get returns the quantity stored under key.
func (c *Collection) Get(key string) (Measured, error) {
	q, ok := c.items[key]
	if !ok {
		return Measured{}, fmt.Errorf("svt: collection key %q: %w", key, ErrMissingKey)
	}
	return q, nil
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string { return slices.Clone(c.keys) }

// Len returns the number of quantities.
func (c *Collection) Len() int { return len(c.keys) }

// Pair returns two members as a 2-D curve, the Go counterpart of plotting
// one key against another.
func (c *Collection) Pair(xKey, yKey string) (Curve, error) {
	x, err := c.Get(xKey)
	if err != nil {
		return Curve{}, err
	}
	y, err := c.Get(yKey)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(x, y)
}
