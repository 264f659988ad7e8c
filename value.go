package svt

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Value is either a scalar or an array of float64 with an explicit shape.
// Arrays are stored flat in row-major order. The zero value is the scalar 0.
type Value struct {
	data  []float64
	shape []int // nil for scalars
}

// Scalar returns a scalar value.
func Scalar(x float64) Value {
	return Value{data: []float64{x}}
}

// Array returns a one-dimensional array holding a copy of xs.
func Array(xs ...float64) Value {
	data := make([]float64, len(xs))
	copy(data, xs)
	return Value{data: data, shape: []int{len(xs)}}
}

// ArrayShaped returns an array of the given shape holding a copy of data.
// len(data) must equal the product of the shape.
func ArrayShaped(data []float64, shape ...int) (Value, error) {
	if len(shape) == 0 {
		return Value{}, fmt.Errorf("%w: array needs at least one axis", ErrShapeMismatch)
	}
	n := 1
	for _, s := range shape {
		if s < 0 {
			return Value{}, fmt.Errorf("%w: negative axis length %d", ErrShapeMismatch, s)
		}
		n *= s
	}
	if n != len(data) {
		return Value{}, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}
	out := make([]float64, n)
	copy(out, data)
	return Value{data: out, shape: slices.Clone(shape)}, nil
}

// Linspace returns n evenly spaced samples over [start, stop].
func Linspace(start, stop float64, n int) Value {
	xs := make([]float64, n)
	switch n {
	case 0:
	case 1:
		xs[0] = start
	default:
		floats.Span(xs, start, stop)
	}
	return Value{data: xs, shape: []int{n}}
}

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.shape != nil }

// Shape returns the array shape, or nil for a scalar.
func (v Value) Shape() []int { return slices.Clone(v.shape) }

// Len returns the number of elements; 1 for a scalar.
func (v Value) Len() int {
	if !v.IsArray() {
		return 1
	}
	return len(v.data)
}

// Float returns the scalar held by v.
func (v Value) Float() (float64, error) {
	if v.IsArray() {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, v.shape)
	}
	return v.at(0), nil
}

// Floats returns a copy of the elements, flat.
func (v Value) Floats() []float64 {
	if !v.IsArray() {
		return []float64{v.at(0)}
	}
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

func (v Value) at(i int) float64 {
	if v.data == nil {
		return 0
	}
	return v.data[i]
}

// Map applies f to every element.
func (v Value) Map(f func(float64) float64) Value {
	out := Value{data: make([]float64, v.Len()), shape: slices.Clone(v.shape)}
	for i := range out.data {
		out.data[i] = f(v.at(i))
	}
	return out
}

// SameShape reports whether v and w have equal shapes.
func (v Value) SameShape(w Value) bool {
	return v.IsArray() == w.IsArray() && slices.Equal(v.shape, w.shape)
}

// Zip combines v and w element-wise. A scalar broadcasts against an array;
// two arrays must have the same shape.
func Zip(v, w Value, f func(a, b float64) float64) (Value, error) {
	switch {
	case !v.IsArray() && !w.IsArray():
		return Scalar(f(v.at(0), w.at(0))), nil
	case !v.IsArray():
		x := v.at(0)
		return w.Map(func(b float64) float64 { return f(x, b) }), nil
	case !w.IsArray():
		y := w.at(0)
		return v.Map(func(a float64) float64 { return f(a, y) }), nil
	case !slices.Equal(v.shape, w.shape):
		return Value{}, fmt.Errorf("%w: %v and %v", ErrShapeMismatch, v.shape, w.shape)
	}
	out := Value{data: make([]float64, len(v.data)), shape: slices.Clone(v.shape)}
	for i := range out.data {
		out.data[i] = f(v.data[i], w.data[i])
	}
	return out, nil
}

// Index returns element i of an array, or the scalar itself when i is 0.
func (v Value) Index(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, v.Len())
	}
	return v.at(i), nil
}

// Slice returns elements [i, j) of a one-dimensional array.
func (v Value) Slice(i, j int) (Value, error) {
	if len(v.shape) != 1 {
		return Value{}, fmt.Errorf("%w: slicing needs a one-dimensional array, got shape %v", ErrShapeMismatch, v.shape)
	}
	if i < 0 || j > len(v.data) || i > j {
		return Value{}, fmt.Errorf("%w: [%d:%d] of %d", ErrIndexOutOfRange, i, j, len(v.data))
	}
	return Array(v.data[i:j]...), nil
}

// Min returns the smallest element, ignoring NaN. It is +Inf when no
// element is a number.
func (v Value) Min() float64 {
	xs := v.numbers()
	if len(xs) == 0 {
		return math.Inf(1)
	}
	return floats.Min(xs)
}

// Max returns the largest element, ignoring NaN. It is -Inf when no
// element is a number.
func (v Value) Max() float64 {
	xs := v.numbers()
	if len(xs) == 0 {
		return math.Inf(-1)
	}
	return floats.Max(xs)
}

// numbers returns the elements that are not NaN.
func (v Value) numbers() []float64 {
	xs := v.Floats()
	return slices.DeleteFunc(xs, math.IsNaN)
}

func (v Value) String() string {
	if !v.IsArray() {
		return fmt.Sprint(v.at(0))
	}
	return fmt.Sprint(v.data)
}
