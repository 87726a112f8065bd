package nbprint

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ShapeError reports an array whose shape cannot be used. It matches
// [ErrShape] with errors.Is.
type ShapeError struct {
	Shape  []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s, got shape %s", ErrShape, e.Reason, formatShape(e.Shape))
}

// Unwrap returns [ErrShape].
func (e *ShapeError) Unwrap() error { return ErrShape }

func shapeErrorf(shape []int, format string, args ...any) error {
	return &ShapeError{Shape: append([]int(nil), shape...), Reason: fmt.Sprintf(format, args...)}
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Dense is the read-only matrix contract used by gonum. Any Dense value can
// be ingested with [FromValue] or passed to [Write] directly.
type Dense interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// Array is an immutable grid of elements stored in row-major order. Only
// rank 1 and rank 2 arrays can be formatted, but any rank can be built so
// that the formatter is the single place that rejects the rest.
type Array struct {
	shape []int
	elems []Element
}

// NewArray builds an array of the given shape. The number of elements must
// equal the product of the dimensions; a rank 0 array holds one element.
// Both slices are copied.
func NewArray(shape []int, elems []Element) (*Array, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if size != len(elems) {
		return nil, shapeErrorf(shape, "%d elements do not fill the shape", len(elems))
	}
	return &Array{
		shape: append([]int(nil), shape...),
		elems: append([]Element(nil), elems...),
	}, nil
}

// shapeSize returns the element count of shape. A zero dimension makes the
// count zero whatever the others are; otherwise the product must fit an int.
func shapeSize(shape []int) (int, error) {
	empty := false
	for _, n := range shape {
		if n < 0 {
			return 0, shapeErrorf(shape, "negative dimension")
		}
		if n == 0 {
			empty = true
		}
	}
	if empty {
		return 0, nil
	}
	size := 1
	for _, n := range shape {
		if size > math.MaxInt/n {
			return 0, shapeErrorf(shape, "too many elements")
		}
		size *= n
	}
	return size, nil
}

// Vector returns a rank 1 array. Each value is classified by [ElementOf].
func Vector(values ...any) *Array {
	return &Array{shape: []int{len(values)}, elems: elementsOf(values)}
}

// ColumnVector returns an N×1 array.
func ColumnVector(values ...any) *Array {
	return &Array{shape: []int{len(values), 1}, elems: elementsOf(values)}
}

// Matrix returns a rank 2 array from rows of equal length.
func Matrix(rows ...[]any) (*Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	elems := make([]Element, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, shapeErrorf([]int{len(rows), cols}, "row %d has %d columns", i, len(row))
		}
		elems = append(elems, elementsOf(row)...)
	}
	return &Array{shape: []int{len(rows), cols}, elems: elems}, nil
}

func elementsOf(values []any) []Element {
	elems := make([]Element, len(values))
	for i, v := range values {
		elems[i] = ElementOf(v)
	}
	return elems
}

// FromValue converts v into an array. It accepts an [Array], a [Dense]
// matrix, nested slices or Go arrays (the nesting depth is the rank), or a
// single scalar (rank 0). Nesting must be uniform: every slice at a given
// depth must have the same length and hold the same kind of value.
func FromValue(v any) (*Array, error) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return nil, shapeErrorf(nil, "nil array")
		}
		return x.clone(), nil
	case Array:
		return x.clone(), nil
	case Dense:
		if isNilPointer(x) {
			return nil, shapeErrorf(nil, "nil matrix")
		}
		return fromDense(x), nil
	}
	var (
		shape []int
		elems []Element
	)
	if err := collect(reflect.ValueOf(v), 0, &shape, &elems); err != nil {
		return nil, err
	}
	return &Array{shape: shape, elems: elems}, nil
}

func fromDense(m Dense) *Array {
	r, c := m.Dims()
	elems := make([]Element, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			elems = append(elems, Number(m.At(i, j)))
		}
	}
	return &Array{shape: []int{r, c}, elems: elems}
}

// collect walks rv depth-first, recording the dimension seen at each depth
// the first time and checking every later sibling against it.
func collect(rv reflect.Value, depth int, shape *[]int, elems *[]Element) error {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	nested := isSequence(rv)
	switch {
	case depth == len(*shape) && depth > 0 && len(*elems) > 0:
		// Leaves were already recorded at this depth; a nested value here
		// would deepen only part of the array.
		if nested {
			return shapeErrorf(*shape, "inhomogeneous nesting at depth %d", depth)
		}
	case depth < len(*shape):
		if !nested {
			return shapeErrorf(*shape, "inhomogeneous nesting at depth %d", depth)
		}
		if rv.Len() != (*shape)[depth] {
			return shapeErrorf(*shape, "length %d at depth %d", rv.Len(), depth)
		}
	}
	if !nested {
		if rv.IsValid() {
			*elems = append(*elems, ElementOf(rv.Interface()))
		} else {
			*elems = append(*elems, ElementOf(nil))
		}
		return nil
	}
	if depth == len(*shape) {
		*shape = append(*shape, rv.Len())
	}
	zeroSize := rv.Type().Elem().Size() == 0
	for i, n := 0, rv.Len(); i < n; i++ {
		before := len(*elems)
		if err := collect(rv.Index(i), depth+1, shape, elems); err != nil {
			return err
		}
		// Zero-size siblings are all alike; if the first holds no leaves,
		// none of the others do.
		if zeroSize && len(*elems) == before {
			break
		}
	}
	return nil
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if _, ok := rv.Interface().(Element); ok {
		return false
	}
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

func (a *Array) clone() *Array {
	return &Array{
		shape: append([]int(nil), a.shape...),
		elems: append([]Element(nil), a.elems...),
	}
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Elements returns a copy of the elements in row-major order.
func (a *Array) Elements() []Element { return append([]Element(nil), a.elems...) }

// At returns the element at the given index, one coordinate per dimension.
func (a *Array) At(idx ...int) (Element, error) {
	if len(idx) != len(a.shape) {
		return Element{}, fmt.Errorf("%w: %d indices for rank %d", ErrIndex, len(idx), len(a.shape))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return Element{}, fmt.Errorf("%w: index %d out of range [0, %d) in dimension %d", ErrIndex, i, a.shape[d], d)
		}
		off = off*a.shape[d] + i
	}
	return a.elems[off], nil
}

// Reshape returns a new array with the same elements and a different shape.
// The receiver is left untouched.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return NewArray(shape, a.elems)
}
