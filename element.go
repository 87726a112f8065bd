package nbprint

import (
	"fmt"
	"reflect"
)

// Kind is the logical type of an array element. It is decided once when the
// element is created and alone determines how the element is styled.
type Kind int

// The zero Kind is KindInvalid, so the zero [Element] is distinguishable
// from a number and renders as an empty cell.
const (
	KindInvalid Kind = iota // zero Element; renders as nothing
	KindNumber              // integer, float, or complex
	KindBool                // rendered as literal True/False text
	KindText               // plain string, styled per Config
	KindRaw                // already valid LaTeX, emitted unchanged
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Numeric is the set of Go types accepted by [Number].
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// LaTeXer is implemented by values that know their own LaTeX notation, such as
// symbolic expressions. [ElementOf] turns them into raw elements.
type LaTeXer interface {
	LaTeX() string
}

// Element is one cell of an [Array]. Build elements with [Number], [Bool],
// [Text], [Raw], or [ElementOf]; the zero Element has [KindInvalid].
type Element struct {
	kind Kind
	text string
	b    bool
}

// Number returns a numeric element. Its text is the default string
// conversion of v.
func Number[T Numeric](v T) Element {
	return Element{kind: KindNumber, text: fmt.Sprint(v)}
}

// Bool returns a boolean element.
func Bool(b bool) Element {
	return Element{kind: KindBool, text: boolLiteral(b), b: b}
}

// Text returns a string element. Text is styled according to [Config].
func Text(s string) Element {
	return Element{kind: KindText, text: s}
}

// Raw returns an element holding a LaTeX fragment such as `x_1` or
// `\alpha`. Raw elements are never quoted or wrapped.
func Raw(tex string) Element {
	return Element{kind: KindRaw, text: tex}
}

// ElementOf classifies a dynamic value. Values that are not an Element, bool,
// string, number, [LaTeXer], or [fmt.Stringer] become raw elements holding
// their default formatting. A nil pointer becomes the raw text <nil>; its
// methods are never called.
func ElementOf(v any) Element {
	if isNilPointer(v) {
		return Raw("<nil>")
	}
	switch x := v.(type) {
	case Element:
		return x
	case bool:
		return Bool(x)
	case string:
		return Text(x)
	case LaTeXer:
		return Raw(x.LaTeX())
	case fmt.Stringer:
		return Raw(x.String())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return Text(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Element{kind: KindNumber, text: fmt.Sprint(v)}
	default:
		return Raw(fmt.Sprint(v))
	}
}

// Kind returns the element's logical type.
func (e Element) Kind() Kind { return e.kind }

// String returns the unstyled text of the element.
func (e Element) String() string { return e.text }

// TeX returns the element as it appears inside a matrix under cfg.
func (e Element) TeX(cfg Config) string {
	switch e.kind {
	case KindBool:
		return `\text{` + boolLiteral(e.b) + `}`
	case KindText:
		return styleText(e.text, cfg)
	default:
		return e.text
	}
}

func styleText(s string, cfg Config) string {
	switch {
	case cfg.QuoteStrings && cfg.StringsInTypefont:
		return `{\tt'` + s + `'}`
	case cfg.StringsInTypefont:
		return `{\tt ` + s + `}`
	case cfg.QuoteStrings:
		return `\text{''` + s + `''}`
	default:
		return `\text{` + s + `}`
	}
}

// isNilPointer reports whether v holds a typed nil pointer. Calling a
// value-receiver method through one panics.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func boolLiteral(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
