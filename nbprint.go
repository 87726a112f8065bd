package nbprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrShape             = errors.New("invalid array shape")
	ErrIndex             = errors.New("index out of range")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output markup.
type Format string

const (
	Markdown Format = "markdown"
	HTML     Format = "html"
)

var formats = []Format{Markdown, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// --- Tabular Interfaces ---

// Rower provides one row of tabular data. A slice of Rower values renders
// as a table.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required for Markdown tables.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Titled renders a caption above an HTML table.
type Titled interface {
	Title() string
}

// Footered renders a footer row in an HTML table.
type Footered interface {
	Footer() []string
}

// Markuper is an escape hatch checked before any other rendering. If Markup
// returns non-nil bytes, those bytes are written directly. If it returns
// (nil, nil), the value falls through to default rendering.
type Markuper interface {
	Markup(Format) ([]byte, error)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var rowerType = reflect.TypeOf((*Rower)(nil)).Elem()

// Write renders v in format f and writes it to w.
//
// Arrays ([*Array], [Array], [Dense]) are formatted with [FormatArray] and
// placed in math mode. A Rower or a slice of Rower values renders as a
// table. A bool is written as True or False, matching its spelling inside
// a matrix. Anything else, including strings, numbers, and other
// collections, is converted to its literal text; in Markdown a string is
// written as-is, so it may carry Markdown or inline LaTeX.
func Write(w io.Writer, f Format, v any, opts ...Option) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	if m, ok := v.(Markuper); ok && !isNilPointer(v) {
		data, err := m.Markup(f)
		if err != nil {
			return err
		}
		if data != nil {
			_, err = w.Write(data)
			return err
		}
	}
	switch x := v.(type) {
	case bool:
		return writeLiteral(w, f, boolLiteral(x))
	case *Array, Array, Dense:
		a, err := FromValue(v)
		if err != nil {
			return err
		}
		tex, err := FormatArray(a, applyOptions(opts))
		if err != nil {
			return err
		}
		return writeMath(w, f, tex)
	}
	if items, ok := rowerItems(v); ok {
		if f == HTML {
			return writeHTMLTable(w, items)
		}
		return writeMarkdownTable(w, items)
	}
	return writeLiteral(w, f, fmt.Sprint(v))
}

// rowerItems reports whether v is a Rower or a slice/array of Rower values
// and returns the items.
func rowerItems(v any) ([]any, bool) {
	if _, ok := v.(Rower); ok {
		return []any{v}, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if !rv.Type().Elem().Implements(rowerType) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func writeMath(w io.Writer, f Format, tex string) error {
	if f == HTML {
		return writeHTMLMath(w, tex)
	}
	_, err := fmt.Fprintf(w, "$%s$\n", tex)
	return err
}

func writeLiteral(w io.Writer, f Format, s string) error {
	if f == HTML {
		return writeHTMLText(w, s)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// Marshal renders v in format f and returns the bytes.
func Marshal(f Format, v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sprint renders v as Markdown.
func Sprint(v any, opts ...Option) (string, error) {
	b, err := Marshal(Markdown, v, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Print renders v as Markdown to standard output, where a notebook kernel
// picks it up as cell output.
func Print(v any, opts ...Option) error {
	return Write(os.Stdout, Markdown, v, opts...)
}
