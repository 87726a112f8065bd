// Package nbprint renders Go values as notebook cell markup.
//
// Output is Markdown with inline LaTeX, or HTML. The central entry points are
// [Write] and [Marshal], which accept a [Format] constant and a value of any
// type, plus [Sprint] and [Print] for the common Markdown case.
//
// # Arrays
//
// Rank 1 and rank 2 arrays render as a LaTeX bmatrix in math mode:
//
//	nbprint.Sprint(nbprint.Vector(1, 2, 4))
//	// $\begin{bmatrix}{} 1 & 2 & 4 \end{bmatrix}$
//
// Build arrays with [Vector], [ColumnVector], [Matrix], [NewArray], or
// [FromValue], which also accepts nested slices and any gonum-style [Dense]
// matrix. A rank 1 array is a row vector; an N×1 array is a column vector.
// Any other rank fails with a *[ShapeError].
//
// Every element has a [Kind] fixed when it is created. Numbers and [Raw]
// LaTeX fragments are emitted unchanged; booleans always render as
// \text{True} or \text{False}; strings are styled by [Config]:
//
//   - QuoteStrings and StringsInTypefont → {\tt'A'}
//   - StringsInTypefont only → {\tt A}
//   - QuoteStrings only → \text{''A''}
//   - neither → \text{A}
//
// Use [ArrayTeX] to get the bare matrix and compose several arrays into one
// equation.
//
// # Configuration
//
// [DefaultConfig] quotes strings and sets them in typewriter face. Override
// per call with options, or load a YAML document with [LoadConfig]:
//
//	quote_strings: false
//	strings_in_typefont: true
//
// # Tables
//
// A slice of [Rower] values renders as a table. Markdown tables require
// [Headed]; [Aligned] sets alignment markers. HTML tables also honor
// [Titled] and [Footered].
//
// # Everything else
//
// Strings, numbers, booleans, and other collections are written as their
// literal text. In Markdown a string passes through untouched, so it can
// carry its own formatting and $...$ math. Implement [Markuper] to take over
// rendering for a type.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrShape] — array rank is not 1 or 2, or elements do not fill the shape
//   - [ErrIndex] — array index out of range
//   - [ErrInvalidConfig] — malformed configuration document
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrMissingInterface] — table rows don't implement the required interface
package nbprint
