package nbprint

import "strings"

const (
	matrixOpen  = `\begin{bmatrix}{} `
	matrixClose = ` \end{bmatrix}`
	colSep      = " & "
	rowEnd      = ` \\`
)

// FormatArray renders a rank 1 or rank 2 array as a LaTeX bmatrix, without
// the surrounding math-mode delimiters.
//
// A rank 1 array is laid out as a single row with no trailing row break. A
// rank 2 array is laid out row by row, each row ending in a row break; an
// N×1 array therefore renders as a column vector, and an array with no
// columns renders as an empty matrix. Any other rank returns a
// *[ShapeError] and no output.
func FormatArray(a *Array, cfg Config) (string, error) {
	if a == nil {
		return "", shapeErrorf(nil, "nil array")
	}
	switch a.Rank() {
	case 2:
		rows, cols := a.shape[0], a.shape[1]
		if cols == 0 {
			// No cells to lay out, whatever the row count.
			rows = 0
		}
		return makeMatrix(rows, cols, a.elems, cfg, rowEnd), nil
	case 1:
		return makeMatrix(1, a.shape[0], a.elems, cfg, ""), nil
	default:
		return "", shapeErrorf(a.shape, "array must be 1 or 2 dimensional")
	}
}

func makeMatrix(rows, cols int, elems []Element, cfg Config, end string) string {
	lines := make([]string, rows)
	for i := 0; i < rows; i++ {
		lines[i] = makeRow(elems[i*cols:(i+1)*cols], cfg) + end
	}
	var sb strings.Builder
	sb.WriteString(matrixOpen)
	sb.WriteString(strings.Join(lines, " "))
	sb.WriteString(matrixClose)
	return sb.String()
}

func makeRow(elems []Element, cfg Config) string {
	cells := make([]string, len(elems))
	for i, e := range elems {
		cells[i] = e.TeX(cfg)
	}
	return strings.Join(cells, colSep)
}

// ArrayTeX converts v with [FromValue] and formats it with [FormatArray].
// The result has no math delimiters, so several arrays can be composed into
// one equation:
//
//	x, _ := nbprint.ArrayTeX(a)
//	y, _ := nbprint.ArrayTeX(b)
//	nbprint.Print(fmt.Sprintf("$%s \\cdot %s$", x, y))
func ArrayTeX(v any, opts ...Option) (string, error) {
	a, err := FromValue(v)
	if err != nil {
		return "", err
	}
	return FormatArray(a, applyOptions(opts))
}
