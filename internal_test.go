package nbprint

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html/atom"
)

var errInternalWrite = errors.New("write failed")

func TestFormatShape(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "()", formatShape(nil))
	assert.Equal(t, "(3,)", formatShape([]int{3}))
	assert.Equal(t, "(2, 1)", formatShape([]int{2, 1}))
}

func TestMakeRow(t *testing.T) {
	t.Parallel()
	row := makeRow([]Element{Number(1), Text("a"), Bool(false)}, DefaultConfig())
	assert.Equal(t, `1 & {\tt'a'} & \text{False}`, row)
	assert.Empty(t, makeRow(nil, DefaultConfig()))
}

func TestMakeMatrixRowEnd(t *testing.T) {
	t.Parallel()
	elems := []Element{Number(1), Number(2)}
	assert.Equal(t, `\begin{bmatrix}{} 1 & 2 \\ \end{bmatrix}`, makeMatrix(1, 2, elems, Config{}, rowEnd))
	assert.Equal(t, `\begin{bmatrix}{} 1 & 2 \end{bmatrix}`, makeMatrix(1, 2, elems, Config{}, ""))
}

func TestEscapeCells(t *testing.T) {
	t.Parallel()
	in := []string{"a|b", "plain"}
	out := escapeCells(in)
	assert.Equal(t, []string{`a\|b`, "plain"}, out)
	assert.Equal(t, "a|b", in[0])
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "abcdef", alignCell("abcdef", 3, AlignLeft))
}

func TestExtendAlignsNoop(t *testing.T) {
	t.Parallel()
	aligns := extendAligns([]Alignment{AlignLeft, AlignRight, AlignCenter}, 2)
	assert.Len(t, aligns, 2)
	assert.Equal(t, []Alignment{AlignRight, AlignLeft}, extendAligns([]Alignment{AlignRight}, 2))
}

func TestAlignStyle(t *testing.T) {
	t.Parallel()
	aligns := []Alignment{AlignLeft, AlignCenter, AlignRight}
	assert.Empty(t, alignStyle(aligns, 0))
	assert.Equal(t, "text-align: center", alignStyle(aligns, 1))
	assert.Equal(t, "text-align: right", alignStyle(aligns, 2))
	assert.Empty(t, alignStyle(aligns, 3))
}

func TestRowerItems(t *testing.T) {
	t.Parallel()
	_, ok := rowerItems([]int{1})
	assert.False(t, ok)
	_, ok = rowerItems("text")
	assert.False(t, ok)
	items, ok := rowerItems([1]Rower{nil})
	assert.True(t, ok)
	assert.Len(t, items, 1)
}

func TestWriteMarkdownRowError(t *testing.T) {
	t.Parallel()
	err := writeMarkdownRow(&errWriterInternal{}, []string{"a"}, []int{3}, []Alignment{AlignLeft})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestRenderNode(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := element(atom.Div)
	n.AppendChild(text("x"))
	assert.NoError(t, renderNode(&buf, n))
	assert.Equal(t, "<div>x</div>\n", buf.String())
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
