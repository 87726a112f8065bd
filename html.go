package nbprint

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func writeHTMLMath(w io.Writer, tex string) error {
	span := element(atom.Span, html.Attribute{Key: "class", Val: "math"})
	span.AppendChild(text(`\(` + tex + `\)`))
	return renderNode(w, span)
}

func writeHTMLText(w io.Writer, s string) error {
	p := element(atom.P)
	p.AppendChild(text(s))
	return renderNode(w, p)
}

func writeHTMLTable(w io.Writer, items []any) error {
	if len(items) == 0 {
		return nil
	}
	rows, err := collectRows(items, HTML)
	if err != nil {
		return err
	}
	first := items[0]

	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}

	table := element(atom.Table)

	if t, ok := first.(Titled); ok {
		if title := t.Title(); title != "" {
			caption := element(atom.Caption)
			caption.AppendChild(text(title))
			table.AppendChild(caption)
		}
	}

	if h, ok := first.(Headed); ok {
		thead := element(atom.Thead)
		thead.AppendChild(tableRow(atom.Th, h.Header(), aligns))
		table.AppendChild(thead)
	}

	tbody := element(atom.Tbody)
	for _, row := range rows {
		tbody.AppendChild(tableRow(atom.Td, row, aligns))
	}
	table.AppendChild(tbody)

	if f, ok := first.(Footered); ok {
		tfoot := element(atom.Tfoot)
		tfoot.AppendChild(tableRow(atom.Td, f.Footer(), aligns))
		table.AppendChild(tfoot)
	}

	return renderNode(w, table)
}

func tableRow(cell atom.Atom, cells []string, aligns []Alignment) *html.Node {
	tr := element(atom.Tr)
	for i, c := range cells {
		var attrs []html.Attribute
		if style := alignStyle(aligns, i); style != "" {
			attrs = append(attrs, html.Attribute{Key: "style", Val: style})
		}
		td := element(cell, attrs...)
		td.AppendChild(text(c))
		tr.AppendChild(td)
	}
	return tr
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return "text-align: right"
	case AlignCenter:
		return "text-align: center"
	default:
		return ""
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func renderNode(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
