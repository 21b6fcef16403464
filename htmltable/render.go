package htmltable

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/colortable/colors"
	"github.com/tsawler/colortable/model"
	"github.com/tsawler/colortable/scale"
)

// Style assigns presentation to every data cell of t. Colorable cells whose
// scope has a range are right-aligned and shaded by their normalized
// position; every other cell gets a zero style.
func Style(t *model.Table, rs scale.Ranges, e colors.Endpoints) {
	if t == nil {
		return
	}
	for i := range t.Rows {
		for j := range t.Rows[i] {
			c := &t.Rows[i][j]
			c.Style = model.CellStyle{}
			pos, ok := rs.Position(c)
			if !ok {
				continue
			}
			bg := colors.Interpolate(pos, e)
			c.Style = model.CellStyle{
				BackgroundColor: &bg,
				Alignment:       model.AlignRight,
			}
		}
	}
}

// Build converts t into a <table> node. The first cell of every data row
// becomes a row header; every other cell becomes a <td> carrying its style
// inline.
func Build(t *model.Table) *html.Node {
	table := element(atom.Table)
	if t == nil || t.IsEmpty() {
		return table
	}

	thead := element(atom.Thead)
	tr := element(atom.Tr)
	for _, label := range t.Headers {
		tr.AppendChild(textElement(atom.Th, label, html.Attribute{Key: "scope", Val: "col"}))
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for j := range row {
			tr.AppendChild(cellNode(&row[j]))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)

	return table
}

// Render serializes t as an HTML fragment to w.
func Render(w io.Writer, t *model.Table) error {
	if err := html.Render(w, Build(t)); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

// String serializes t as an HTML fragment.
func String(t *model.Table) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = html.Render(&buf, Build(t))
	return buf.String()
}

// StyleAttr returns the inline style declaration for s, or "" when s is
// the zero style.
func StyleAttr(s model.CellStyle) string {
	var decls []string
	if align := s.Alignment.CSS(); align != "" {
		decls = append(decls, "text-align: "+align+";")
	}
	if s.BackgroundColor != nil {
		decls = append(decls, "background-color: "+colors.CSS(*s.BackgroundColor)+";")
	}
	return strings.Join(decls, " ")
}

func cellNode(c *model.Cell) *html.Node {
	if c.IsHeader {
		return textElement(atom.Th, c.Display, html.Attribute{Key: "scope", Val: "row"})
	}
	var attrs []html.Attribute
	if style := StyleAttr(c.Style); style != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: style})
	}
	return textElement(atom.Td, c.Display, attrs...)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
