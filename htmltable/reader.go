package htmltable

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/colortable/model"
)

// ErrNoTable is returned by Read when the markup contains no <table>.
var ErrNoTable = errors.New("no table element found")

// Read parses markup produced by Render back into a table. Header labels
// come from the <thead> row, data rows from <tbody>; cell text is
// re-classified and inline text-align and background-color declarations
// are restored into each cell's style. Rows are padded or truncated to the
// header width as in parsing.
func Read(r io.Reader) (*model.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tableNode := findElement(doc, "table")
	if tableNode == nil {
		return nil, ErrNoTable
	}

	table := &model.Table{}
	var styles [][]model.CellStyle

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" && len(table.Headers) == 0 {
					texts, _ := parseRow(tr)
					table.Headers = texts
				}
			}
		case "tbody":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					texts, st := parseRow(tr)
					table.AddRow(texts)
					styles = append(styles, st)
				}
			}
		}
	}

	for i := range table.Rows {
		for j := range table.Rows[i] {
			if j < len(styles[i]) {
				table.Rows[i][j].Style = styles[i][j]
			}
		}
	}

	return table, nil
}

// parseRow returns the text and inline style of each th/td in tr.
func parseRow(tr *html.Node) ([]string, []model.CellStyle) {
	var texts []string
	var styles []model.CellStyle
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			texts = append(texts, getTextContent(c))
			styles = append(styles, parseStyle(attr(c, "style")))
		}
	}
	return texts, styles
}

// parseStyle reads the declarations StyleAttr writes. Unknown properties
// and malformed values are ignored.
func parseStyle(style string) model.CellStyle {
	var s model.CellStyle
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "text-align":
			switch strings.ToLower(val) {
			case "left":
				s.Alignment = model.AlignLeft
			case "center":
				s.Alignment = model.AlignCenter
			case "right":
				s.Alignment = model.AlignRight
			}
		case "background-color":
			var r, g, b int
			if n, _ := fmt.Sscanf(val, "rgb(%d, %d, %d)", &r, &g, &b); n == 3 && inByte(r, g, b) {
				s.BackgroundColor = &model.Color{R: uint8(r), G: uint8(g), B: uint8(b)}
			}
		}
	}
	return s
}

func inByte(vals ...int) bool {
	for _, v := range vals {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
