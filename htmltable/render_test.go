package htmltable

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/colortable/colors"
	"github.com/tsawler/colortable/format"
	"github.com/tsawler/colortable/model"
	"github.com/tsawler/colortable/parse"
	"github.com/tsawler/colortable/scale"
)

var blackWhite = colors.Endpoints{Low: model.Color{}, High: model.Color{R: 255, G: 255, B: 255}}

// styled parses text and styles it for mode with black-to-white endpoints.
func styled(text string, d format.Delimiter, m scale.Mode) *model.Table {
	table, _ := parse.Parse(text, d)
	Style(table, scale.Compute(table, m, scale.Override{}), blackWhite)
	return table
}

// findAll returns every element with the given tag under n, in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func TestString_Example(t *testing.T) {
	table := styled("Name,Value\nA,1\nB,3", format.Comma, scale.Table)

	want := `<table><thead><tr><th scope="col">Name</th><th scope="col">Value</th></tr></thead>` +
		`<tbody><tr><th scope="row">A</th><td style="text-align: right; background-color: rgb(0, 0, 0);">1</td></tr>` +
		`<tr><th scope="row">B</th><td style="text-align: right; background-color: rgb(255, 255, 255);">3</td></tr></tbody></table>`

	if got := String(table); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestBuild_Structure(t *testing.T) {
	table := styled("Name, Score , Rate\nAlpha , 10 , 45%\nBeta, 5 , 60%", format.Comma, scale.Table)
	root := Build(table)

	headers := findAll(findAll(root, "thead")[0], "th")
	if len(headers) != 3 {
		t.Fatalf("got %d column headers, want 3", len(headers))
	}
	for i, want := range []string{"Name", "Score", "Rate"} {
		if got := getTextContent(headers[i]); got != want {
			t.Errorf("header %d = %q, want %q", i, got, want)
		}
		if attr(headers[i], "scope") != "col" {
			t.Errorf("header %d scope = %q, want col", i, attr(headers[i], "scope"))
		}
	}

	rows := findAll(findAll(root, "tbody")[0], "tr")
	if len(rows) != 2 {
		t.Fatalf("got %d body rows, want 2", len(rows))
	}
	for i, row := range rows {
		th := findAll(row, "th")
		if len(th) != 1 || attr(th[0], "scope") != "row" {
			t.Errorf("row %d should start with one th scope=row", i)
		}
		tds := findAll(row, "td")
		if len(tds) != 2 {
			t.Fatalf("row %d has %d data cells, want 2", i, len(tds))
		}
		for j, td := range tds {
			style := attr(td, "style")
			if !strings.Contains(style, "text-align: right;") {
				t.Errorf("cell (%d,%d) style %q lacks right alignment", i, j, style)
			}
			if !strings.Contains(style, "background-color: rgb(") {
				t.Errorf("cell (%d,%d) style %q lacks background", i, j, style)
			}
		}
	}

	if got := getTextContent(findAll(rows[0], "th")[0]); got != "Alpha" {
		t.Errorf("row header = %q, want Alpha", got)
	}
	if got := getTextContent(findAll(rows[0], "td")[1]); got != "45%" {
		t.Errorf("percent cell = %q, want 45%%", got)
	}
	if got := getTextContent(findAll(rows[1], "td")[1]); got != "60%" {
		t.Errorf("percent cell = %q, want 60%%", got)
	}
}

func TestBuild_NonNumericUnstyled(t *testing.T) {
	table := styled("Name,Note,Value\nA,12px,1\nB,,2", format.Comma, scale.Table)
	out := String(table)

	if !strings.Contains(out, "<td>12px</td>") {
		t.Errorf("non-numeric cell should render verbatim without style:\n%s", out)
	}
	if !strings.Contains(out, "<td></td>") {
		t.Errorf("empty cell should render as an empty td:\n%s", out)
	}
}

func TestBuild_NumericRowHeaderUnstyled(t *testing.T) {
	table := styled("Year,Value\n2020,1\n2021,2", format.Comma, scale.Table)
	out := String(table)

	if !strings.Contains(out, `<th scope="row">2020</th>`) {
		t.Errorf("numeric row header should be a plain th:\n%s", out)
	}
}

func TestBuild_EmptyScopeUnstyled(t *testing.T) {
	table := styled("Name,A\nr1,x\nr2,5", format.Comma, scale.Rows)
	rows := findAll(Build(table), "tr")

	if style := attr(findAll(rows[1], "td")[0], "style"); style != "" {
		t.Errorf("row without numbers should be unstyled, got %q", style)
	}
	if style := attr(findAll(rows[2], "td")[0], "style"); !strings.Contains(style, "rgb(255, 255, 255)") {
		t.Errorf("single value in its row should render at the high color, got %q", style)
	}
}

func TestBuild_Degenerate(t *testing.T) {
	table := styled("Name,A,B\nr,4,4\ns,4,4", format.Comma, scale.Table)

	for _, td := range findAll(Build(table), "td") {
		if style := attr(td, "style"); !strings.Contains(style, "rgb(255, 255, 255)") {
			t.Errorf("equal values should render at the high color, got %q", style)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	if got := String(&model.Table{}); got != "<table></table>" {
		t.Errorf("String(empty) = %q", got)
	}
	if got := String(nil); got != "<table></table>" {
		t.Errorf("String(nil) = %q", got)
	}

	headerOnly, _ := parse.Parse("A,B", format.Comma)
	got := String(headerOnly)
	want := `<table><thead><tr><th scope="col">A</th><th scope="col">B</th></tr></thead><tbody></tbody></table>`
	if got != want {
		t.Errorf("String(header only) = %q, want %q", got, want)
	}
}

func TestString_Escaping(t *testing.T) {
	table := styled(`Name,<b>,"q"`+"\n"+`a&b,<i>x</i>,1`, format.Comma, scale.Table)
	out := String(table)

	if strings.Contains(out, "<b>") || strings.Contains(out, "<i>") {
		t.Errorf("markup in cell text must be escaped:\n%s", out)
	}
	if !strings.Contains(out, "a&amp;b") {
		t.Errorf("ampersand should be escaped:\n%s", out)
	}
}

func TestString_Idempotent(t *testing.T) {
	text := "Name,A,B,C\nr1,1,2,3\nr2,10%,x,-4\nr3,,7,7"
	for _, m := range []scale.Mode{scale.Table, scale.Rows, scale.Columns} {
		first := String(styled(text, format.Comma, m))
		second := String(styled(text, format.Comma, m))
		if first != second {
			t.Errorf("%v mode output differs between identical renders", m)
		}
	}
}

func TestStyle_Restyle(t *testing.T) {
	table := styled("Name,A\nr,1\ns,2", format.Comma, scale.Table)
	Style(table, scale.Compute(nil, scale.Table, scale.Override{}), blackWhite)

	for _, td := range findAll(Build(table), "td") {
		if attr(td, "style") != "" {
			t.Error("restyling without ranges should clear previous styles")
		}
	}
}

func TestStyleAttr(t *testing.T) {
	if got := StyleAttr(model.CellStyle{}); got != "" {
		t.Errorf("StyleAttr(zero) = %q, want empty", got)
	}
	c := model.Color{R: 1, G: 2, B: 3}
	got := StyleAttr(model.CellStyle{BackgroundColor: &c, Alignment: model.AlignRight})
	if got != "text-align: right; background-color: rgb(1, 2, 3);" {
		t.Errorf("StyleAttr() = %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender(t *testing.T) {
	table := styled("A,B\nx,1", format.Comma, scale.Table)

	var buf bytes.Buffer
	if err := Render(&buf, table); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != String(table) {
		t.Error("Render() and String() disagree")
	}

	if err := Render(failWriter{}, table); err == nil {
		t.Error("Render() should report writer errors")
	}
}
