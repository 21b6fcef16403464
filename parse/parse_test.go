package parse

import (
	"strings"
	"testing"

	"github.com/tsawler/colortable/format"
)

func TestParse_TrimmedHeadersAndCells(t *testing.T) {
	table, adj := Parse("Name, Score , Rate\nAlpha , 10 , 45%\nBeta, 5 , 60%", format.Comma)

	if len(adj) != 0 {
		t.Errorf("unexpected adjustments: %+v", adj)
	}

	wantHeaders := []string{"Name", "Score", "Rate"}
	if len(table.Headers) != len(wantHeaders) {
		t.Fatalf("Headers = %q, want %q", table.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if table.Headers[i] != h {
			t.Errorf("Headers[%d] = %q, want %q", i, table.Headers[i], h)
		}
	}

	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if got := table.GetCell(0, 0).Display; got != "Alpha" {
		t.Errorf("cell(0,0) = %q, want Alpha", got)
	}
	if !table.GetCell(0, 0).IsHeader {
		t.Error("first cell should be a row header")
	}

	rate := table.GetCell(0, 2)
	if rate.Display != "45%" {
		t.Errorf("rate display = %q, want 45%%", rate.Display)
	}
	if n, ok := rate.Number(); !ok || n != 45 {
		t.Errorf("rate Number() = %v, %v, want 45, true", n, ok)
	}
}

func TestParse_Pipe(t *testing.T) {
	table, _ := Parse("Name|Value\nA|1\nB|2", format.Pipe)

	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}
	if table.GetCell(1, 0).Display != "B" {
		t.Errorf("cell(1,0) = %q, want B", table.GetCell(1, 0).Display)
	}
}

func TestParse_Auto(t *testing.T) {
	table, _ := Parse("Name;Value\nA;1", format.Auto)
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}
}

func TestParse_BlankLines(t *testing.T) {
	text := "\n\n  \nName,Value\n\n   \nA,1\n\t\nB,2\n\n"
	table, _ := Parse(text, format.Comma)

	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
	if table.Headers[0] != "Name" {
		t.Errorf("Headers[0] = %q, want Name", table.Headers[0])
	}
}

func TestParse_Empty(t *testing.T) {
	tests := []string{"", "   ", "\n\n", " \t \r\n "}

	for _, text := range tests {
		table, adj := Parse(text, format.Comma)
		if table == nil {
			t.Fatalf("Parse(%q) returned nil table", text)
		}
		if !table.IsEmpty() || table.RowCount() != 0 {
			t.Errorf("Parse(%q) should produce an empty table", text)
		}
		if len(adj) != 0 {
			t.Errorf("Parse(%q) adjustments = %+v, want none", text, adj)
		}
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	table, _ := Parse("A,B,C", format.Comma)
	if table.ColCount() != 3 || table.RowCount() != 0 {
		t.Errorf("got %d cols %d rows, want 3 cols 0 rows", table.ColCount(), table.RowCount())
	}
}

func TestParse_RaggedRows(t *testing.T) {
	text := "A,B,C\nx\ny,1,2,3,4\nz,1,2"
	table, adj := Parse(text, format.Comma)

	if table.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", table.RowCount())
	}
	for i, row := range table.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
	if !table.GetCell(0, 2).IsEmpty() {
		t.Error("short row should be padded with empty cells")
	}
	if table.GetCell(1, 2).Display != "2" {
		t.Errorf("long row cell(1,2) = %q, want 2", table.GetCell(1, 2).Display)
	}

	if len(adj) != 2 {
		t.Fatalf("got %d adjustments, want 2: %+v", len(adj), adj)
	}
	if adj[0].Kind != Padded || adj[0].Line != 2 || adj[0].Row != 0 || adj[0].Got != 1 || adj[0].Want != 3 {
		t.Errorf("adj[0] = %+v", adj[0])
	}
	if adj[1].Kind != Truncated || adj[1].Line != 3 || adj[1].Row != 1 || adj[1].Got != 5 {
		t.Errorf("adj[1] = %+v", adj[1])
	}
}

func TestParse_LineNumbersSkipBlankLines(t *testing.T) {
	_, adj := Parse("A,B\n\n\nx", format.Comma)
	if len(adj) != 1 || adj[0].Line != 4 {
		t.Errorf("adjustments = %+v, want one on line 4", adj)
	}
}

func TestParse_BOMAndCRLF(t *testing.T) {
	text := "\ufeffName,Value\r\nA,1\r\nB,2\r\n"
	table, _ := Parse(text, format.Comma)

	if table.Headers[0] != "Name" {
		t.Errorf("Headers[0] = %q, want Name without BOM", table.Headers[0])
	}
	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
	if strings.Contains(table.GetCell(1, 1).Display, "\r") {
		t.Error("carriage return leaked into cell text")
	}
}

func TestLines(t *testing.T) {
	lines := Lines("a\n\n b \r\n   \nc")
	if len(lines) != 3 {
		t.Fatalf("Lines() = %q, want 3 lines", lines)
	}
	if lines[1] != " b " {
		t.Errorf("Lines()[1] = %q, want %q", lines[1], " b ")
	}
}

func TestAdjustmentKind_String(t *testing.T) {
	if Padded.String() != "padded" || Truncated.String() != "truncated" {
		t.Error("unexpected AdjustmentKind strings")
	}
}
