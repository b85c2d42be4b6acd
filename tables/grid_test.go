package tables

import (
	"testing"

	"github.com/corpustools/tablex/htmldoc"
)

// Helper to create a source row of unit-span cells.
func makeRow(texts ...string) htmldoc.TableRow {
	row := htmldoc.TableRow{}
	for _, s := range texts {
		row.Cells = append(row.Cells, htmldoc.TableCell{Text: s, RowSpan: 1, ColSpan: 1})
	}
	return row
}

// Helper to create a cell with explicit spans.
func spanCell(text string, rowSpan, colSpan int) htmldoc.TableCell {
	return htmldoc.TableCell{Text: text, RowSpan: rowSpan, ColSpan: colSpan}
}

func TestBuildGrid_Simple(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B"),
		makeRow("1", "2"),
	}}

	g := BuildGrid(src)

	if g.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", g.RowCount())
	}
	if g.ColCount() != 2 {
		t.Fatalf("Expected 2 cols, got %d", g.ColCount())
	}
	if g.Dropped != 0 {
		t.Errorf("Expected no dropped cells, got %d", g.Dropped)
	}
	want := [][]string{{"A", "B"}, {"1", "2"}}
	for i, row := range want {
		for j, text := range row {
			if g.Text(i, j) != text {
				t.Errorf("Expected %q at (%d,%d), got %q", text, i, j, g.Text(i, j))
			}
		}
	}
}

func TestBuildGrid_RowspanReplication(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B"),
		{Cells: []htmldoc.TableCell{spanCell("Males", 2, 1), spanCell("1", 1, 1)}},
		makeRow("2"),
	}}

	g := BuildGrid(src)

	if g.ColCount() != 2 {
		t.Fatalf("Expected 2 cols, got %d", g.ColCount())
	}
	// The spanning cell's text appears in both covered rows.
	if g.Text(1, 0) != "Males" {
		t.Errorf("Expected 'Males' at (1,0), got %q", g.Text(1, 0))
	}
	if g.Text(2, 0) != "Males" {
		t.Errorf("Expected 'Males' at (2,0), got %q", g.Text(2, 0))
	}
	// The last row's only source cell lands after the covered column.
	if g.Text(2, 1) != "2" {
		t.Errorf("Expected '2' at (2,1), got %q", g.Text(2, 1))
	}
}

func TestBuildGrid_ColspanReplication(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		{Cells: []htmldoc.TableCell{spanCell("Span", 1, 3)}},
		makeRow("a", "b", "c"),
	}}

	g := BuildGrid(src)

	if g.ColCount() != 3 {
		t.Fatalf("Expected 3 cols, got %d", g.ColCount())
	}
	for j := 0; j < 3; j++ {
		if g.Text(0, j) != "Span" {
			t.Errorf("Expected 'Span' at (0,%d), got %q", j, g.Text(0, j))
		}
	}
}

func TestBuildGrid_ShortRowPadding(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B", "C"),
		makeRow("x"),
	}}

	g := BuildGrid(src)

	if g.Text(1, 0) != "x" {
		t.Errorf("Expected 'x' at (1,0), got %q", g.Text(1, 0))
	}
	if g.Text(1, 1) != "" || g.Text(1, 2) != "" {
		t.Errorf("Expected blank padding, got %q and %q", g.Text(1, 1), g.Text(1, 2))
	}
}

func TestBuildGrid_ExtraCellDropped(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B"),
		makeRow("x", "y", "z"),
	}}

	g := BuildGrid(src)

	if g.ColCount() != 2 {
		t.Fatalf("Expected 2 cols, got %d", g.ColCount())
	}
	if g.Dropped != 1 {
		t.Errorf("Expected 1 dropped cell, got %d", g.Dropped)
	}
	if g.Text(1, 0) != "x" || g.Text(1, 1) != "y" {
		t.Errorf("Expected [x y] in row 1, got [%q %q]", g.Text(1, 0), g.Text(1, 1))
	}
}

func TestBuildGrid_RowspanBeyondGridDropped(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B"),
		{Cells: []htmldoc.TableCell{spanCell("x", 3, 1), spanCell("y", 1, 1)}},
	}}

	g := BuildGrid(src)

	// The rowspan claims two rows below the grid; those writes are lost.
	if g.Dropped != 2 {
		t.Errorf("Expected 2 dropped cells, got %d", g.Dropped)
	}
	if g.Text(1, 0) != "x" || g.Text(1, 1) != "y" {
		t.Errorf("Expected [x y] in row 1, got [%q %q]", g.Text(1, 0), g.Text(1, 1))
	}
}

func TestBuildGrid_NoRows(t *testing.T) {
	g := BuildGrid(&htmldoc.Table{})

	if g.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", g.RowCount())
	}
	if g.ColCount() != 0 {
		t.Errorf("Expected 0 cols, got %d", g.ColCount())
	}
}

func TestBuildGrid_CleansText(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		makeRow("A", "B"),
		makeRow("  2.5 × 10⁻⁴ ", "(0.3)"),
	}}

	g := BuildGrid(src)

	if g.Text(1, 0) != "2.5e-4" {
		t.Errorf("Expected canonical scientific form, got %q", g.Text(1, 0))
	}
	if g.Text(1, 1) != "0.3" {
		t.Errorf("Expected unwrapped value, got %q", g.Text(1, 1))
	}
}

func TestBuildGrid_HeaderFlags(t *testing.T) {
	src := &htmldoc.Table{Rows: []htmldoc.TableRow{
		{
			Cells: []htmldoc.TableCell{
				{Text: "A", IsHeader: true, RowSpan: 2, ColSpan: 1},
				{Text: "B", IsHeader: true, RowSpan: 1, ColSpan: 1},
			},
			HeaderMarker: true,
		},
		makeRow("C"),
		makeRow("1", "2"),
	}}

	g := BuildGrid(src)

	if !g.Rows[0].HeaderMarker {
		t.Error("Expected row 0 to keep its header marker")
	}
	if !g.Rows[0].Cells[0].IsHeader || !g.Rows[0].Cells[1].IsHeader {
		t.Error("Expected row 0 cells to keep their header flags")
	}
	// Replication carries the header flag into the covered row.
	if !g.Rows[1].Cells[0].IsHeader {
		t.Error("Expected rowspan replication to carry the header flag")
	}
	if g.Rows[2].Cells[0].IsHeader {
		t.Error("Expected data row cells to stay unflagged")
	}
}
