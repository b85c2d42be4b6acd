package tables

import (
	"github.com/corpustools/tablex/celltext"
	"github.com/corpustools/tablex/htmldoc"
)

// GridCell is one resolved cell of the fixed-width matrix. Text is cleaned
// cell text; IsHeader carries the source header flag through span
// replication.
type GridCell struct {
	Text     string
	IsHeader bool
}

// GridRow is one resolved grid row.
type GridRow struct {
	Cells []GridCell

	// HeaderMarker is the row-level header flag from the source markup.
	HeaderMarker bool
}

// Grid is the fixed-width matrix built from one source table: every
// rowspan/colspan resolved by replicating the cell into each coordinate it
// covers, every cell text cleaned and normalized.
type Grid struct {
	Rows []GridRow

	// Dropped counts coordinate writes that fell outside the grid bounds
	// (malformed span metadata). The affected text is lost.
	Dropped int
}

// RowCount returns the number of grid rows.
func (g *Grid) RowCount() int {
	return len(g.Rows)
}

// ColCount returns the fixed grid width.
func (g *Grid) ColCount() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0].Cells)
}

// Text returns the cleaned text at (row, col).
func (g *Grid) Text(row, col int) string {
	return g.Rows[row].Cells[col].Text
}

// BuildGrid resolves a source table into a Grid. The width is the colspan
// sum of the first row; short rows are padded with empty cells; writes
// outside the bounds are dropped and counted. A table with no rows yields
// an empty grid, which the caller skips.
func BuildGrid(t *htmldoc.Table) *Grid {
	g := &Grid{}
	if t == nil || len(t.Rows) == 0 {
		return g
	}

	width := 0
	for _, c := range t.Rows[0].Cells {
		width += span(c.ColSpan)
	}
	height := len(t.Rows)

	g.Rows = make([]GridRow, height)
	for i := range g.Rows {
		g.Rows[i].Cells = make([]GridCell, width)
		g.Rows[i].HeaderMarker = t.Rows[i].HeaderMarker
	}

	// pending[col] counts rows still covered by a rowspan opened above.
	pending := make([]int, width)

	for r, row := range t.Rows {
		col := 0
		for _, cell := range row.Cells {
			for col < width && pending[col] > 0 {
				col++
			}

			text := celltext.Clean(cell.Text)
			rs, cs := span(cell.RowSpan), span(cell.ColSpan)

			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					rr, cc := r+dr, col+dc
					if rr >= height || cc >= width {
						g.Dropped++
						continue
					}
					g.Rows[rr].Cells[cc] = GridCell{Text: text, IsHeader: cell.IsHeader}
				}
			}

			for dc := 0; dc < cs; dc++ {
				if col+dc < width {
					pending[col+dc] = rs
				}
			}
			col += cs
		}

		for i := range pending {
			if pending[i] > 0 {
				pending[i]--
			}
		}
	}

	return g
}

// span clamps a parsed span attribute to at least 1.
func span(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
