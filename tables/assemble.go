package tables

import (
	"strconv"
	"strings"

	"github.com/corpustools/tablex/celltext"
	"github.com/corpustools/tablex/htmldoc"
	"github.com/corpustools/tablex/model"
)

// Meta is the descriptive text shared by every segment assembled from one
// source table.
type Meta struct {
	Title   string
	Caption string
	Footer  string
}

// Assemble walks a classified grid top to bottom and emits one
// LogicalTable per header change: entering a header block whose merged
// header differs from the active one, after at least one data row, closes
// the current table and opens a segment (base, base.2, base.3, ...).
// Superrows name sections; data rows become addressed cells, the merged
// header being local row 1 and data rows numbering from 2 within each
// segment.
func Assemble(cls *Classification, base string, meta Meta) []*model.LogicalTable {
	g := cls.Grid

	blockAt := make(map[int][]int, len(cls.HeaderBlocks))
	for _, b := range cls.HeaderBlocks {
		blockAt[b[0]] = b
	}

	var (
		out          []*model.LogicalTable
		current      *model.LogicalTable
		activeHeader []string
		segment      = 1
		nextRow      int
		dataEmitted  bool
		sectionName  string
	)

	ident := func() string {
		if segment == 1 {
			return base
		}
		return base + "." + strconv.Itoa(segment)
	}

	open := func(header []string) {
		current = &model.LogicalTable{
			Identifier: ident(),
			Title:      meta.Title,
			Caption:    meta.Caption,
			Footer:     meta.Footer,
		}
		current.Header = headerCells(current.Identifier, header)
		activeHeader = header
		nextRow = 2
		dataEmitted = false
		sectionName = ""
		out = append(out, current)
	}

	for i := 0; i < len(cls.Roles); {
		if block, ok := blockAt[i]; ok {
			merged := MergeHeaderBlock(g, block)
			switch {
			case current == nil:
				open(merged)
			case dataEmitted && !sameHeader(merged, activeHeader):
				segment++
				open(merged)
			case !sameHeader(merged, activeHeader):
				// A further header block before any data refines the
				// current table's header instead of splitting.
				current.Header = headerCells(current.Identifier, merged)
				activeHeader = merged
			}
			i = block[len(block)-1] + 1
			continue
		}

		switch cls.Roles[i] {
		case Superrow:
			if current == nil {
				open(nil)
			}
			if name := cls.Names[i]; name != sectionName {
				sectionName = name
				current.Sections = append(current.Sections, model.Section{Name: name})
			}

		case Data:
			if current == nil {
				open(nil)
			}
			if len(current.Sections) == 0 {
				current.Sections = append(current.Sections, model.Section{Name: sectionName})
			}
			cells := make(model.DataRow, len(g.Rows[i].Cells))
			for j, cell := range g.Rows[i].Cells {
				cells[j] = dataCell(current.Identifier, nextRow, j+1, cell.Text)
			}
			sec := &current.Sections[len(current.Sections)-1]
			sec.Rows = append(sec.Rows, cells)
			nextRow++
			dataEmitted = true
		}
		i++
	}

	return out
}

// headerCells addresses a merged header as local row 1.
func headerCells(tableID string, merged []string) model.HeaderRow {
	if len(merged) == 0 {
		return nil
	}
	cells := make(model.HeaderRow, len(merged))
	for j, text := range merged {
		cells[j] = model.NewTextCell(model.FormatCellID(tableID, 1, j+1), text)
	}
	return cells
}

// dataCell builds an addressed cell, carrying the parsed value when the
// text reads as a number (marker tags transparent) and the cleaned string
// otherwise. A failed parse keeps the string; it never errors.
func dataCell(tableID string, row, col int, text string) model.Cell {
	id := model.FormatCellID(tableID, row, col)
	if v, ok := celltext.ParseNumber(celltext.StripMarkers(text)); ok {
		return model.NewNumericCell(id, text, v)
	}
	return model.NewTextCell(id, text)
}

// Process runs the full pipeline for one source table: grid building,
// classification, header merging, assembly. It returns the assembled
// tables plus the grid's dropped-write count. A table with no rows yields
// no output, which the caller treats as a skip, not an error.
func Process(t *htmldoc.Table) ([]*model.LogicalTable, int) {
	g := BuildGrid(t)
	if g.RowCount() == 0 {
		return nil, g.Dropped
	}
	cls := NewClassifier().Classify(g)
	tables := Assemble(cls, t.Identifier, Meta{
		Title:   strings.Join(t.Title, " "),
		Caption: strings.Join(t.Caption, " "),
		Footer:  strings.Join(t.Footer, " "),
	})
	return tables, g.Dropped
}
