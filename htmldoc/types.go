package htmldoc

// Table is one source table handed to the grid engine: text is raw (sup/sub
// wrapped in marker tags, not yet cleaned), spans and header flags come
// straight from the markup.
type Table struct {
	// Identifier is the table's number within its source file: the number
	// of a leading "Table N" label when one exists, else the table's
	// 1-based position in the file.
	Identifier string

	// Title, Caption, and Footer hold every string harvested by the
	// profile's selector lists, in selector order.
	Title   []string
	Caption []string
	Footer  []string

	Rows []TableRow
}

// RowCount returns the number of parsed rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// TableRow is one <tr> with its cells.
type TableRow struct {
	Cells []TableCell

	// HeaderMarker is set when the row matched the profile's header row
	// selector or carries its header class.
	HeaderMarker bool
}

// TableCell is one <td> or <th>.
type TableCell struct {
	Text     string
	IsHeader bool
	RowSpan  int
	ColSpan  int
}

// EmptyTable carries the text of a table wrapper that had no tabular
// content: publisher artifacts where the grid lives in a linked file or an
// image.
type EmptyTable struct {
	Title   string
	Caption string
	Footer  string
}

// IsZero reports whether the salvage carries no text at all.
func (e EmptyTable) IsZero() bool {
	return e.Title == "" && e.Caption == "" && e.Footer == ""
}

// Document is the harvest of one source file.
type Document struct {
	SourceFile string
	Tables     []*Table
	Empties    []EmptyTable
}
