package model

// TableDocument holds every logical table recovered from one article: the
// main file plus any linked table files, after collision resolution.
type TableDocument struct {
	SourceFile string
	Tables     []*LogicalTable
}

// NewTableDocument creates an empty document for the given source file.
func NewTableDocument(sourceFile string) *TableDocument {
	return &TableDocument{
		SourceFile: sourceFile,
		Tables:     make([]*LogicalTable, 0),
	}
}

// AddTable appends a table, preserving arrival order.
func (d *TableDocument) AddTable(t *LogicalTable) {
	d.Tables = append(d.Tables, t)
}

// TableCount returns the number of logical tables in the document.
func (d *TableDocument) TableCount() int {
	return len(d.Tables)
}

// GetTable returns the table with the given identifier, or nil.
func (d *TableDocument) GetTable(identifier string) *LogicalTable {
	for _, t := range d.Tables {
		if t.Identifier == identifier {
			return t
		}
	}
	return nil
}

// BaseIdentifiers returns the base identifier of each table in order.
func (d *TableDocument) BaseIdentifiers() []string {
	bases := make([]string, len(d.Tables))
	for i, t := range d.Tables {
		bases[i] = t.BaseIdentifier()
	}
	return bases
}

// TableCollection is an ordered batch of per-article documents.
type TableCollection []*TableDocument

// TableCount returns the total number of tables across all documents.
func (c TableCollection) TableCount() int {
	n := 0
	for _, d := range c {
		n += d.TableCount()
	}
	return n
}

// EmptyTableRecord carries title/caption/footer text salvaged from markup
// that had no genuine table element.
type EmptyTableRecord struct {
	Title   string
	Caption string
	Footer  string
}

// IsZero reports whether the record carries no text at all.
func (r EmptyTableRecord) IsZero() bool {
	return r.Title == "" && r.Caption == "" && r.Footer == ""
}
