package bioc

import (
	"encoding/json"
	"io"
	"time"

	"github.com/corpustools/tablex/model"
)

// Fixed envelope values expected by downstream consumers of the tables
// interchange format.
const (
	// Source identifies the producing pipeline.
	Source = "Auto-CORPus (tables)"

	// Key is the collection key.
	Key = "autocorpus_tables.key"

	// DateFormat is the YYYYMMDD layout of the collection date.
	DateFormat = "20060102"
)

// Collection is the interchange envelope for one article: one document per
// logical table.
type Collection struct {
	Source    string            `json:"source"`
	Date      string            `json:"date"`
	Key       string            `json:"key"`
	Infons    map[string]string `json:"infons"`
	Documents []Document        `json:"documents"`
}

// Document carries one logical table and its descriptive passages.
type Document struct {
	ID       string            `json:"id"`
	Infons   map[string]string `json:"infons"`
	Passages []Passage         `json:"passages"`
}

// Passage is either a descriptive text passage (title, caption, footer) or
// the table content passage carrying headings and data rows.
type Passage struct {
	Offset         int               `json:"offset"`
	Infons         map[string]string `json:"infons,omitempty"`
	Text           string            `json:"text,omitempty"`
	ColumnHeadings []CellValue       `json:"column_headings,omitempty"`
	DataSection    []SectionContent  `json:"data_section,omitempty"`
}

// CellValue is one addressed cell in interchange form. CellText holds the
// parsed float for numeric cells and the string otherwise.
type CellValue struct {
	CellID   string `json:"cell_id"`
	CellText any    `json:"cell_text"`
}

// SectionContent groups the data rows of one table section.
type SectionContent struct {
	SectionTitle string        `json:"table_section_title_1"`
	DataRows     [][]CellValue `json:"data_rows"`
}

type options struct {
	date time.Time
}

// Option configures collection building.
type Option func(*options)

// WithDate pins the collection date, for reproducible output. The default
// is the current time.
func WithDate(t time.Time) Option {
	return func(o *options) {
		o.date = t
	}
}

// FromDocument builds the interchange collection for one resolved document.
func FromDocument(doc *model.TableDocument, opts ...Option) *Collection {
	o := options{date: time.Now()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collection{
		Source:    Source,
		Date:      o.date.Format(DateFormat),
		Key:       Key,
		Infons:    map[string]string{},
		Documents: make([]Document, 0, doc.TableCount()),
	}
	for _, t := range doc.Tables {
		c.Documents = append(c.Documents, documentFor(t, doc.SourceFile))
	}
	return c
}

// documentFor converts one logical table: text passages for its non-empty
// descriptive fields, then the content passage.
func documentFor(t *model.LogicalTable, sourceFile string) Document {
	d := Document{
		ID:     t.Identifier,
		Infons: map[string]string{"inputfile": sourceFile},
	}

	if t.Title != "" {
		d.Passages = append(d.Passages, textPassage(t.Title, "document_title", "document title", "IAO:0000305"))
	}
	if t.Caption != "" {
		d.Passages = append(d.Passages, textPassage(t.Caption, "table_caption", "caption", "IAO:0000304"))
	}
	if t.Footer != "" {
		d.Passages = append(d.Passages, textPassage(t.Footer, "table_footer", "caption", "IAO:0000304"))
	}
	d.Passages = append(d.Passages, contentPassage(t))

	return d
}

func textPassage(text, section, iaoName, iaoID string) Passage {
	return Passage{
		Infons: map[string]string{
			"section_title_1": section,
			"iao_name_1":      iaoName,
			"iao_id_1":        iaoID,
		},
		Text: text,
	}
}

func contentPassage(t *model.LogicalTable) Passage {
	var p Passage
	for _, cell := range t.Header {
		p.ColumnHeadings = append(p.ColumnHeadings, cellValue(cell))
	}
	for _, sec := range t.Sections {
		sc := SectionContent{
			SectionTitle: sec.Name,
			DataRows:     make([][]CellValue, 0, len(sec.Rows)),
		}
		for _, row := range sec.Rows {
			cells := make([]CellValue, len(row))
			for i, cell := range row {
				cells[i] = cellValue(cell)
			}
			sc.DataRows = append(sc.DataRows, cells)
		}
		p.DataSection = append(p.DataSection, sc)
	}
	return p
}

func cellValue(c model.Cell) CellValue {
	if c.Numeric {
		return CellValue{CellID: c.ID, CellText: c.Value}
	}
	return CellValue{CellID: c.ID, CellText: c.Text}
}

// WriteJSON writes the collection as indented JSON. Markup fragments in
// cell text are written literally, not HTML-escaped.
func (c *Collection) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
