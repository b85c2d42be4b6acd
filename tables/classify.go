package tables

import (
	"unicode"
	"unicode/utf8"

	"github.com/corpustools/tablex/celltext"
)

// RowRole labels the structural function of one grid row.
type RowRole int

const (
	// Data is an ordinary value row.
	Data RowRole = iota
	// Header is a column-heading row.
	Header
	// Subheader is an additional heading row (units, statistics) detected
	// by column-type mismatch.
	Subheader
	// Superrow is a full-width row naming the section of data rows below it.
	Superrow
)

// String returns the string representation of the role.
func (r RowRole) String() string {
	switch r {
	case Header:
		return "Header"
	case Subheader:
		return "Subheader"
	case Superrow:
		return "Superrow"
	default:
		return "Data"
	}
}

// ColumnType is the inferred value type of one column.
type ColumnType int

const (
	// Numeric columns hold mostly parseable numbers.
	Numeric ColumnType = iota
	// Text columns hold mostly digit-free values.
	Text
	// Mixed columns hold values combining digits with other content.
	Mixed
)

// String returns the string representation of the column type.
func (t ColumnType) String() string {
	switch t {
	case Text:
		return "Text"
	case Mixed:
		return "Mixed"
	default:
		return "Numeric"
	}
}

// Default classification thresholds. There are no canonical HTML table
// semantics; these are the tunable knobs of the heuristics.
const (
	// DefaultSectionFraction is the largest ratio of distinct first-column
	// values to candidate rows at which the values are promoted to section
	// markers.
	DefaultSectionFraction = 0.5

	// DefaultSubheaderFraction is the smallest fraction of a row's cells
	// that must hold text values inside numeric or mixed columns for the
	// row to classify as a subheader.
	DefaultSubheaderFraction = 0.5
)

// Classifier labels grid rows as header, subheader, superrow, or data, and
// infers per-column value types.
type Classifier struct {
	// SectionFraction caps the distinct-to-candidates ratio for
	// first-column section inference.
	SectionFraction float64

	// SubheaderFraction is the minimum fraction of text-in-numeric-column
	// cells for subheader detection.
	SubheaderFraction float64
}

// NewClassifier creates a classifier with default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{
		SectionFraction:   DefaultSectionFraction,
		SubheaderFraction: DefaultSubheaderFraction,
	}
}

// Classification is the outcome of classifying one grid: a role per row, a
// type per column, and the header blocks driving segmentation. Grid points
// at the classified grid, which section inference may have rewritten.
type Classification struct {
	Grid *Grid

	// Roles holds one role per grid row.
	Roles []RowRole

	// Names holds the section name for each Superrow index, empty
	// elsewhere.
	Names []string

	// ColumnTypes holds the majority-vote type per column.
	ColumnTypes []ColumnType

	// HeaderBlocks are the maximal consecutive runs of header/subheader
	// row indices. More than one block means the grid holds several
	// logical tables stacked on top of each other.
	HeaderBlocks [][]int

	// Boundaries records how section structure was found.
	Boundaries BoundaryKind
}

// BoundaryKind tags which section-boundary heuristic applied.
type BoundaryKind int

const (
	// BoundaryNone means no section structure was found.
	BoundaryNone BoundaryKind = iota
	// BoundaryMarkerRows means dedicated full-width marker rows name the
	// sections.
	BoundaryMarkerRows
	// BoundaryFirstColumn means sections were inferred from repeated
	// first-column values; the grid was rewritten with synthetic marker
	// rows and its first column dropped.
	BoundaryFirstColumn
)

// String returns the string representation of the boundary kind.
func (k BoundaryKind) String() string {
	switch k {
	case BoundaryMarkerRows:
		return "MarkerRows"
	case BoundaryFirstColumn:
		return "FirstColumn"
	default:
		return "None"
	}
}

// Classify assigns a role to every grid row and a type to every column.
// When section inference fires, the grid is rewritten in place: synthetic
// marker rows inserted, first column dropped.
func (c *Classifier) Classify(g *Grid) *Classification {
	header := headerRows(g)

	bounds, header := c.DetectSectionBoundaries(g, header)

	n := g.RowCount()
	skip := make([]bool, n)
	for i := range skip {
		skip[i] = header[i] || bounds.Super[i]
	}
	types := c.columnTypes(g, skip)

	roles := make([]RowRole, n)
	for i, row := range g.Rows {
		switch {
		case header[i]:
			roles[i] = Header
		case bounds.Super[i]:
			roles[i] = Superrow
		case c.isSubheader(row, types):
			roles[i] = Subheader
		default:
			roles[i] = Data
		}
	}

	return &Classification{
		Grid:         g,
		Roles:        roles,
		Names:        bounds.Names,
		ColumnTypes:  types,
		HeaderBlocks: headerBlocks(roles),
		Boundaries:   bounds.Kind,
	}
}

// SectionBoundaries is the tagged outcome of section-boundary detection.
// Super and Names are aligned to the grid rows after any rewrite.
type SectionBoundaries struct {
	Kind  BoundaryKind
	Super []bool
	Names []string
}

// DetectSectionBoundaries looks for dedicated marker rows first, then falls
// back to first-column inference, which rewrites the grid. Both heuristics
// detect the same concept; the result tags which one applied. The returned
// header flags are aligned to the possibly rewritten grid.
func (c *Classifier) DetectSectionBoundaries(g *Grid, header []bool) (SectionBoundaries, []bool) {
	n := g.RowCount()
	bounds := SectionBoundaries{
		Kind:  BoundaryNone,
		Super: make([]bool, n),
		Names: make([]string, n),
	}

	for i, row := range g.Rows {
		if header[i] {
			continue
		}
		if name, ok := isSuperrow(row); ok {
			bounds.Kind = BoundaryMarkerRows
			bounds.Super[i], bounds.Names[i] = true, name
		}
	}
	if bounds.Kind == BoundaryMarkerRows {
		return bounds, header
	}

	synthetic, header, ok := c.inferSections(g, header)
	if !ok {
		return bounds, header
	}

	n = g.RowCount()
	bounds = SectionBoundaries{
		Kind:  BoundaryFirstColumn,
		Super: make([]bool, n),
		Names: make([]string, n),
	}
	for i, row := range g.Rows {
		if header[i] {
			continue
		}
		if synthetic[i] {
			// A promoted label is a marker by construction, whatever
			// character it starts with.
			bounds.Super[i], bounds.Names[i] = true, row.Cells[0].Text
			continue
		}
		if name, ok := isSuperrow(row); ok {
			bounds.Super[i], bounds.Names[i] = true, name
		}
	}
	return bounds, header
}

// inferSections promotes repeated first-column values to synthetic marker
// rows when they look like section labels: the distinct non-blank values
// must cover at most SectionFraction of the candidate rows, and the grid
// must be at least two columns wide (the label column is dropped after
// promotion). Returns the synthetic-row flags and remapped header flags.
func (c *Classifier) inferSections(g *Grid, header []bool) (synthetic, newHeader []bool, ok bool) {
	width := g.ColCount()
	if width < 2 {
		return nil, header, false
	}

	candidates, distinct := 0, 0
	seen := make(map[string]bool)
	for i, row := range g.Rows {
		if header[i] {
			continue
		}
		candidates++
		v := row.Cells[0].Text
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		distinct++
	}
	if distinct == 0 || float64(distinct) > c.SectionFraction*float64(candidates) {
		return nil, header, false
	}

	var rows []GridRow
	emitted := make(map[string]bool)
	for i, row := range g.Rows {
		if !header[i] {
			if v := row.Cells[0].Text; v != "" && !emitted[v] {
				emitted[v] = true
				marker := GridRow{Cells: make([]GridCell, width)}
				for j := range marker.Cells {
					marker.Cells[j].Text = v
				}
				rows = append(rows, marker)
				synthetic = append(synthetic, true)
				newHeader = append(newHeader, false)
			}
		}
		rows = append(rows, row)
		synthetic = append(synthetic, false)
		newHeader = append(newHeader, header[i])
	}

	for i := range rows {
		rows[i].Cells = rows[i].Cells[1:]
	}
	g.Rows = rows
	return synthetic, newHeader, true
}

// headerRows flags rows containing a source-flagged header cell or carrying
// the row-level header marker. When nothing is flagged, row 0 is the sole
// header.
func headerRows(g *Grid) []bool {
	flags := make([]bool, len(g.Rows))
	any := false
	for i, row := range g.Rows {
		if row.HeaderMarker {
			flags[i] = true
			any = true
			continue
		}
		for _, cell := range row.Cells {
			if cell.IsHeader {
				flags[i] = true
				any = true
				break
			}
		}
	}
	if !any && len(flags) > 0 {
		flags[0] = true
	}
	return flags
}

// isSuperrow reports whether the row's non-blank, de-duplicated values
// reduce to exactly one value starting with an alphabetic character, and
// returns that value as the section name.
func isSuperrow(row GridRow) (string, bool) {
	vals := distinctValues(row)
	if len(vals) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(vals[0])
	if !unicode.IsLetter(r) {
		return "", false
	}
	return vals[0], true
}

// isUniform is the weaker marker predicate: one distinct non-blank value,
// any leading character.
func isUniform(row GridRow) bool {
	return len(distinctValues(row)) == 1
}

// distinctValues returns the row's non-blank cell values, de-duplicated in
// order of first appearance.
func distinctValues(row GridRow) []string {
	var vals []string
	seen := make(map[string]bool)
	for _, c := range row.Cells {
		if c.Text == "" || seen[c.Text] {
			continue
		}
		seen[c.Text] = true
		vals = append(vals, c.Text)
	}
	return vals
}

// columnTypes votes per column over the candidate rows, ignoring blank and
// placeholder cells. Ties favor Numeric, then Text.
func (c *Classifier) columnTypes(g *Grid, skip []bool) []ColumnType {
	width := g.ColCount()
	types := make([]ColumnType, width)
	for col := 0; col < width; col++ {
		var numeric, text, mixed int
		for i, row := range g.Rows {
			if skip[i] {
				continue
			}
			switch celltext.CellKind(row.Cells[col].Text) {
			case celltext.KindNumeric:
				numeric++
			case celltext.KindText:
				text++
			case celltext.KindMixed:
				mixed++
			}
		}
		switch {
		case numeric >= text && numeric >= mixed:
			types[col] = Numeric
		case text >= mixed:
			types[col] = Text
		default:
			types[col] = Mixed
		}
	}
	return types
}

// isSubheader reports whether a non-header, non-superrow row reads as an
// extra heading: enough of its cells are text values sitting in numeric or
// mixed columns, or its values are uniform (the weaker marker predicate,
// catching rows like "95% CI" that fail the alphabetic-start check).
func (c *Classifier) isSubheader(row GridRow, types []ColumnType) bool {
	if isUniform(row) {
		return true
	}
	width := len(row.Cells)
	if width == 0 {
		return false
	}
	mismatch := 0
	for j, cell := range row.Cells {
		if types[j] == Text {
			continue
		}
		if celltext.CellKind(cell.Text) == celltext.KindText {
			mismatch++
		}
	}
	return float64(mismatch) >= c.SubheaderFraction*float64(width)
}

// headerBlocks groups header and subheader indices into maximal consecutive
// runs.
func headerBlocks(roles []RowRole) [][]int {
	var blocks [][]int
	var run []int
	for i, r := range roles {
		if r == Header || r == Subheader {
			run = append(run, i)
			continue
		}
		if len(run) > 0 {
			blocks = append(blocks, run)
			run = nil
		}
	}
	if len(run) > 0 {
		blocks = append(blocks, run)
	}
	return blocks
}
