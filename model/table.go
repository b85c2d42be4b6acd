package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is one addressed table cell. ID follows the "table.row.col" address
// scheme (1-based, row-major within a table). Text always holds the cleaned
// string form; Value holds the parsed number when Numeric is set.
type Cell struct {
	ID      string
	Text    string
	Value   float64
	Numeric bool
}

// NewTextCell creates a string-valued cell.
func NewTextCell(id, text string) Cell {
	return Cell{ID: id, Text: text}
}

// NewNumericCell creates a numeric cell. Text keeps the normalized string the
// value was parsed from.
func NewNumericCell(id, text string, value float64) Cell {
	return Cell{ID: id, Text: text, Value: value, Numeric: true}
}

// String returns the display form of the cell value.
func (c Cell) String() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Value, 'g', -1, 64)
	}
	return c.Text
}

// HeaderRow is the compound header of a logical table, one merged cell per
// column.
type HeaderRow []Cell

// DataRow is one row of data cells.
type DataRow []Cell

// Section groups consecutive data rows under one section marker. Name is
// empty for the implicit leading section.
type Section struct {
	Name string
	Rows []DataRow
}

// LogicalTable is one self-contained table after segmentation: a stable
// identifier, surrounding text, a merged header, and the data rows
// partitioned into sections.
type LogicalTable struct {
	Identifier string
	Title      string
	Caption    string
	Footer     string
	Header     HeaderRow
	Sections   []Section
}

// BaseIdentifier returns the table's identifier component before the first
// ".". Segments of one source table share a base ("2", "2.2", "2.3").
func (t *LogicalTable) BaseIdentifier() string {
	return BaseIdentifier(t.Identifier)
}

// ColCount returns the number of header columns.
func (t *LogicalTable) ColCount() int {
	return len(t.Header)
}

// DataRowCount returns the number of data rows across all sections.
func (t *LogicalTable) DataRowCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Rows)
	}
	return n
}

// DataRows returns the data rows of all sections in document order.
func (t *LogicalTable) DataRows() []DataRow {
	rows := make([]DataRow, 0, t.DataRowCount())
	for _, s := range t.Sections {
		rows = append(rows, s.Rows...)
	}
	return rows
}

// ToMarkdown renders the table in markdown format. Section names appear as
// full-width label rows.
func (t *LogicalTable) ToMarkdown() string {
	if len(t.Header) == 0 {
		return ""
	}

	var sb strings.Builder

	for j, cell := range t.Header {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Header)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for j := range t.Header {
		sb.WriteString("|---")
		if j == len(t.Header)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	for _, section := range t.Sections {
		if section.Name != "" {
			sb.WriteString("| **")
			sb.WriteString(section.Name)
			sb.WriteString("** ")
			for j := 1; j < len(t.Header); j++ {
				sb.WriteString("| ")
			}
			sb.WriteString("|\n")
		}
		for _, row := range section.Rows {
			for j, cell := range row {
				sb.WriteString("| ")
				sb.WriteString(strings.ReplaceAll(cell.String(), "\n", " "))
				sb.WriteString(" ")
				if j == len(row)-1 {
					sb.WriteString("|")
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ToCSV renders the table in CSV format. Section names appear in the first
// column of an otherwise empty row.
func (t *LogicalTable) ToCSV() string {
	var sb strings.Builder

	writeRow := func(values []string) {
		for j, text := range values {
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(values)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	header := make([]string, len(t.Header))
	for j, cell := range t.Header {
		header[j] = cell.Text
	}
	writeRow(header)

	for _, section := range t.Sections {
		if section.Name != "" {
			label := make([]string, len(t.Header))
			label[0] = section.Name
			writeRow(label)
		}
		for _, row := range section.Rows {
			values := make([]string, len(row))
			for j, cell := range row {
				values[j] = cell.String()
			}
			writeRow(values)
		}
	}

	return sb.String()
}

// FormatCellID builds the "{table}.{row}.{col}" cell address.
func FormatCellID(tableID string, row, col int) string {
	return tableID + "." + strconv.Itoa(row) + "." + strconv.Itoa(col)
}

// ParseCellID splits a cell address into its table, row, and column parts.
// The table part may itself contain dots: "2.2.3.1" is table "2.2", row 3,
// column 1.
func ParseCellID(id string) (tableID string, row, col int, err error) {
	parts := strings.Split(id, ".")
	if len(parts) < 3 {
		return "", 0, 0, fmt.Errorf("invalid cell id %q: want table.row.col", id)
	}

	col, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid cell id %q: bad column: %w", id, err)
	}
	row, err = strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid cell id %q: bad row: %w", id, err)
	}
	if row < 1 || col < 1 {
		return "", 0, 0, fmt.Errorf("invalid cell id %q: row and column are 1-based", id)
	}

	tableID = strings.Join(parts[:len(parts)-2], ".")
	if tableID == "" {
		return "", 0, 0, fmt.Errorf("invalid cell id %q: empty table identifier", id)
	}
	return tableID, row, col, nil
}

// BaseIdentifier returns the part of a table identifier before the first ".".
func BaseIdentifier(id string) string {
	if i := strings.Index(id, "."); i >= 0 {
		return id[:i]
	}
	return id
}
