package resolver

import (
	"strings"

	"github.com/corpustools/tablex/model"
)

// MergeEmptyRecords attaches salvaged descriptive text onto the tables it
// belongs to. Each record is matched to the first table, in document order,
// whose "Table {identifier}." label opens the record's title. On a match
// each non-empty piece of the record overwrites the table's corresponding
// field, the title with its label stripped, caption and footer verbatim.
// Records matching no table are returned for the caller to report.
func MergeEmptyRecords(doc *model.TableDocument, records []model.EmptyTableRecord) []model.EmptyTableRecord {
	var unmatched []model.EmptyTableRecord
	for _, rec := range records {
		t, label := match(doc.Tables, rec)
		if t == nil {
			unmatched = append(unmatched, rec)
			continue
		}
		apply(t, rec, label)
	}
	return unmatched
}

// match returns the first table whose label opens the record's title, and
// the label it matched on.
func match(tables []*model.LogicalTable, rec model.EmptyTableRecord) (*model.LogicalTable, string) {
	for _, t := range tables {
		label := "Table " + t.Identifier + "."
		if strings.HasPrefix(rec.Title, label) {
			return t, label
		}
	}
	return nil, ""
}

// apply copies the record's non-empty fields onto the table. A title that
// holds nothing beyond the label contributes no text and leaves the table's
// own title in place.
func apply(t *model.LogicalTable, rec model.EmptyTableRecord, label string) {
	if title := strings.TrimSpace(strings.TrimPrefix(rec.Title, label)); title != "" {
		t.Title = title
	}
	if rec.Caption != "" {
		t.Caption = rec.Caption
	}
	if rec.Footer != "" {
		t.Footer = rec.Footer
	}
}
