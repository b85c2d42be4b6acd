package resolver

import (
	"testing"

	"github.com/corpustools/tablex/model"
)

func docWith(tables ...*model.LogicalTable) *model.TableDocument {
	doc := model.NewTableDocument("main.html")
	for _, t := range tables {
		doc.AddTable(t)
	}
	return doc
}

// TestMergeEmptyRecords_Title tests the label-strip on a matched title.
func TestMergeEmptyRecords_Title(t *testing.T) {
	tab := makeTable("2")
	tab.Title = "old"
	doc := docWith(tab)

	unmatched := MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 2. Foo"},
	})

	if len(unmatched) != 0 {
		t.Fatalf("expected no unmatched records, got %d", len(unmatched))
	}
	if tab.Title != "Foo" {
		t.Errorf("expected title 'Foo', got %q", tab.Title)
	}
}

// TestMergeEmptyRecords_AllFields tests that caption and footer transfer
// verbatim alongside the stripped title.
func TestMergeEmptyRecords_AllFields(t *testing.T) {
	tab := makeTable("1")
	doc := docWith(tab)

	MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 1. Baseline data", Caption: "All values are means.", Footer: "a p<0.05"},
	})

	if tab.Title != "Baseline data" {
		t.Errorf("expected stripped title, got %q", tab.Title)
	}
	if tab.Caption != "All values are means." {
		t.Errorf("expected caption transferred, got %q", tab.Caption)
	}
	if tab.Footer != "a p<0.05" {
		t.Errorf("expected footer transferred, got %q", tab.Footer)
	}
}

// TestMergeEmptyRecords_PartialFields tests that empty record fields leave
// the table's own text alone.
func TestMergeEmptyRecords_PartialFields(t *testing.T) {
	tab := makeTable("1")
	tab.Caption = "original caption"
	doc := docWith(tab)

	MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 1. New title"},
	})

	if tab.Title != "New title" {
		t.Errorf("expected title replaced, got %q", tab.Title)
	}
	if tab.Caption != "original caption" {
		t.Errorf("expected caption kept, got %q", tab.Caption)
	}
}

// TestMergeEmptyRecords_BareLabel tests that a title holding only the label
// matches without erasing the table's title.
func TestMergeEmptyRecords_BareLabel(t *testing.T) {
	tab := makeTable("2")
	tab.Title = "kept"
	doc := docWith(tab)

	unmatched := MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 2.", Footer: "note"},
	})

	if len(unmatched) != 0 {
		t.Fatalf("expected the record to match, got %d unmatched", len(unmatched))
	}
	if tab.Title != "kept" {
		t.Errorf("expected title kept, got %q", tab.Title)
	}
	if tab.Footer != "note" {
		t.Errorf("expected footer transferred, got %q", tab.Footer)
	}
}

// TestMergeEmptyRecords_NoMatch tests that unmatched records come back and
// touch nothing.
func TestMergeEmptyRecords_NoMatch(t *testing.T) {
	tab := makeTable("1")
	tab.Title = "untouched"
	doc := docWith(tab)

	unmatched := MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 9. Stray"},
		{Title: "Supplementary figure"},
	})

	if len(unmatched) != 2 {
		t.Fatalf("expected 2 unmatched records, got %d", len(unmatched))
	}
	if tab.Title != "untouched" {
		t.Errorf("expected title untouched, got %q", tab.Title)
	}
}

// TestMergeEmptyRecords_FirstMatchWins tests document-order matching when
// one label is a prefix of another.
func TestMergeEmptyRecords_FirstMatchWins(t *testing.T) {
	first := makeTable("2")
	second := makeTable("2.2")
	doc := docWith(first, second)

	MergeEmptyRecords(doc, []model.EmptyTableRecord{
		{Title: "Table 2.2. Foo"},
	})

	// "Table 2." opens the record title too, and table "2" comes first.
	if first.Title != "2. Foo" {
		t.Errorf("expected first table to take the record, got %q", first.Title)
	}
	if second.Title != "" {
		t.Errorf("expected second table untouched, got %q", second.Title)
	}
}
