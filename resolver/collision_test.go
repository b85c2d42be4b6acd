package resolver

import (
	"testing"

	"github.com/corpustools/tablex/model"
)

// makeTable builds a minimal logical table with addressed header and data
// cells for the given identifier.
func makeTable(id string) *model.LogicalTable {
	return &model.LogicalTable{
		Identifier: id,
		Header: model.HeaderRow{
			model.NewTextCell(model.FormatCellID(id, 1, 1), "A"),
		},
		Sections: []model.Section{{
			Rows: []model.DataRow{{
				model.NewNumericCell(model.FormatCellID(id, 2, 1), "1", 1),
			}},
		}},
	}
}

func identifiers(doc *model.TableDocument) []string {
	ids := make([]string, len(doc.Tables))
	for i, t := range doc.Tables {
		ids[i] = t.Identifier
	}
	return ids
}

// TestResolveCollisions_Disjoint tests that non-colliding files pass
// through untouched.
func TestResolveCollisions_Disjoint(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("1")}},
		{SourceFile: "t2.html", Tables: []*model.LogicalTable{makeTable("2")}},
	}

	doc, renames := ResolveCollisions(files)

	if doc.SourceFile != "main.html" {
		t.Errorf("expected source file main.html, got %q", doc.SourceFile)
	}
	if len(renames) != 0 {
		t.Errorf("expected no renames, got %v", renames)
	}
	got := identifiers(doc)
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("expected identifiers [1 2], got %v", got)
	}
}

// TestResolveCollisions_TwoFilesBothOne tests the classic case: two files
// each self-number their first table "1".
func TestResolveCollisions_TwoFilesBothOne(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("1")}},
		{SourceFile: "t1.html", Tables: []*model.LogicalTable{makeTable("1")}},
	}

	doc, renames := ResolveCollisions(files)

	got := identifiers(doc)
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected identifiers [1 2], got %v", got)
	}
	if len(renames) != 1 {
		t.Fatalf("expected 1 rename, got %d", len(renames))
	}
	r := renames[0]
	if r.SourceFile != "t1.html" || r.From != "1" || r.To != "2" {
		t.Errorf("unexpected rename: %+v", r)
	}
}

// TestResolveCollisions_SuffixPreserved tests that segment suffixes survive
// renumbering.
func TestResolveCollisions_SuffixPreserved(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("2")}},
		{SourceFile: "t.html", Tables: []*model.LogicalTable{makeTable("2"), makeTable("2.2")}},
	}

	doc, renames := ResolveCollisions(files)

	got := identifiers(doc)
	if len(got) != 3 || got[0] != "2" || got[1] != "3" || got[2] != "4.2" {
		t.Fatalf("expected identifiers [2 3 4.2], got %v", got)
	}
	if len(renames) != 2 {
		t.Fatalf("expected 2 renames, got %d", len(renames))
	}
	if renames[1].From != "2.2" || renames[1].To != "4.2" {
		t.Errorf("unexpected second rename: %+v", renames[1])
	}
}

// TestResolveCollisions_SparseBump tests that renumbering skips bases a
// sparsely numbered source already claimed.
func TestResolveCollisions_SparseBump(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("1"), makeTable("3")}},
		{SourceFile: "t.html", Tables: []*model.LogicalTable{makeTable("1")}},
	}

	doc, renames := ResolveCollisions(files)

	// len(seen)+1 is 3, which is taken, so the rename bumps to 4.
	got := identifiers(doc)
	if len(got) != 3 || got[2] != "4" {
		t.Fatalf("expected last identifier 4, got %v", got)
	}
	if len(renames) != 1 || renames[0].To != "4" {
		t.Errorf("expected rename to 4, got %v", renames)
	}
}

// TestResolveCollisions_RewritesCellIDs tests that a renumbered table's
// cell addresses move with it.
func TestResolveCollisions_RewritesCellIDs(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("1")}},
		{SourceFile: "t.html", Tables: []*model.LogicalTable{makeTable("1")}},
	}

	doc, _ := ResolveCollisions(files)

	renamed := doc.Tables[1]
	if got := renamed.Header[0].ID; got != "2.1.1" {
		t.Errorf("expected header cell id 2.1.1, got %q", got)
	}
	if got := renamed.Sections[0].Rows[0][0].ID; got != "2.2.1" {
		t.Errorf("expected data cell id 2.2.1, got %q", got)
	}
	// The surviving table keeps its addresses.
	if got := doc.Tables[0].Header[0].ID; got != "1.1.1" {
		t.Errorf("expected untouched cell id 1.1.1, got %q", got)
	}
}

// TestResolveCollisions_WithinFile tests that duplicate labels inside one
// file also resolve.
func TestResolveCollisions_WithinFile(t *testing.T) {
	files := []FileTables{
		{SourceFile: "main.html", Tables: []*model.LogicalTable{makeTable("1"), makeTable("1")}},
	}

	doc, renames := ResolveCollisions(files)

	got := identifiers(doc)
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected identifiers [1 2], got %v", got)
	}
	if len(renames) != 1 || renames[0].SourceFile != "main.html" {
		t.Errorf("unexpected renames: %v", renames)
	}
}

// TestResolveCollisions_Empty tests the degenerate no-input case.
func TestResolveCollisions_Empty(t *testing.T) {
	doc, renames := ResolveCollisions(nil)

	if doc == nil {
		t.Fatal("expected a document, got nil")
	}
	if doc.TableCount() != 0 {
		t.Errorf("expected empty document, got %d tables", doc.TableCount())
	}
	if len(renames) != 0 {
		t.Errorf("expected no renames, got %v", renames)
	}
}
