package resolver

import (
	"strconv"
	"strings"

	"github.com/corpustools/tablex/model"
)

// FileTables pairs one source file with the logical tables assembled from
// it, in their within-file order.
type FileTables struct {
	SourceFile string
	Tables     []*model.LogicalTable
}

// Rename records one identifier rewrite made during collision resolution.
type Rename struct {
	SourceFile string
	From       string
	To         string
}

// ResolveCollisions folds ordered per-file table lists into one document
// with unique base identifiers: main document first, linked files after, in
// the caller's order. Each file numbers its own tables from 1, so the same
// base can arrive more than once; a colliding table is renumbered and its
// cells re-addressed. Arrival order is preserved. The fold threads the
// seen-base set through claim explicitly and must not be parallelized:
// renumbering depends on everything already claimed.
func ResolveCollisions(files []FileTables) (*model.TableDocument, []Rename) {
	source := ""
	if len(files) > 0 {
		source = files[0].SourceFile
	}
	doc := model.NewTableDocument(source)

	var renames []Rename
	seen := make(map[string]bool)
	for _, f := range files {
		for _, t := range f.Tables {
			if rename, ok := claim(seen, f.SourceFile, t); ok {
				renames = append(renames, rename)
			}
			doc.AddTable(t)
		}
	}
	return doc, renames
}

// claim records the table's base identifier in seen. When the base is
// already taken the table is renumbered first: the new base starts at
// len(seen)+1 and bumps past bases a sparsely numbered source already
// claimed, any segment suffix is preserved, and every cell id is rewritten
// to the new identifier.
func claim(seen map[string]bool, sourceFile string, t *model.LogicalTable) (Rename, bool) {
	base := t.BaseIdentifier()
	if !seen[base] {
		seen[base] = true
		return Rename{}, false
	}

	from := t.Identifier
	base = nextBase(seen)
	t.Identifier = rebase(t.Identifier, base)
	readdress(t)
	seen[base] = true

	return Rename{SourceFile: sourceFile, From: from, To: t.Identifier}, true
}

// nextBase returns the first free base at or above len(seen)+1.
func nextBase(seen map[string]bool) string {
	n := len(seen) + 1
	for seen[strconv.Itoa(n)] {
		n++
	}
	return strconv.Itoa(n)
}

// rebase swaps the component before the first "." for the new base, keeping
// any segment suffix ("2.3" rebased to "5" is "5.3").
func rebase(id, base string) string {
	if i := strings.Index(id, "."); i >= 0 {
		return base + id[i:]
	}
	return base
}

// readdress rewrites every cell id to the table's current identifier,
// keeping local row and column numbers. A cell id that does not parse is
// left alone.
func readdress(t *model.LogicalTable) {
	for j := range t.Header {
		t.Header[j].ID = readdressID(t.Header[j].ID, t.Identifier)
	}
	for si := range t.Sections {
		for _, row := range t.Sections[si].Rows {
			for ci := range row {
				row[ci].ID = readdressID(row[ci].ID, t.Identifier)
			}
		}
	}
}

func readdressID(id, tableID string) string {
	_, row, col, err := model.ParseCellID(id)
	if err != nil {
		return id
	}
	return model.FormatCellID(tableID, row, col)
}
