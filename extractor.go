package tablex

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/corpustools/tablex/bioc"
	"github.com/corpustools/tablex/format"
	"github.com/corpustools/tablex/htmldoc"
	"github.com/corpustools/tablex/model"
	"github.com/corpustools/tablex/profile"
	"github.com/corpustools/tablex/resolver"
	"github.com/corpustools/tablex/tables"
)

// Extractor provides a fluent interface for extracting tables from article
// HTML. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is set)
	filename string
	source   io.Reader

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithProfile selects the selector profile used to find tables and their
// surrounding text. A nil profile means the PMC defaults.
//
// Example:
//
//	prof, _ := profile.Load("publisher.yml")
//	doc, _, err := tablex.Open("article.html").WithProfile(prof).Document()
func (e *Extractor) WithProfile(p *profile.Profile) *Extractor {
	newExt := e.clone()
	newExt.options.profile = p
	return newExt
}

// Linked adds table files published alongside the main article. Their
// tables are folded into the article's document after the main file's, in
// the order given. Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := tablex.Open("article.html").
//	    Linked("table_1.html", "table_2.html").
//	    Document()
func (e *Extractor) Linked(files ...string) *Extractor {
	newExt := e.clone()
	newExt.options.linked = append(newExt.options.linked, files...)
	return newExt
}

// AutoLink discovers linked table files in the main file's directory using
// the profile's linked-file globs. Discovered files sort after any
// explicitly Linked ones. Discovery needs a path, so AutoLink has no
// effect on a FromReader extractor.
//
// Example:
//
//	doc, _, err := tablex.Open("article.html").AutoLink().Document()
func (e *Extractor) AutoLink() *Extractor {
	newExt := e.clone()
	newExt.options.autoLink = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Document extracts every table from the configured sources into one
// normalized document: grids built, rows classified, headers merged,
// sections assembled, identifiers made unique across files, empty-table
// text merged back in.
//
// Returns the document, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal conditions
// (e.g., a spanned cell reaching outside its grid) where extraction
// succeeded but part of the input degraded to best-effort handling.
//
// Example:
//
//	doc, warnings, err := tablex.Open("article.html").AutoLink().Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tablex.FormatWarnings(warnings))
//	}
func (e *Extractor) Document() (*model.TableDocument, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	return e.run()
}

// BioC extracts like Document and wraps the result as a BioC collection
// ready for serialization with WriteJSON.
//
// Example:
//
//	coll, _, err := tablex.Open("article.html").BioC(bioc.WithDate(pub))
//	if err == nil {
//	    err = coll.WriteJSON(os.Stdout)
//	}
func (e *Extractor) BioC(opts ...bioc.Option) (*bioc.Collection, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}
	return bioc.FromDocument(doc, opts...), warnings, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// run executes the extraction pipeline: parse the main source, parse any
// linked files, process every table, resolve identifier collisions across
// files, and merge salvaged empty-table text.
func (e *Extractor) run() (*model.TableDocument, []Warning, error) {
	prof := e.options.profile
	if prof == nil {
		prof = profile.Default()
	}

	main, err := e.openMain(prof)
	if err != nil {
		return nil, nil, err
	}

	sources := []*htmldoc.Document{main}
	linked, err := e.linkedFiles(prof)
	if err != nil {
		return nil, nil, err
	}
	for _, lf := range linked {
		ldoc, err := htmldoc.Open(lf, prof)
		if err != nil {
			return nil, nil, fmt.Errorf("linked file %s: %w", lf, err)
		}
		sources = append(sources, ldoc)
	}

	var warnings []Warning
	var files []resolver.FileTables
	var records []model.EmptyTableRecord

	for _, src := range sources {
		ft := resolver.FileTables{SourceFile: src.SourceFile}
		for _, t := range src.Tables {
			built, dropped := tables.Process(t)
			if dropped > 0 {
				warnings = append(warnings, Warning{
					File:    src.SourceFile,
					Table:   t.Identifier,
					Message: fmt.Sprintf("%d spanned cell writes fell outside the grid", dropped),
				})
			}
			if len(built) == 0 {
				warnings = append(warnings, Warning{
					File:    src.SourceFile,
					Table:   t.Identifier,
					Message: "no rows; table skipped",
				})
				continue
			}
			ft.Tables = append(ft.Tables, built...)
		}
		files = append(files, ft)

		for _, em := range src.Empties {
			records = append(records, model.EmptyTableRecord{
				Title:   em.Title,
				Caption: em.Caption,
				Footer:  em.Footer,
			})
		}
	}

	doc, renames := resolver.ResolveCollisions(files)
	for _, rn := range renames {
		warnings = append(warnings, Warning{
			File:    rn.SourceFile,
			Table:   rn.To,
			Message: fmt.Sprintf("identifier %s already in use; renumbered to %s", rn.From, rn.To),
		})
	}

	for _, rec := range resolver.MergeEmptyRecords(doc, records) {
		warnings = append(warnings, Warning{
			File:    doc.SourceFile,
			Message: fmt.Sprintf("empty-table record %q matched no table", rec.Title),
		})
	}

	return doc, warnings, nil
}

// openMain parses the main source, from the reader when one was given,
// else from the filename. Inputs that are recognizably not HTML are
// rejected before parsing.
func (e *Extractor) openMain(prof *profile.Profile) (*htmldoc.Document, error) {
	if e.source != nil {
		data, err := io.ReadAll(e.source)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		// Reject content whose magic bytes positively identify another
		// format. Unknown passes through: headless HTML fragments parse
		// fine.
		if k := format.DetectFromMagic(data); !k.Supported() && k != format.Unknown {
			return nil, fmt.Errorf("unsupported input kind %s", k)
		}
		return htmldoc.OpenReader(bytes.NewReader(data), prof)
	}

	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	if k := format.Detect(e.filename); !k.Supported() {
		return nil, fmt.Errorf("%s: unsupported input kind %s", e.filename, k)
	}
	doc, err := htmldoc.Open(e.filename, prof)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.filename, err)
	}
	return doc, nil
}

// linkedFiles resolves the linked-table file list: explicit files first,
// discovered files after, the main file and duplicates removed.
func (e *Extractor) linkedFiles(prof *profile.Profile) ([]string, error) {
	candidates := append([]string(nil), e.options.linked...)
	if e.options.autoLink && e.filename != "" {
		found, err := htmldoc.DiscoverLinked(e.filename, prof)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	seen := make(map[string]bool)
	if e.filename != "" {
		seen[filepath.Clean(e.filename)] = true
	}
	var out []string
	for _, c := range candidates {
		key := filepath.Clean(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out, nil
}
