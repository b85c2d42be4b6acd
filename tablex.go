// Package tablex provides a fluent API for extracting and normalizing the
// tables of journal-article HTML into addressed, typed logical tables and
// BioC-shaped interchange JSON.
//
// Basic usage:
//
//	doc, warnings, err := tablex.Open("PMC123456.html").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tablex.FormatWarnings(warnings))
//	}
//
// With options:
//
//	coll, _, err := tablex.Open("PMC123456.html").
//	    AutoLink().
//	    WithProfile(prof).
//	    BioC(bioc.WithDate(pub))
//
// For advanced use cases, the lower-level htmldoc, tables, and resolver
// packages are also available.
package tablex

import "io"

// Open prepares an Extractor for a main article file. The file is not read
// until a terminal operation runs. Files whose name does not look like an
// HTML article fail at the terminal with an unsupported-input error.
//
// Example:
//
//	doc, warnings, err := tablex.Open("article.html").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares an Extractor over already-acquired HTML content. The
// content is sniffed at the terminal; PDF and office containers fail with
// an unsupported-input error. Linked-file discovery is unavailable without
// a path, but explicit Linked files still work.
//
// Example:
//
//	doc, warnings, err := tablex.FromReader(resp.Body).Document()
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	prof := tablex.Must(profile.Load("pmc.yml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a call to Document() or BioC() and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	doc := tablex.MustExtract(tablex.Open("article.html").Document())
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
