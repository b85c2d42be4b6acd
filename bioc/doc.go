// Package bioc serializes resolved table documents into the BioC-style
// JSON interchange format used by biomedical text-mining pipelines.
//
// One [Collection] wraps one article. Each logical table becomes a BioC
// document whose passages carry the descriptive text (title, caption,
// footer, each tagged with its IAO section infons) followed by a content
// passage holding the column headings and the data rows grouped by
// section. Numeric cells serialize their parsed value; everything else
// stays a string.
//
// # Usage
//
//	coll := bioc.FromDocument(doc)
//	err := coll.WriteJSON(out)
//
// Collections are dated with the current day. Pin the date when output
// must be reproducible:
//
//	coll := bioc.FromDocument(doc, bioc.WithDate(run))
package bioc
