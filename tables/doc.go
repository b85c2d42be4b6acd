// Package tables normalizes raw HTML tables into addressed logical tables.
//
// This package implements the table engine: span resolution, row
// classification, header merging, and segmentation into self-contained
// logical tables with stable per-cell addresses.
//
// # Pipeline
//
// Extraction of one source table runs in four steps:
//
//  1. [BuildGrid] resolves rowspan/colspan into a fixed-width matrix of
//     cleaned cell text.
//  2. [Classifier.Classify] labels each row Header, Subheader, Superrow,
//     or Data, and infers per-column value types.
//  3. [MergeHeaderBlock] collapses each block of header rows into one
//     compound header per column.
//  4. [Assemble] walks the classified grid, splitting on header changes
//     and emitting addressed cells grouped into sections.
//
// [Process] runs all four for one source table.
//
// # Classification
//
// Rows are classified with ordered heuristics: source header flags first,
// then dedicated full-width marker rows (superrows), then a fallback that
// infers section markers from repeated first-column values, then column
// typing by majority vote, then subheader detection by column-type
// mismatch. There are no canonical HTML table semantics; the thresholds
// are exposed on [Classifier]:
//
//	c := tables.NewClassifier()
//	c.SubheaderFraction = 0.6
//	cls := c.Classify(grid)
//
// # Addressing
//
// Cells are addressed "table.row.col", 1-based: the merged header is row 1
// of its table, and data rows number from 2 within each segment. A grid
// with several stacked header blocks splits into segments "2", "2.2",
// "2.3" sharing one base identifier.
package tables
