// Package model provides the intermediate representation (IR) for extracted
// tables.
//
// This package defines the user-facing data structures that represent the
// normalized form of journal-article tables. All extraction operations
// ultimately produce these types, making them the primary API for consuming
// extracted content.
//
// # Table Structure
//
// The [TableDocument] type represents one article's tables after cross-file
// merging:
//
//	doc := model.NewTableDocument("PMC1234567.html")
//	doc.AddTable(table)
//
// Each [LogicalTable] carries a stable identifier, the surrounding
// title/caption/footer text, a merged [HeaderRow], and data rows partitioned
// into [Section] values. A [TableCollection] is an ordered batch of documents,
// one per article.
//
// # Cell Addressing
//
// Every [Cell] is addressed as "table.row.col" (1-based, row-major): the
// merged header occupies row 1 and data rows count from 2 within each table
// segment. [FormatCellID] and [ParseCellID] convert between the string form
// and its parts, and [BaseIdentifier] extracts the leading identifier
// component shared by segments of one source table.
//
// # Export
//
// Tables render to debugging-friendly text via ToMarkdown() and ToCSV();
// interchange output is handled by the bioc package.
package model
