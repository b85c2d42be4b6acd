// Package resolver merges the per-file outputs of table extraction into one
// coherent document.
//
// Every source file numbers its own tables independently, usually from 1,
// so an article whose tables arrive in linked files produces identifier
// collisions as soon as the lists are concatenated. This package resolves
// them and reattaches stray descriptive text.
//
// # Collision Resolution
//
// [ResolveCollisions] folds the ordered per-file lists (main document
// first, linked files in sorted order) into a single document:
//
//	doc, renames := resolver.ResolveCollisions(files)
//
// A table whose base identifier is already claimed is renumbered to the
// next free number, keeping any segment suffix, and its cell addresses are
// rewritten to match. The renames are returned so callers can surface them
// as warnings. The fold is order-dependent and must run sequentially; its
// output is deterministic for a fixed file order.
//
// # Empty-Table Records
//
// Publisher markup sometimes carries a table's title, caption, or footer in
// a container holding no actual table element. The source layer salvages
// those fragments as [model.EmptyTableRecord] values, and
// [MergeEmptyRecords] attaches them to the table their "Table N." label
// names:
//
//	unmatched := resolver.MergeEmptyRecords(doc, records)
//
// Records naming no known table are returned rather than dropped silently.
package resolver
