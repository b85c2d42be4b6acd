package tables

// HeaderSeparator joins the stacked per-row values of one column in a
// merged compound header.
const HeaderSeparator = "|"

// MergeHeaderBlock merges one block of header rows column-wise: distinct
// non-empty values concatenated with HeaderSeparator, values repeated by
// rowspan replication appended once. A row exactly one cell shorter than
// the block's first row is assumed to be missing its leading column and is
// left-padded with an empty cell (legacy behavior, not an invariant).
func MergeHeaderBlock(g *Grid, block []int) []string {
	if len(block) == 0 {
		return nil
	}

	width := len(g.Rows[block[0]].Cells)
	merged := make([]string, width)
	appended := make([]map[string]bool, width)
	for j := range appended {
		appended[j] = make(map[string]bool)
	}

	for _, idx := range block {
		values := rowValues(g.Rows[idx])
		if len(values) == width-1 {
			values = append([]string{""}, values...)
		}
		for j := 0; j < width && j < len(values); j++ {
			v := values[j]
			if v == "" || appended[j][v] {
				continue
			}
			appended[j][v] = true
			if merged[j] != "" {
				merged[j] += HeaderSeparator
			}
			merged[j] += v
		}
	}
	return merged
}

// rowValues copies a row's cell texts.
func rowValues(row GridRow) []string {
	vals := make([]string, len(row.Cells))
	for j, c := range row.Cells {
		vals[j] = c.Text
	}
	return vals
}

// sameHeader reports whether two merged headers match column for column.
func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
