package tables

import "testing"

func checkMerged(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(got))
	}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("Expected %q in column %d, got %q", want[j], j, got[j])
		}
	}
}

func TestMergeHeaderBlock_SingleRow(t *testing.T) {
	g := makeGrid([]string{"A", "B"})

	checkMerged(t, MergeHeaderBlock(g, []int{0}), []string{"A", "B"})
}

func TestMergeHeaderBlock_StackedRows(t *testing.T) {
	g := makeGrid(
		[]string{"Visit", "Baseline"},
		[]string{"Visit", "Week 12"},
	)

	// Distinct values stack with the separator; repeats fold away.
	checkMerged(t, MergeHeaderBlock(g, []int{0, 1}), []string{"Visit", "Baseline|Week 12"})
}

func TestMergeHeaderBlock_SkipsBlanks(t *testing.T) {
	g := makeGrid(
		[]string{"A", ""},
		[]string{"", "B"},
	)

	checkMerged(t, MergeHeaderBlock(g, []int{0, 1}), []string{"A", "B"})
}

func TestMergeHeaderBlock_DedupNonAdjacent(t *testing.T) {
	g := makeGrid(
		[]string{"X", "L"},
		[]string{"X", "M"},
		[]string{"X", "L"},
	)

	checkMerged(t, MergeHeaderBlock(g, []int{0, 1, 2}), []string{"X", "L|M"})
}

func TestMergeHeaderBlock_ShortRowLeftPad(t *testing.T) {
	g := makeGrid(
		[]string{"A", "B", "C"},
		[]string{"x", "y"},
	)

	// A row one cell short is missing its leading stub column.
	checkMerged(t, MergeHeaderBlock(g, []int{0, 1}), []string{"A", "B|x", "C|y"})
}

func TestMergeHeaderBlock_EmptyBlock(t *testing.T) {
	g := makeGrid([]string{"A"})

	if got := MergeHeaderBlock(g, nil); got != nil {
		t.Errorf("Expected nil for empty block, got %v", got)
	}
}

func TestSameHeader(t *testing.T) {
	if !sameHeader([]string{"A", "B"}, []string{"A", "B"}) {
		t.Error("Expected equal headers to match")
	}
	if sameHeader([]string{"A", "B"}, []string{"A", "C"}) {
		t.Error("Expected differing values not to match")
	}
	if sameHeader([]string{"A"}, []string{"A", "B"}) {
		t.Error("Expected differing lengths not to match")
	}
}
