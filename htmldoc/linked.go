package htmldoc

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/corpustools/tablex/profile"
)

// DiscoverLinked finds table files published alongside the main article:
// files in the main file's directory matching the profile's linked-file
// globs. The main file itself is never returned. Results are sorted so the
// identifier sequence they produce is reproducible.
func DiscoverLinked(mainPath string, prof *profile.Profile) ([]string, error) {
	if prof == nil {
		prof = profile.Default()
	}

	dir := filepath.Dir(mainPath)
	main := filepath.Clean(mainPath)

	seen := make(map[string]bool)
	var out []string
	for _, glob := range prof.LinkedFileGlobs {
		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return nil, fmt.Errorf("linked file glob %q: %w", glob, err)
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if m == main || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}

	sort.Strings(out)
	return out, nil
}
