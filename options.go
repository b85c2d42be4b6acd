package tablex

import "github.com/corpustools/tablex/profile"

// ExtractOptions holds configuration for one extraction.
type ExtractOptions struct {
	// Selector profile (nil means profile.Default())
	profile *profile.Profile

	// Linked table files to fold into the article's document
	linked   []string
	autoLink bool // discover linked files next to the main file
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		profile:  nil, // nil means the PMC defaults
		linked:   nil,
		autoLink: false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		profile:  o.profile,
		autoLink: o.autoLink,
	}

	// Deep copy the linked-files slice
	if o.linked != nil {
		newOpts.linked = make([]string, len(o.linked))
		copy(newOpts.linked, o.linked)
	}

	return newOpts
}
