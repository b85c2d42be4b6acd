package tablex

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal condition encountered during extraction:
// the output is still produced, but part of the input degraded to
// best-effort handling.
type Warning struct {
	// File is the source file the condition arose in, when known.
	File string

	// Table is the identifier of the affected table, when the condition
	// is tied to one.
	Table string

	// Message describes the condition.
	Message string
}

// String formats the warning as "file: table N: message", dropping the
// parts that are not set.
func (w Warning) String() string {
	var b strings.Builder
	if w.File != "" {
		b.WriteString(w.File)
		b.WriteString(": ")
	}
	if w.Table != "" {
		fmt.Fprintf(&b, "table %s: ", w.Table)
	}
	b.WriteString(w.Message)
	return b.String()
}

// FormatWarnings joins warnings into a single newline-separated string for
// logging.
//
// Example:
//
//	doc, warnings, err := tablex.Open("article.html").Document()
//	if len(warnings) > 0 {
//	    log.Println(tablex.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
