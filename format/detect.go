// Package format classifies input files for the extraction pipeline.
package format

import (
	"path/filepath"
	"strings"
)

// Kind represents the classification of one input file.
type Kind int

const (
	// Unknown indicates an unrecognized input.
	Unknown Kind = iota
	// HTML indicates an HTML article file.
	HTML
	// LinkedHTML indicates a standalone per-table HTML file belonging to
	// an article.
	LinkedHTML
	// PDF indicates a PDF document, which this engine does not read.
	PDF
	// Office indicates a ZIP-based office document (Word, Excel,
	// PowerPoint, OpenDocument), which this engine does not read.
	Office
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case HTML:
		return "HTML"
	case LinkedHTML:
		return "LinkedHTML"
	case PDF:
		return "PDF"
	case Office:
		return "Office"
	default:
		return "Unknown"
	}
}

// Supported reports whether the engine can extract tables from this kind
// of input.
func (k Kind) Supported() bool {
	return k == HTML || k == LinkedHTML
}

// Detect determines the input kind from the filename extension.
func Detect(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return HTML
	case ".pdf":
		return PDF
	case ".docx", ".xlsx", ".pptx", ".odt", ".ods":
		return Office
	default:
		return Unknown
	}
}

// IsLinkedName reports whether the file's base name matches any of the
// linked-table globs. A malformed pattern matches nothing.
func IsLinkedName(filename string, globs []string) bool {
	base := filepath.Base(filename)
	for _, g := range globs {
		if ok, err := filepath.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Classify combines extension and name-shape detection: an HTML file whose
// base name matches one of the linked-table globs classifies as
// LinkedHTML.
func Classify(filename string, linkedGlobs []string) Kind {
	k := Detect(filename)
	if k == HTML && IsLinkedName(filename, linkedGlobs) {
		return LinkedHTML
	}
	return k
}

// DetectFromMagic checks content magic bytes to determine the kind. This
// catches inputs whose extension lies. Returns Unknown if the content is
// not recognizable.
func DetectFromMagic(data []byte) Kind {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic: every office container is a ZIP archive.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return Office
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic reports whether the content opens like an HTML document.
func detectHTMLMagic(data []byte) bool {
	s := strings.TrimLeft(string(data), " \t\r\n")
	if s == "" {
		return false
	}

	upper := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(upper, "<!DOCTYPE HTML"):
		return true
	case strings.HasPrefix(upper, "<HTML"):
		return true
	case strings.HasPrefix(upper, "<?XML"):
		// XHTML: an XML declaration with an <html> root close behind.
		return strings.Contains(upper[:min(500, len(upper))], "<HTML")
	}
	return false
}
