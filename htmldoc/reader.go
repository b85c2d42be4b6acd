// Package htmldoc reads journal-article HTML and harvests its tables.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/corpustools/tablex/celltext"
	"github.com/corpustools/tablex/profile"
)

// Open reads an HTML file and harvests every table in it. A nil profile
// means profile.Default().
func Open(filename string, prof *profile.Profile) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := OpenReader(f, prof)
	if err != nil {
		return nil, err
	}
	doc.SourceFile = filename
	return doc, nil
}

// OpenReader parses HTML from an io.Reader and harvests every table in it.
// A nil profile means profile.Default().
func OpenReader(r io.Reader, prof *profile.Profile) (*Document, error) {
	if prof == nil {
		prof = profile.Default()
	}

	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range prof.ExcludeSelectors {
		gq.Find(sel).Remove()
	}

	doc := &Document{}

	// First pass: every table node, in document order. Nested tables belong
	// to their outermost ancestor and are not harvested separately.
	ordinal := 0
	gq.Find(prof.TableSelector).Each(func(_ int, tbl *goquery.Selection) {
		if tbl.ParentsFiltered(prof.TableSelector).Length() > 0 {
			return
		}

		scope := tbl.Closest(prof.ContainerSelector)
		if scope.Length() == 0 {
			scope = tbl
		}
		title := harvest(scope, prof.TitleSelectors)
		caption := harvest(scope, prof.CaptionSelectors)
		footer := harvest(scope, prof.FooterSelectors)

		rows := parseRows(tbl, prof)
		if len(rows) == 0 {
			// The grid lives elsewhere (an image, a linked file). Keep the
			// surrounding text so it can be merged later.
			empty := EmptyTable{
				Title:   strings.Join(title, " "),
				Caption: strings.Join(caption, " "),
				Footer:  strings.Join(footer, " "),
			}
			if !empty.IsZero() {
				doc.Empties = append(doc.Empties, empty)
			}
			return
		}

		ordinal++
		doc.Tables = append(doc.Tables, &Table{
			Identifier: identifier(title, caption, ordinal),
			Title:      title,
			Caption:    caption,
			Footer:     footer,
			Rows:       rows,
		})
	})

	// Second pass: table containers holding no table node at all, the
	// publisher pattern for grids shipped as separate files.
	gq.Find(prof.ContainerSelector).Each(func(_ int, c *goquery.Selection) {
		if c.ParentsFiltered(prof.ContainerSelector).Length() > 0 {
			return
		}
		if c.Find(prof.TableSelector).Length() > 0 {
			return
		}
		empty := EmptyTable{
			Title:   strings.Join(harvest(c, prof.TitleSelectors), " "),
			Caption: strings.Join(harvest(c, prof.CaptionSelectors), " "),
			Footer:  strings.Join(harvest(c, prof.FooterSelectors), " "),
		}
		if !empty.IsZero() {
			doc.Empties = append(doc.Empties, empty)
		}
	})

	return doc, nil
}

// harvest collects the text of every node under scope matching any of the
// selectors, in selector-list order. A node matched by more than one
// selector contributes once.
func harvest(scope *goquery.Selection, selectors []string) []string {
	var out []string
	seen := make(map[*html.Node]bool)
	for _, sel := range selectors {
		scope.Find(sel).Each(func(_ int, s *goquery.Selection) {
			n := s.Nodes[0]
			if seen[n] {
				return
			}
			seen[n] = true
			if text := collapse(s.Text()); text != "" {
				out = append(out, text)
			}
		})
	}
	return out
}

// collapse folds runs of whitespace into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tableLabel matches a leading "Table N" label in a title or caption.
var tableLabel = regexp.MustCompile(`(?i)^\s*table[ .]*([0-9]+)`)

// identifier derives the table's number from a leading "Table N" label in
// its title or caption, falling back to its position in the file.
func identifier(title, caption []string, ordinal int) string {
	for _, s := range title {
		if m := tableLabel.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	for _, s := range caption {
		if m := tableLabel.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return strconv.Itoa(ordinal)
}

// parseRows walks the table's own rows, ignoring rows of nested tables.
func parseRows(tbl *goquery.Selection, prof *profile.Profile) []TableRow {
	var rows []TableRow
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Closest("table").Nodes[0] != tbl.Nodes[0] {
			return
		}

		row := TableRow{
			HeaderMarker: tr.Is(prof.HeaderRowSelector) || tr.HasClass(prof.HeaderClass),
		}
		tr.ChildrenFiltered("th, td").Each(func(_ int, c *goquery.Selection) {
			row.Cells = append(row.Cells, TableCell{
				Text:     cellText(c.Nodes[0]),
				IsHeader: goquery.NodeName(c) == "th" || c.HasClass(prof.HeaderClass),
				RowSpan:  spanAttr(c, "rowspan"),
				ColSpan:  spanAttr(c, "colspan"),
			})
		})
		if len(row.Cells) > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}

// spanAttr reads a rowspan or colspan attribute. Missing, unparseable, and
// non-positive values all mean 1.
func spanAttr(c *goquery.Selection, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.AttrOr(name, "1")))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// cellText extracts a cell's text, wrapping superscript and subscript
// content in marker tags so later stages can tell exponents and footnote
// marks apart from the surrounding value.
func cellText(n *html.Node) string {
	var b strings.Builder
	writeCellText(n, &b)
	return strings.TrimSpace(b.String())
}

func writeCellText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "script", "style", "noscript":
			case "br":
				b.WriteString(" ")
			case "sup":
				b.WriteString(celltext.SupOpen)
				writeCellText(c, b)
				b.WriteString(celltext.SupClose)
			case "sub":
				b.WriteString(celltext.SubOpen)
				writeCellText(c, b)
				b.WriteString(celltext.SubClose)
			default:
				writeCellText(c, b)
			}
		}
	}
}
