// Package profile defines publisher selector profiles: the CSS selector sets
// that tell the source layer where tables and their surrounding text live in
// a given publisher's markup. Profiles load from YAML and fall back to
// PMC-style defaults field by field.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile names the CSS selectors describing one publisher's table markup.
// Zero-value fields fall back to the corresponding Default values.
type Profile struct {
	// Name identifies the profile in logs and errors.
	Name string `yaml:"name"`

	// TableSelector matches the table elements to extract.
	TableSelector string `yaml:"table_selector"`

	// ContainerSelector matches the wrapper element around one table. The
	// wrapper is searched for title/caption/footer text, and wrappers
	// without any table element become empty-table salvage candidates.
	ContainerSelector string `yaml:"container_selector"`

	// TitleSelectors, CaptionSelectors, and FooterSelectors are tried in
	// order against the wrapper; every match contributes one string.
	TitleSelectors   []string `yaml:"title_selectors"`
	CaptionSelectors []string `yaml:"caption_selectors"`
	FooterSelectors  []string `yaml:"footer_selectors"`

	// HeaderRowSelector marks whole rows as header rows.
	HeaderRowSelector string `yaml:"header_row_selector"`

	// HeaderClass marks individual rows or cells as header content via a
	// CSS class, the way PMC marks them with class="thead".
	HeaderClass string `yaml:"header_class"`

	// ExcludeSelectors are removed from the document before extraction.
	ExcludeSelectors []string `yaml:"exclude_selectors"`

	// LinkedFileGlobs locate standalone table files in the main document's
	// directory.
	LinkedFileGlobs []string `yaml:"linked_file_globs"`
}

// Default returns the PMC-style profile.
func Default() *Profile {
	return &Profile{
		Name:              "default",
		TableSelector:     "table",
		ContainerSelector: "div.table-wrap, div.table-box, figure, section.tw",
		TitleSelectors:    []string{"h3", "h4", ".title", "label"},
		CaptionSelectors:  []string{"caption", ".caption", "figcaption", "p.caption"},
		FooterSelectors:   []string{".table-wrap-foot", "tfoot", ".footnote", ".table-foot"},
		HeaderRowSelector: "thead tr",
		HeaderClass:       "thead",
		ExcludeSelectors:  []string{"script", "style", "noscript"},
		LinkedFileGlobs:   []string{"table_*.html", "table_*.htm", "*_table_*.html"},
	}
}

// Load reads a YAML profile from a file. Unknown fields are rejected; unset
// fields take their Default values.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile. Unknown fields are rejected; unset fields
// take their Default values. Empty input yields Default.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.applyDefaults()
	return &p, nil
}

func (p *Profile) applyDefaults() {
	def := Default()
	if p.Name == "" {
		p.Name = def.Name
	}
	if p.TableSelector == "" {
		p.TableSelector = def.TableSelector
	}
	if p.ContainerSelector == "" {
		p.ContainerSelector = def.ContainerSelector
	}
	if len(p.TitleSelectors) == 0 {
		p.TitleSelectors = def.TitleSelectors
	}
	if len(p.CaptionSelectors) == 0 {
		p.CaptionSelectors = def.CaptionSelectors
	}
	if len(p.FooterSelectors) == 0 {
		p.FooterSelectors = def.FooterSelectors
	}
	if p.HeaderRowSelector == "" {
		p.HeaderRowSelector = def.HeaderRowSelector
	}
	if p.HeaderClass == "" {
		p.HeaderClass = def.HeaderClass
	}
	if len(p.ExcludeSelectors) == 0 {
		p.ExcludeSelectors = def.ExcludeSelectors
	}
	if len(p.LinkedFileGlobs) == 0 {
		p.LinkedFileGlobs = def.LinkedFileGlobs
	}
}
