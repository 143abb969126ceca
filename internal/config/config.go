// Package config loads and validates the per-document descriptors templates
// render from. The engine itself never reads these; values flow into draw
// calls as plain arguments.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Page is the trim size in page units (PostScript points, 72 per inch).
type Page struct {
	Width  float64 `yaml:"width" json:"width" validate:"gte=0"`
	Height float64 `yaml:"height" json:"height" validate:"gte=0"`
}

// Contact is the contact block shown on cards and letterheads. All fields
// optional; empty fields simply draw nothing.
type Contact struct {
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Email   string `yaml:"email" json:"email" validate:"omitempty,email"`
	Phone   string `yaml:"phone" json:"phone"`
	Website string `yaml:"website" json:"website"`
}

// TableColumn mirrors the shape primitive's column descriptor.
type TableColumn struct {
	Label    string  `yaml:"label" json:"label" validate:"required"`
	Width    float64 `yaml:"width" json:"width" validate:"gte=0"`
	Fraction float64 `yaml:"fraction" json:"fraction" validate:"gte=0"`
	Align    string  `yaml:"align" json:"align" validate:"omitempty,oneof=left center right"`
}

// TableSpec is the tabular body of invoices and price lists.
type TableSpec struct {
	Columns []TableColumn `yaml:"columns" json:"columns" validate:"min=1,dive"`
	Rows    [][]string    `yaml:"rows" json:"rows"`
}

// Document is one editor configuration: everything a template renderer
// needs to paint a page.
type Document struct {
	Template   string `yaml:"template" json:"template" validate:"required"`
	Page       Page   `yaml:"page" json:"page"`
	BrandColor string `yaml:"brand_color" json:"brandColor" validate:"required,hexcolor"`
	FontStyle  string `yaml:"font_style" json:"fontStyle" validate:"omitempty,oneof=modern classic bold elegant"`

	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle" json:"subtitle"`
	Overline string   `yaml:"overline" json:"overline"`
	Body     []string `yaml:"body" json:"body"`
	Footer   string   `yaml:"footer" json:"footer"`

	Contact Contact    `yaml:"contact" json:"contact"`
	Table   *TableSpec `yaml:"table" json:"table,omitempty"`
	QR      string     `yaml:"qr" json:"qr"`
}

var validate = validator.New()

// Default trim sizes per template, in points.
var defaultPages = map[string]Page{
	"business-card": {Width: 252, Height: 144},
	"invoice":       {Width: 595, Height: 842},
}

// ApplyDefaults fills the page size from the template's standard trim when
// the descriptor leaves it zero.
func (d *Document) ApplyDefaults() {
	if d.Page.Width > 0 && d.Page.Height > 0 {
		return
	}
	if page, ok := defaultPages[d.Template]; ok {
		d.Page = page
		return
	}
	d.Page = Page{Width: 595, Height: 842}
}

// Validate checks the descriptor against its declared constraints.
func Validate(d *Document) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("config: invalid document: %w", err)
	}
	return nil
}

// Load reads a YAML document descriptor from disk, validates it and applies
// per-template defaults.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	doc.ApplyDefaults()
	return &doc, nil
}
