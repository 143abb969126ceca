// Package export re-renders a finished page at print-grade pixel densities
// and writes the resulting raster.
package export

import "errors"

// Preset bundles a resolution multiplier with bleed and crop-mark behavior.
// The catalog is fixed; presets are looked up by name at export time.
type Preset struct {
	Name      string  `json:"name"`
	Scale     float64 `json:"scale"`
	DPI       int     `json:"dpi"`
	BleedMm   float64 `json:"bleedMm"`
	CropMarks bool    `json:"cropMarks"`
}

// ErrUnknownPreset is returned when a preset name is not in the catalog.
var ErrUnknownPreset = errors.New("export: unknown preset")

// Page units are PostScript points, 72 per inch.
const (
	unitsPerInch = 72.0
	unitsPerMm   = unitsPerInch / 25.4
)

var catalog = []Preset{
	{Name: "web-standard", Scale: 2.0, DPI: 144},
	{Name: "print-standard", Scale: 300.0 / unitsPerInch, DPI: 300, BleedMm: 3, CropMarks: true},
	{Name: "print-ultra", Scale: 600.0 / unitsPerInch, DPI: 600, BleedMm: 3, CropMarks: true},
}

// Presets returns the catalog in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a preset by name.
func Lookup(name string) (Preset, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
