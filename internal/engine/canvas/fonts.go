package canvas

import (
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the closed set of named styles templates choose from.
// The variant set is small and shared by every template, so a switch on the
// enum beats an open-ended hierarchy.
type FontFamily int

const (
	FamilyModern FontFamily = iota
	FamilyClassic
	FamilyBold
	FamilyElegant
)

// ParseFamily maps a config string onto a family; unknown values fall back
// to modern so half-filled editor state still renders.
func ParseFamily(s string) FontFamily {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return FamilyClassic
	case "bold":
		return FamilyBold
	case "elegant":
		return FamilyElegant
	default:
		return FamilyModern
	}
}

func (f FontFamily) String() string {
	switch f {
	case FamilyClassic:
		return "classic"
	case FamilyBold:
		return "bold"
	case FamilyElegant:
		return "elegant"
	default:
		return "modern"
	}
}

// FontWeight selects the regular or bold cut of a family.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

type fontKey struct {
	fam    FontFamily
	weight FontWeight
}

type faceKey struct {
	fam    FontFamily
	weight FontWeight
	// size in 26.6 fixed-point pixels, so near-identical float sizes share a face
	size26 int
}

var (
	parseOnce   sync.Once
	parsedFonts map[fontKey]*truetype.Font
)

// parseFonts maps the four named families onto the Go font cuts. Parsing
// happens once; the parsed fonts are immutable afterwards.
func parseFonts() {
	parsedFonts = make(map[fontKey]*truetype.Font, 8)

	put := func(fam FontFamily, weight FontWeight, ttf []byte) {
		f, err := truetype.Parse(ttf)
		if err != nil {
			// Leave the slot empty; face() falls back to basicfont.
			return
		}
		parsedFonts[fontKey{fam, weight}] = f
	}

	put(FamilyModern, WeightRegular, goregular.TTF)
	put(FamilyModern, WeightBold, gobold.TTF)
	put(FamilyClassic, WeightRegular, gomedium.TTF)
	put(FamilyClassic, WeightBold, gobold.TTF)
	put(FamilyBold, WeightRegular, gobold.TTF)
	put(FamilyBold, WeightBold, gobold.TTF)
	put(FamilyElegant, WeightRegular, goitalic.TTF)
	put(FamilyElegant, WeightBold, gobolditalic.TTF)
}

// face returns a cached font.Face sized in pixels for this canvas's scale.
func (c *Canvas) face(fam FontFamily, weight FontWeight, sizeUnits float64) font.Face {
	sizePx := sizeUnits * c.scale
	if sizePx < 1 {
		sizePx = 1
	}
	key := faceKey{fam: fam, weight: weight, size26: int(math.Round(sizePx * 64))}
	if f, ok := c.faces[key]; ok {
		return f
	}

	parseOnce.Do(parseFonts)
	fnt := parsedFonts[fontKey{fam, weight}]
	var face font.Face
	if fnt == nil {
		face = basicfont.Face7x13
	} else {
		face = truetype.NewFace(fnt, &truetype.Options{
			Size:    sizePx,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	c.faces[key] = face
	return face
}
