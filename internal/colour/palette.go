// Package colour turns ranked cluster centroids into presentable colours.
package colour

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/swatch/internal/cluster"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	return c.Hex()
}

// FromCentroid converts a populated centroid's position to 8-bit RGB.
// Alpha participated in clustering but has no place in a reported
// colour, so it is dropped here.
func FromCentroid(c cluster.Centroid) RGB {
	return RGB{
		R: clampChannel(c.Sample.R),
		G: clampChannel(c.Sample.G),
		B: clampChannel(c.Sample.B),
	}
}

func clampChannel(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Round(v))))
}

// Swatch is one ranked colour with the population that backs it.
type Swatch struct {
	RGB    RGB     `json:"rgb"`
	Hex    string  `json:"hex"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// Palette is an ordered collection of swatches, largest cluster first.
type Palette struct {
	Swatches []Swatch
}

// FromResult builds a palette from a clustering result, keeping up to n
// populated clusters in rank order. Empty clusters never become
// swatches.
func FromResult(res cluster.Result, n int) *Palette {
	top := res.Top(n)

	total := 0
	for _, c := range res.Centroids {
		total += c.Count
	}

	swatches := make([]Swatch, len(top))
	for i, c := range top {
		rgb := FromCentroid(c)
		var weight float64
		if total > 0 {
			weight = float64(c.Count) / float64(total)
		}
		swatches[i] = Swatch{
			RGB:    rgb,
			Hex:    rgb.Hex(),
			Count:  c.Count,
			Weight: weight,
		}
	}
	return &Palette{Swatches: swatches}
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// ToHex returns the palette as hex colour codes in rank order.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		hexColours[i] = s.Hex
	}
	return hexColours
}

// PaletteJSON represents the palette in JSON output format.
type PaletteJSON struct {
	Count    int      `json:"count"`
	Swatches []Swatch `json:"swatches"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(PaletteJSON{
		Count:    len(p.Swatches),
		Swatches: p.Swatches,
	}, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		result += fmt.Sprintf("  %2d: %s (%s, %d samples)\n", i+1, s.Hex, s.RGB.String(), s.Count)
	}
	return result
}
