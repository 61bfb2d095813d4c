// Package catalog holds the fixed tile products and wall palette offered to
// the preview UI and to roomctl.
package catalog

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tile is a floor product. Its texture is rendered from two colors.
type Tile struct {
	ID       string
	Subtitle string
	Base     string
	Line     string
}

// Name is the display name derived from the slug.
func (t Tile) Name() string {
	return displayName(t.ID)
}

// WallColor is one entry of the wall palette.
type WallColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// TileEntry is the listing form of a Tile with its texture inlined.
type TileEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Texture  string `json:"texture"`
}

// Listing is the full catalog as served to clients.
type Listing struct {
	Tiles      []TileEntry `json:"tiles"`
	WallColors []WallColor `json:"wallColors"`
}

var tiles = []Tile{
	{ID: "warm-stone-tile", Subtitle: "Matte • 12x12", Base: "#d7d2c7", Line: "#6b5b4a"},
	{ID: "cool-slate-tile", Subtitle: "Textured • 24x24", Base: "#cfd7db", Line: "#2f4858"},
	{ID: "classic-oak", Subtitle: "Plank • Natural", Base: "#d0a77f", Line: "#6b3e1e"},
	{ID: "modern-ash", Subtitle: "Plank • Light", Base: "#bfc4b8", Line: "#475342"},
}

var wallPalette = []struct{ slug, hex string }{
	{"red", "#EF4444"},
	{"green", "#10B981"},
	{"blue", "#3B82F6"},
	{"white", "#FFFFFF"},
	{"yellow", "#FBBF24"},
}

var titleCaser = cases.Title(language.English)

func displayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Tiles returns the products in display order.
func Tiles() []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// WallColors returns the palette in display order.
func WallColors() []WallColor {
	out := make([]WallColor, 0, len(wallPalette))
	for _, c := range wallPalette {
		out = append(out, WallColor{Name: displayName(c.slug), Hex: c.hex})
	}
	return out
}

// Lookup finds a tile by id, case-insensitively.
func Lookup(id string) (Tile, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// Build renders every texture and assembles the listing.
func Build() (Listing, error) {
	listing := Listing{WallColors: WallColors()}
	for _, t := range tiles {
		png, err := t.Texture()
		if err != nil {
			return Listing{}, err
		}
		listing.Tiles = append(listing.Tiles, TileEntry{
			ID:       t.ID,
			Name:     t.Name(),
			Subtitle: t.Subtitle,
			Texture:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		})
	}
	return listing, nil
}

func parseHex(s string) ([3]uint8, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return [3]uint8{}, fmt.Errorf("catalog: bad color %q", s)
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]uint8{}, fmt.Errorf("catalog: bad color %q: %w", s, err)
		}
		out[i] = uint8(v)
	}
	return out, nil
}

