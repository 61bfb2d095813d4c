package catalog

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

const (
	// TextureSize is the edge length of a rendered tile texture.
	TextureSize  = 140
	groutWidth   = 6
	groutSpacing = TextureSize / 4
)

// Texture renders the tile as a PNG: a flat base with three horizontal and
// three vertical grout lines, the horizontal ones slightly stronger.
func (t Tile) Texture() ([]byte, error) {
	base, err := parseHex(t.Base)
	if err != nil {
		return nil, err
	}
	line, err := parseHex(t.Line)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{rgba(base)}, image.Point{}, draw.Src)

	stroke := &image.Uniform{rgba(line)}
	horizontal := &image.Uniform{color.Alpha{A: 89}}
	vertical := &image.Uniform{color.Alpha{A: 64}}
	for pos := groutSpacing; pos < TextureSize; pos += groutSpacing {
		row := image.Rect(0, pos-groutWidth/2, TextureSize, pos+groutWidth/2)
		draw.DrawMask(img, row, stroke, image.Point{}, horizontal, image.Point{}, draw.Over)
	}
	for pos := groutSpacing; pos < TextureSize; pos += groutSpacing {
		col := image.Rect(pos-groutWidth/2, 0, pos+groutWidth/2, TextureSize)
		draw.DrawMask(img, col, stroke, image.Point{}, vertical, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rgba(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
