// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// terrainRGBOffset and terrainRGBScale implement the lossless 24-bit
// elevation encoding used by downstream terrain-RGB consumers
// (spec.md §6 "Terrain-RGB encoding"). This is a de-facto
// compatibility contract: the formula is load-bearing and must not be
// changed independently of every consumer.
const (
	terrainRGBOffset = 10000.0
	terrainRGBScale  = 10.0
)

// EncodeElevation converts a height in metres to its terrain-RGB
// 24-bit value v = (h + 10000) * 10, clamped to the 24-bit range.
func EncodeElevation(meters float64) uint32 {
	v := (meters + terrainRGBOffset) * terrainRGBScale
	if v < 0 {
		v = 0
	}
	if v > 0xFFFFFF {
		v = 0xFFFFFF
	}
	return uint32(v)
}

// DecodeElevation is the inverse of EncodeElevation: h = -10000 + v*0.1.
func DecodeElevation(v uint32) float64 {
	return -terrainRGBOffset + float64(v)/terrainRGBScale
}

// EncodeTerrainRGBPNG renders a grid of elevations as a terrain-RGB PNG
// image, splitting each encoded 24-bit value big-endian across (R, G,
// B). NoData cells are written as 0 m. GetTerrainTile returns a *Grid
// and does not call this; a caller can render that grid with it.
func EncodeTerrainRGBPNG(g *Grid) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))

	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			h := g.Values[row][col]
			if isNoData(h) {
				h = 0
			}
			v := EncodeElevation(h)
			r := uint8((v >> 16) & 0xFF)
			gr := uint8((v >> 8) & 0xFF)
			b := uint8(v & 0xFF)
			img.Set(col, row, color.RGBA{R: r, G: gr, B: b, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode terrain-rgb png: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeTerrainRGBPNG parses a terrain-RGB PNG back into a Grid.
func DecodeTerrainRGBPNG(data []byte) (*Grid, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode terrain-rgb png: %w", err)
	}

	bounds := img.Bounds()
	size := bounds.Dx()
	if size != bounds.Dy() {
		return nil, fmt.Errorf("terrain-rgb tile is not square: %dx%d", bounds.Dx(), bounds.Dy())
	}

	g := newGrid(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r, gr, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			v := (uint32(r>>8) << 16) | (uint32(gr>>8) << 8) | uint32(b>>8)
			g.Values[row][col] = DecodeElevation(v)
		}
	}
	return g, nil
}
