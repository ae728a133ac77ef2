// Package ui implements the knightboard window using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/markers/*.svg
var markerAssets embed.FS

// Marker identifies an overlay drawn on a highlighted square.
type Marker int

const (
	MarkerTarget  Marker = iota // empty destination
	MarkerCapture               // destination holding an enemy piece
)

var markerFiles = map[Marker]string{
	MarkerTarget:  "assets/markers/target.svg",
	MarkerCapture: "assets/markers/capture.svg",
}

// MarkerSet holds rasterized marker overlays.
type MarkerSet struct {
	images     map[Marker]*ebiten.Image
	renderSize int
}

// NewMarkerSet rasterizes every marker at renderSize pixels.
func NewMarkerSet(renderSize int) (*MarkerSet, error) {
	ms := &MarkerSet{
		images:     make(map[Marker]*ebiten.Image),
		renderSize: renderSize,
	}
	for m, path := range markerFiles {
		rgba, err := rasterizeSVG(path, renderSize)
		if err != nil {
			return nil, err
		}
		ms.images[m] = ebiten.NewImageFromImage(rgba)
	}
	return ms, nil
}

// Draw draws marker m scaled into the square at (x, y) with side size.
func (ms *MarkerSet) Draw(screen *ebiten.Image, m Marker, x, y, size float64) {
	if ms == nil {
		return
	}
	img := ms.images[m]
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := size / float64(ms.renderSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// WindowIcons renders the application icon at the usual window icon sizes.
func WindowIcons() ([]image.Image, error) {
	var icons []image.Image
	for _, size := range []int{16, 32, 48, 64} {
		rgba, err := rasterizeSVG("assets/markers/icon.svg", size)
		if err != nil {
			return nil, err
		}
		icons = append(icons, rgba)
	}
	return icons, nil
}

// rasterizeSVG renders an embedded SVG into a size×size RGBA image.
func rasterizeSVG(path string, size int) (*image.RGBA, error) {
	data, err := markerAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
