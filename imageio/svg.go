package imageio

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgRasterEdge is the longest edge of a rasterized SVG. Logos are placed in
// boxes of a few hundred points, so this keeps them sharp when printed.
const svgRasterEdge = 1200

// decodeSVG rasterizes an SVG document into a PNG with its aspect ratio
// preserved.
func decodeSVG(data []byte) (*Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	svgWidth, svgHeight := icon.ViewBox.W, icon.ViewBox.H
	if svgWidth <= 0 || svgHeight <= 0 {
		svgWidth, svgHeight = 100, 100
	}

	aspectRatio := svgWidth / svgHeight
	var width, height int
	if aspectRatio >= 1 {
		width = svgRasterEdge
		height = max(1, int(svgRasterEdge/aspectRatio))
	} else {
		height = svgRasterEdge
		width = max(1, int(svgRasterEdge*aspectRatio))
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return encodePNG(rgba)
}
