package render

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
)

// Piece glyphs are tiny hand-drawn SVG silhouettes on a 45x45 viewbox,
// rasterized once per (piece, size) and cached.

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 45 45"><g fill="%s" stroke="%s" stroke-width="1.5">%s</g></svg>`

var glyphShapes = map[atomic.Kind]string{
	atomic.Pawn: `<circle cx="22.5" cy="14" r="6"/>` +
		`<path d="M 14 38 L 31 38 L 27 21 L 18 21 Z"/>`,
	atomic.Knight: `<path d="M 14 38 L 32 38 L 32 26 L 26 12 L 18 9 L 16 16 L 21 20 L 14 30 Z"/>`,
	atomic.Bishop: `<circle cx="22.5" cy="10" r="3"/>` +
		`<path d="M 15 38 L 30 38 L 26 24 L 28 17 L 22.5 12 L 17 17 L 19 24 Z"/>`,
	atomic.Rook: `<path d="M 12 38 L 33 38 L 33 34 L 29 30 L 29 18 L 33 18 L 33 10 L 28 10 L 28 13 L 25 13 L 25 10 L 20 10 L 20 13 L 17 13 L 17 10 L 12 10 L 12 18 L 16 18 L 16 30 L 12 34 Z"/>`,
	atomic.Queen: `<path d="M 12 38 L 33 38 L 35 15 L 28 22 L 22.5 11 L 17 22 L 10 15 Z"/>` +
		`<circle cx="10" cy="13" r="2"/><circle cx="22.5" cy="9" r="2"/><circle cx="35" cy="13" r="2"/>`,
	atomic.King: `<path d="M 21 7 L 24 7 L 24 10 L 27 10 L 27 13 L 24 13 L 24 16 L 21 16 L 21 13 L 18 13 L 18 10 L 21 10 Z"/>` +
		`<path d="M 13 38 L 32 38 L 30 19 L 22.5 24 L 15 19 Z"/>`,
}

type glyphKey struct {
	piece atomic.Piece
	size  int
}

var (
	glyphCache   = map[glyphKey]image.Image{}
	glyphCacheMu sync.RWMutex
)

func pieceImage(piece atomic.Piece, size int) (image.Image, error) {
	key := glyphKey{piece: piece, size: size}

	glyphCacheMu.RLock()
	if img, ok := glyphCache[key]; ok {
		glyphCacheMu.RUnlock()
		return img, nil
	}
	glyphCacheMu.RUnlock()

	shapes, ok := glyphShapes[piece.Kind]
	if !ok {
		return nil, fmt.Errorf("no glyph for piece %v", piece)
	}
	fill, stroke := "#f8f8f8", "#1a1a1a"
	if piece.Color == atomic.Black {
		fill, stroke = "#222222", "#dddddd"
	}
	svg := fmt.Sprintf(svgTemplate, fill, stroke, shapes)

	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	glyphCacheMu.Lock()
	glyphCache[key] = img
	glyphCacheMu.Unlock()

	return img, nil
}
