package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
)

const (
	squareSize = 64
	margin     = 24
	boardSize  = squareSize * 8
)

var (
	lightSquare     = color.RGBA{233, 207, 163, 255}
	darkSquare      = color.RGBA{187, 136, 96, 255}
	backgroundColor = color.RGBA{40, 40, 48, 255}
	labelColor      = color.RGBA{220, 220, 230, 255}
)

// Renderer draws board snapshots as PNG images.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// PNG renders the grid with coordinate labels along the left and bottom
// edges.
func (r *Renderer) PNG(ctx context.Context, grid [8][8]atomic.Piece) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	total := boardSize + margin*2
	img := image.NewRGBA(image.Rect(0, 0, total, total))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	origin := image.Point{X: margin, Y: margin}
	drawSquares(img, origin)
	if err := drawPieces(img, grid, origin); err != nil {
		return nil, err
	}
	drawCoordinates(img, origin)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSquares(dst imagedraw.Image, origin image.Point) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			clr := lightSquare
			if (row+col)%2 == 1 {
				clr = darkSquare
			}
			x := origin.X + col*squareSize
			y := origin.Y + row*squareSize
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), image.NewUniform(clr), image.Point{}, imagedraw.Src)
		}
	}
}

func drawPieces(dst imagedraw.Image, grid [8][8]atomic.Piece, origin image.Point) error {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := grid[row][col]
			if piece.IsEmpty() {
				continue
			}
			glyph, err := pieceImage(piece, squareSize)
			if err != nil {
				return err
			}
			x := origin.X + col*squareSize
			y := origin.Y + row*squareSize
			imagedraw.Draw(dst, image.Rect(x, y, x+squareSize, y+squareSize), glyph, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

func drawCoordinates(dst imagedraw.Image, origin image.Point) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for row := 0; row < 8; row++ {
		label := string(byte('0' + (8 - row)))
		drawer.Dot = fixed.P(origin.X-margin/2-3, origin.Y+row*squareSize+squareSize/2+4)
		drawer.DrawString(label)
	}
	for col := 0; col < 8; col++ {
		label := string(byte('a' + col))
		drawer.Dot = fixed.P(origin.X+col*squareSize+squareSize/2-3, origin.Y+boardSize+margin/2+4)
		drawer.DrawString(label)
	}
}
