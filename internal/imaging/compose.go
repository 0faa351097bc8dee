package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ValidateUniformSize checks that every image in rasters has identical
// dimensions and returns that shared (width, height).
//
// The first image's bounds are the reference; any later image that deviates
// in either dimension fails the check. An empty sequence also fails, since
// there is no reference size to validate against.
func ValidateUniformSize(rasters []image.Image) (int, int, error) {
	if len(rasters) == 0 {
		return 0, 0, newError(KindSizeMismatch, "no images to take a reference size from")
	}

	ref := rasters[0].Bounds()
	width, height := ref.Dx(), ref.Dy()

	for i, r := range rasters[1:] {
		b := r.Bounds()
		if b.Dx() != width || b.Dy() != height {
			return 0, 0, newError(KindSizeMismatch,
				"image %d is %dx%d, expected %dx%d", i+1, b.Dx(), b.Dy(), width, height)
		}
	}

	return width, height, nil
}

// Compose assembles rasters into a columns x rows grid on a single canvas.
//
// The rasters must be supplied in row-major order (left to right, top to
// bottom): the image at index r*columns+c lands in grid cell (c, r). All
// images must share identical dimensions; the canvas is sized
// (width*columns, height*rows) and each cell is copied channel-for-channel
// with no blending, so every canvas pixel is written exactly once.
//
// Failures are atomic: on any error the canvas is discarded and only the
// error is returned.
func Compose(rasters []image.Image, columns, rows int) (*image.NRGBA, error) {
	if columns < 1 || rows < 1 {
		return nil, newError(KindGridArity, "grid shape %dx%d is invalid, need at least 1x1", columns, rows)
	}
	if len(rasters) != columns*rows {
		return nil, newError(KindGridArity,
			"%dx%d grid needs %d images, got %d", columns, rows, columns*rows, len(rasters))
	}

	width, height, err := ValidateUniformSize(rasters)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(width*columns, height*rows, color.NRGBA{})

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			src := rasters[r*columns+c]
			cell := image.Rect(c*width, r*height, (c+1)*width, (r+1)*height)
			// draw.Src overwrites the cell outright; a transparent source
			// pixel stays transparent on the canvas.
			draw.Draw(canvas, cell, src, src.Bounds().Min, draw.Src)
		}
	}

	return canvas, nil
}

// ComposeQuad stitches four equally sized images into a 2x2 layout. It is a
// fixed instantiation of Compose and produces output identical to
// Compose([]image.Image{tl, tr, bl, br}, 2, 2).
func ComposeQuad(tl, tr, bl, br image.Image) (*image.NRGBA, error) {
	return Compose([]image.Image{tl, tr, bl, br}, 2, 2)
}
