package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/imageworks/stitcher/internal/imaging"
)

// cornerSuffixes are the fixed filename suffixes of the four-corner naming
// convention, in row-major order.
var cornerSuffixes = [4]string{"-tl", "-tr", "-bl", "-br"}

// Pipeline runs the decode-all, compose, encode sequence for one
// invocation. Decoded inputs are cached, so a tile referenced more than
// once is read from disk only once.
type Pipeline struct {
	cache *imaging.ImageCache
	log   *slog.Logger
}

// New creates a Pipeline logging through the given logger.
func New(log *slog.Logger) *Pipeline {
	return &Pipeline{
		cache: imaging.NewImageCache(),
		log:   log,
	}
}

// CornerPaths expands a base name into the conventional four corner input
// paths, row-major, plus the default output path: base-tl.png, base-tr.png,
// base-bl.png and base-br.png stitch into base-out.png.
func CornerPaths(base string) ([]string, string) {
	paths := make([]string, len(cornerSuffixes))
	for i, suffix := range cornerSuffixes {
		paths[i] = base + suffix + ".png"
	}
	return paths, base + "-out.png"
}

// StitchBase runs the naming-convention 2x2 mode. An empty output selects
// the conventional base-out.png next to the inputs.
func (p *Pipeline) StitchBase(base, output string) error {
	if base == "" {
		return newArgumentError("empty base name")
	}

	paths, defaultOut := CornerPaths(base)
	if output == "" {
		output = defaultOut
	}
	return p.StitchGrid(paths, 2, 2, output)
}

// StitchCorners runs the explicit four-corner 2x2 mode.
func (p *Pipeline) StitchCorners(tl, tr, bl, br, output string) error {
	return p.StitchGrid([]string{tl, tr, bl, br}, 2, 2, output)
}

// StitchGrid decodes every tile path, composes the columns x rows grid and
// writes the composite to output.
//
// The whole run fails fast on the first error, in this order: shape and
// count validation, decode errors, size-mismatch validation, encode errors.
// Any decode failure aborts the run before composition starts, and the
// output file is only created once composition has fully succeeded.
func (p *Pipeline) StitchGrid(paths []string, columns, rows int, output string) error {
	if columns < 1 || rows < 1 {
		return newArgumentError("grid shape %dx%d is invalid, need at least 1x1", columns, rows)
	}
	if len(paths) != columns*rows {
		return newArgumentError("a %dx%d grid needs %d images, got %d", columns, rows, columns*rows, len(paths))
	}
	if output == "" {
		return newArgumentError("empty output path")
	}

	p.log.Debug("stitching grid", "columns", columns, "rows", rows, "output", output)

	debug := p.log.Enabled(context.Background(), slog.LevelDebug)
	rasters := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := p.cache.Load(path)
		if err != nil {
			return err
		}
		if debug {
			if info, infoErr := imaging.LoadImageInfo(p.cache, path); infoErr == nil {
				p.log.Debug("loaded tile", "path", path,
					"width", info.Width, "height", info.Height,
					"format", info.Format, "alpha", info.HasAlpha)
			}
		}
		rasters = append(rasters, img)
	}

	canvas, err := imaging.Compose(rasters, columns, rows)
	if err != nil {
		return err
	}

	if err := imaging.Save(canvas, output); err != nil {
		return err
	}

	bounds := canvas.Bounds()
	p.log.Info("wrote composite", "output", output, "width", bounds.Dx(), "height", bounds.Dy())
	return nil
}

// newArgumentError builds an argument-kind error so callers can match it
// with errors.Is(err, imaging.ErrArgument).
func newArgumentError(format string, args ...interface{}) error {
	return &imaging.Error{Kind: imaging.KindArgument, Msg: fmt.Sprintf(format, args...)}
}
