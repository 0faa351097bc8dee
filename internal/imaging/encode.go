package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Save writes an image to path, choosing the encoder from the file
// extension. PNG is the primary, lossless path; .jpg, .gif, .tif and .bmp
// outputs are also accepted. An unrecognized extension or any I/O failure
// is reported as an encode error.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return wrapError(KindEncode, err, "save %s", path)
	}
	return nil
}
