package imaging

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP/DIB format decoder

	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

var errEmptyBitmap = errors.New("bitmap payload is empty")

// Source is an addressable 32-bit RGBA pixel buffer with known dimensions.
//
// The pixels are always opaque: alpha in the clipboard bitmap is ignored
// when the source is constructed. The origin is (0,0).
type Source struct {
	img *image.NRGBA
}

// NewSource decodes an encoded clipboard bitmap into an image source.
//
// Parameters:
//   - bitmap: Encoded image bytes. PNG, BMP, JPEG and GIF are recognized.
//
// Returns:
//   - *Source: Opaque NRGBA pixels with the bitmap's dimensions.
//   - error: WINCODEC_ERR_BADIMAGE if the payload is empty, cannot be
//     decoded, or decodes to an image with no area.
func NewSource(bitmap []byte) (*Source, error) {
	const op errors.Op = "imaging.NewSource"
	const msg = "Failed to construct an image source from the clipboard bitmap"

	if len(bitmap) == 0 {
		return nil, errors.E(op, errors.KindToolkit, errors.CodecBadImage, msg, errEmptyBitmap)
	}

	img, format, err := image.Decode(bytes.NewReader(bitmap))
	if err != nil {
		return nil, errors.E(op, errors.KindToolkit, errors.CodecBadImage, msg, err)
	}
	if img.Bounds().Empty() {
		return nil, errors.E(op, errors.KindToolkit, errors.CodecBadImage, msg,
			errors.New("bitmap has no pixels"))
	}

	src := FromImage(img)
	w, h := src.Size()
	logger.Debug("Imaging: decoded %s bitmap %dx%d", format, w, h)
	return src, nil
}

// FromImage copies img into an opaque image source.
func FromImage(img image.Image) *Source {
	n := imaging.Clone(img)
	for i := 3; i < len(n.Pix); i += 4 {
		n.Pix[i] = 0xff
	}
	return &Source{img: n}
}

// Size returns the width and height in pixels.
func (s *Source) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the pixels. Callers must not modify them.
func (s *Source) Image() image.Image {
	return s.img
}
