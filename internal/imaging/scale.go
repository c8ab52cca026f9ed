package imaging

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

// MaxPixels caps the pixel count of any scaled image or encoder frame.
const MaxPixels = 1 << 27

// ScaledSize constrains an image of width x height to maxWidth, preserving
// aspect ratio. The result width is always maxWidth, so narrower images are
// scaled up. Height is round(height * maxWidth / width), at least 1. Target
// sizes above MaxPixels fail with E_INVALIDARG.
func ScaledSize(width, height, maxWidth int) (int, int, error) {
	const op errors.Op = "imaging.ScaledSize"

	if maxWidth <= 0 {
		return 0, 0, errors.E(op, errors.KindScale, errors.EInvalidArg,
			fmt.Sprintf("invalid maximum width %d", maxWidth))
	}
	if width <= 0 || height <= 0 {
		return 0, 0, errors.E(op, errors.KindScale, errors.EInvalidArg,
			fmt.Sprintf("invalid source size %dx%d", width, height))
	}

	if maxWidth > MaxPixels {
		return 0, 0, errors.E(op, errors.KindScale, errors.EInvalidArg,
			fmt.Sprintf("maximum width %d exceeds the %d pixel limit", maxWidth, MaxPixels))
	}

	fh := math.Round(float64(height) * float64(maxWidth) / float64(width))
	if fh < 1 {
		fh = 1
	}
	if fh > float64(MaxPixels/maxWidth) {
		return 0, 0, errors.E(op, errors.KindScale, errors.EInvalidArg,
			fmt.Sprintf("scaled size %dx%.0f exceeds the %d pixel limit", maxWidth, fh, MaxPixels))
	}
	return maxWidth, int(fh), nil
}

// Scale resamples src to maxWidth using Catmull-Rom cubic interpolation.
//
// Scaling always runs, including when src is already maxWidth wide or
// narrower. Height is derived from the width ratio alone.
func Scale(src *Source, maxWidth int) (*Source, error) {
	w, h := src.Size()
	tw, th, err := ScaledSize(w, h, maxWidth)
	if err != nil {
		return nil, errors.E(errors.Op("imaging.Scale"), errors.KindScale,
			"Could not initialize the bitmap scaler", err)
	}

	logger.Debug("Imaging: scaling %dx%d to %dx%d", w, h, tw, th)
	return &Source{img: imaging.Resize(src.img, tw, th, imaging.CatmullRom)}, nil
}
