package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

// Format selects the output container.
type Format int

const (
	PNG Format = iota
	JPEG
)

// DefaultJPEGQuality is used when EncodeOptions.JPEGQuality is out of range.
const DefaultJPEGQuality = 90

// ParseFormat maps an encoder name to a container format.
//
// "png" selects PNG; "jpeg" and "jpg" select JPEG. Matching ignores case and
// surrounding space. Any other name fails with WINCODEC_ERR_COMPONENTNOTFOUND.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	}
	return 0, errors.E(errors.Op("imaging.ParseFormat"), errors.KindInvalid, errors.CodecComponentNotFound,
		fmt.Sprintf("Unsupported encoder %q (want png or jpeg)", name))
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MimeType returns the media type written for f.
func (f Format) MimeType() string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// EncodeOptions tunes the container encoders.
type EncodeOptions struct {
	// JPEGQuality is 1..100. Other values mean DefaultJPEGQuality.
	JPEGQuality int
}

type encodeFunc func(w io.Writer, img image.Image) error

func newEncoder(format Format, opts EncodeOptions) (encodeFunc, error) {
	switch format {
	case PNG:
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.PNG)
		}, nil
	case JPEG:
		q := opts.JPEGQuality
		if q < 1 || q > 100 {
			q = DefaultJPEGQuality
		}
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(q))
		}, nil
	}
	return nil, fmt.Errorf("no encoder for %s", format)
}

// frame is a single image plane awaiting commit.
type frame struct {
	pix *image.NRGBA
}

func newFrame(width, height int) (*frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d is not positive", width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("frame size %dx%d exceeds the %d pixel limit", width, height, MaxPixels)
	}
	return &frame{pix: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

func (fr *frame) writeSource(src *Source) error {
	w, h := src.Size()
	fb := fr.pix.Bounds()
	if w != fb.Dx() || h != fb.Dy() {
		return fmt.Errorf("source %dx%d does not match frame %dx%d", w, h, fb.Dx(), fb.Dy())
	}
	xdraw.Copy(fr.pix, image.Point{}, src.img, src.img.Bounds(), xdraw.Src, nil)
	return nil
}

// WriteFile encodes src as a single-frame image file at path.
//
// The frame is width x height pixels in 32-bit RGBA and must match the
// source size. The commit sequence runs in order: select the encoder, open
// the stream, create and size the frame, copy the pixels, commit the frame,
// then commit the container. The first failing step aborts the write. A
// partially written file is left in place.
func WriteFile(path string, src *Source, width, height int, format Format, opts EncodeOptions) error {
	const op errors.Op = "imaging.WriteFile"

	encode, err := newEncoder(format, opts)
	if err != nil {
		return errors.E(op, errors.KindEncode, errors.CodecComponentNotFound,
			"Could not create the PNG or JPEG encoder", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.E(op, errors.KindIO, errors.FromOS(err), "Failed to initialize a writeable stream", err)
	}
	committed := false
	defer func() {
		if !committed {
			f.Close()
		}
	}()

	fr, err := newFrame(width, height)
	if err != nil {
		return errors.E(op, errors.KindEncode, errors.EInvalidArg,
			"Failed to set the output size for the frame encoder", err)
	}

	if err := fr.writeSource(src); err != nil {
		return errors.E(op, errors.KindEncode, errors.CodecSourceRectMismatch,
			"Failed to set the write source of the frame encoder", err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, fr.pix); err != nil {
		return errors.E(op, errors.KindEncode, errors.EFail, "Failed to commit the frame encoder", err)
	}

	if _, err := buf.WriteTo(f); err != nil {
		return errors.E(op, errors.KindIO, errors.StreamWriteFault, "Failed to commit the bitmap encoder", err)
	}
	if err := f.Sync(); err != nil {
		return errors.E(op, errors.KindIO, errors.StreamWriteFault, "Failed to commit the bitmap encoder", err)
	}
	committed = true
	if err := f.Close(); err != nil {
		return errors.E(op, errors.KindIO, errors.StreamWriteFault, "Failed to commit the bitmap encoder", err)
	}

	logger.Debug("Imaging: wrote %s (%dx%d %s)", path, width, height, format)
	return nil
}
