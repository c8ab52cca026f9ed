// Package imaging turns a clipboard bitmap into image files on disk.
//
// It covers the three toolkit stages of a conversion: building an image
// source from the encoded clipboard payload, resampling it to a constrained
// width, and committing it to a PNG or JPEG file.
//
// # Pixel Format
//
// Every Source holds 32-bit non-premultiplied RGBA pixels with the origin at
// (0,0). Alpha in the clipboard payload is discarded: all pixels are made
// opaque when the source is built, so PNG and JPEG output look the same.
//
// # Scaling
//
// Scale always produces an image exactly maxWidth pixels wide and derives
// the height from the width ratio, rounding to the nearest pixel. Sources
// narrower than maxWidth are scaled up. Resampling uses the Catmull-Rom
// cubic filter from github.com/disintegration/imaging.
//
// # Error Handling
//
// All functions return *errors.Error values carrying a status code:
//   - WINCODEC_ERR_BADIMAGE for payloads that cannot be decoded
//   - E_INVALIDARG for non-positive widths or frame sizes
//   - WINCODEC_ERR_COMPONENTNOTFOUND for unknown encoder names
//   - STG_E_WRITEFAULT when the container cannot be committed to disk
//
// Files left behind by a failed write are not removed.
package imaging
