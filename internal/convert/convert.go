// Package convert runs the clipboard-to-file conversion from clipboard
// acquisition through cleanup.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ironsheep/clippy/internal/clipboard"
	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/imaging"
	"github.com/ironsheep/clippy/internal/logger"
)

// Probe output written to stdout.
const (
	ProbeTrue  = "TRUE"
	ProbeFalse = "FALSE"
)

// Options controls a single conversion run.
type Options struct {
	// MaxWidth is the width of the resized output.
	MaxWidth int

	// WriteFull also writes an unscaled copy named <Filename>_full.<Encoder>.
	WriteFull bool

	// Filename is the base output name without extension.
	Filename string

	// Encoder is "png" or "jpeg" ("jpg" is accepted). It is also the
	// file extension.
	Encoder string

	// Probe only reports whether the clipboard holds a bitmap.
	Probe bool

	// Dir is the output directory. Empty means the working directory.
	Dir string

	// JPEGQuality is passed to the JPEG encoder.
	JPEGQuality int
}

// DefaultOptions returns the command-line defaults.
func DefaultOptions() Options {
	return Options{
		MaxWidth:    800,
		Filename:    "image",
		Encoder:     "png",
		Dir:         ".",
		JPEGQuality: imaging.DefaultJPEGQuality,
	}
}

// OutputFile describes one written image.
type OutputFile struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Mime   string `json:"mime_type"`
}

// Result reports what a run did.
type Result struct {
	// HasBitmap is whether the clipboard held a bitmap.
	HasBitmap bool `json:"has_bitmap"`

	// SourceWidth and SourceHeight are the clipboard bitmap's size.
	SourceWidth  int `json:"source_width,omitempty"`
	SourceHeight int `json:"source_height,omitempty"`

	// Files lists written files in write order.
	Files []OutputFile `json:"files,omitempty"`
}

// Run executes one conversion against the clipboard provided by p.
//
// In probe mode it writes TRUE or FALSE to stdout and succeeds either way.
// Otherwise a missing bitmap and every toolkit failure are fatal. The
// clipboard session is released on every path before Run returns.
func Run(ctx context.Context, p clipboard.Provider, opts Options, stdout io.Writer) (*Result, error) {
	const op errors.Op = "convert.Run"

	format, err := imaging.ParseFormat(opts.Encoder)
	if err != nil && !opts.Probe {
		return nil, err
	}

	session, err := p.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	bitmap, ok := session.Bitmap()
	result := &Result{HasBitmap: ok}

	if opts.Probe {
		out := ProbeFalse
		if ok {
			out = ProbeTrue
		}
		if _, err := io.WriteString(stdout, out); err != nil {
			return nil, errors.E(op, errors.KindIO, "Failed to write probe result", err)
		}
		return result, nil
	}

	if !ok {
		return nil, errors.E(op, errors.KindClipboard, errors.EFail, "No bitmap on clipboard")
	}

	src, err := imaging.NewSource(bitmap)
	if err != nil {
		return nil, err
	}
	width, height := src.Size()
	result.SourceWidth, result.SourceHeight = width, height
	logger.Debug("Convert: clipboard bitmap %dx%d", width, height)

	encOpts := imaging.EncodeOptions{JPEGQuality: opts.JPEGQuality}
	ext := strings.ToLower(strings.TrimSpace(opts.Encoder))

	if opts.WriteFull {
		path := outputPath(opts.Dir, opts.Filename+"_full."+ext)
		if err := imaging.WriteFile(path, src, width, height, format, encOpts); err != nil {
			return nil, errors.E(op, errors.KindIO, "Could not write full sized image to disk", err)
		}
		result.Files = append(result.Files, OutputFile{Path: path, Width: width, Height: height, Format: format.String(), Mime: format.MimeType()})
	}

	scaled, err := imaging.Scale(src, opts.MaxWidth)
	if err != nil {
		return nil, err
	}
	sw, sh := scaled.Size()

	path := outputPath(opts.Dir, opts.Filename+"."+ext)
	if err := imaging.WriteFile(path, scaled, sw, sh, format, encOpts); err != nil {
		return nil, errors.E(op, errors.KindIO, "Could not write resized image to disk", err)
	}
	result.Files = append(result.Files, OutputFile{Path: path, Width: sw, Height: sh, Format: format.String(), Mime: format.MimeType()})

	for _, f := range result.Files {
		logger.Debug("Convert: wrote %s (%dx%d)", f.Path, f.Width, f.Height)
	}
	return result, nil
}

func outputPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return filepath.Join(dir, name)
}

// Summary formats a Result as a single human-readable line.
func (r *Result) Summary() string {
	if !r.HasBitmap {
		return "no bitmap on clipboard"
	}
	parts := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		parts = append(parts, fmt.Sprintf("%s %dx%d", f.Path, f.Width, f.Height))
	}
	return fmt.Sprintf("%dx%d bitmap -> %s", r.SourceWidth, r.SourceHeight, strings.Join(parts, ", "))
}
