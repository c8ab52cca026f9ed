// Package clipboard provides exclusive, scoped access to the bitmap stored on
// the system clipboard.
package clipboard

import (
	"context"
	"sync"

	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

// ErrBusy is returned when another session already holds the clipboard.
var ErrBusy = errors.New("clipboard is held by another session")

// Provider opens clipboard sessions.
type Provider interface {
	Open(ctx context.Context) (*Session, error)
}

// owner admits one open session per process.
var owner = make(chan struct{}, 1)

func acquire(ctx context.Context) (func(), error) {
	const op errors.Op = "clipboard.Open"

	if err := ctx.Err(); err != nil {
		return nil, errors.E(op, errors.KindClipboard, errors.EFail, "Failed to open the clipboard object", err)
	}
	select {
	case owner <- struct{}{}:
		return func() { <-owner }, nil
	default:
		return nil, errors.E(op, errors.KindClipboard, errors.EFail, "Failed to open the clipboard object", ErrBusy)
	}
}

// Session is an open clipboard. The bitmap it returns is borrowed and must
// not be used after Close.
type Session struct {
	bitmap  []byte
	release func()
	once    sync.Once
}

func newSession(bitmap []byte, release func()) *Session {
	return &Session{bitmap: bitmap, release: release}
}

// Bitmap returns the encoded bitmap payload, or false when the clipboard
// holds no bitmap.
func (s *Session) Bitmap() ([]byte, bool) {
	if len(s.bitmap) == 0 {
		return nil, false
	}
	return s.bitmap, true
}

// Close releases the clipboard. Calling Close more than once is a no-op.
func (s *Session) Close() {
	s.once.Do(func() {
		s.bitmap = nil
		if s.release != nil {
			s.release()
		}
		logger.Debug("Clipboard: released")
	})
}
