package clipboard

import (
	"context"
	"sync"

	"golang.design/x/clipboard"

	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// System reads the OS clipboard through golang.design/x/clipboard.
type System struct{}

// Open acquires the clipboard and fetches its image payload, if any.
func (System) Open(ctx context.Context) (*Session, error) {
	const op errors.Op = "clipboard.System.Open"

	release, err := acquire(ctx)
	if err != nil {
		return nil, err
	}

	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		release()
		logger.Debug("Clipboard: failed to initialize: %v", initErr)
		return nil, errors.E(op, errors.KindClipboard, errors.EFail, "Failed to open the clipboard object", initErr)
	}

	data := clipboard.Read(clipboard.FmtImage)
	logger.Debug("Clipboard: opened, %d bytes of image data", len(data))
	return newSession(data, release), nil
}
