package clipboard

import (
	"context"

	"github.com/ironsheep/clippy/internal/errors"
)

// Static serves a fixed payload. It stands in for the OS clipboard where no
// display is available.
type Static struct {
	// Data is the encoded bitmap. Empty means no bitmap on the clipboard.
	Data []byte

	// OpenErr, when set, makes Open fail as if the clipboard were unavailable.
	OpenErr error
}

// Open acquires the clipboard and returns a session over Data.
func (s *Static) Open(ctx context.Context) (*Session, error) {
	release, err := acquire(ctx)
	if err != nil {
		return nil, err
	}
	if s.OpenErr != nil {
		release()
		return nil, errors.E(errors.Op("clipboard.Static.Open"), errors.KindClipboard, errors.EFail,
			"Failed to open the clipboard object", s.OpenErr)
	}
	return newSession(s.Data, release), nil
}
