package clipboard

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ironsheep/clippy/internal/errors"
)

func TestStatic_Bitmap(t *testing.T) {
	p := &Static{Data: []byte{1, 2, 3}}

	s, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	data, ok := s.Bitmap()
	if !ok {
		t.Fatal("Bitmap reported no payload")
	}
	if len(data) != 3 {
		t.Errorf("Bitmap length: got %d, want 3", len(data))
	}
}

func TestStatic_NoBitmap(t *testing.T) {
	p := &Static{}

	s, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.Bitmap(); ok {
		t.Error("Bitmap reported a payload on an empty clipboard")
	}
}

func TestOpen_Exclusive(t *testing.T) {
	p := &Static{Data: []byte{1}}

	first, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	_, err = p.Open(context.Background())
	if err == nil {
		t.Fatal("second Open should fail while the clipboard is held")
	}
	if !stderrors.Is(err, ErrBusy) {
		t.Errorf("second Open: got %v, want ErrBusy", err)
	}
	if errors.CodeOf(err) != errors.EFail {
		t.Errorf("code: got %s, want %s", errors.CodeOf(err), errors.EFail)
	}

	first.Close()

	again, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Open after Close failed: %v", err)
	}
	again.Close()
}

func TestSession_CloseTwice(t *testing.T) {
	p := &Static{Data: []byte{1}}
	s, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	s.Close()
	s.Close()

	if _, ok := s.Bitmap(); ok {
		t.Error("Bitmap still available after Close")
	}

	// A double Close must not release someone else's hold.
	other, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer other.Close()
	if _, err := p.Open(context.Background()); err == nil {
		t.Error("clipboard should still be held by the second session")
	}
}

func TestStatic_OpenErr(t *testing.T) {
	p := &Static{OpenErr: stderrors.New("display unavailable")}

	if _, err := p.Open(context.Background()); err == nil {
		t.Fatal("Open should fail")
	} else if !errors.Is(err, errors.KindClipboard) {
		t.Errorf("kind: got %v, want KindClipboard", errors.GetKind(err))
	}

	// The failed open must not leave the clipboard held.
	s, err := (&Static{}).Open(context.Background())
	if err != nil {
		t.Fatalf("Open after failed open: %v", err)
	}
	s.Close()
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (&Static{}).Open(ctx); err == nil {
		t.Error("Open should fail with a cancelled context")
	}
}
