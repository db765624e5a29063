package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

// mp4Payload builds a minimal ISO base media header that sniffs as video/mp4.
func mp4Payload() []byte {
	var b bytes.Buffer
	b.Write([]byte{0x00, 0x00, 0x00, 0x18})
	b.WriteString("ftypisom")
	b.Write(bytes.Repeat([]byte{0x00}, 64))
	return b.Bytes()
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestStore_SaveVideo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h, err := s.Save(ctx, bytes.NewReader(mp4Payload()), "crash.mp4", entities.MediaSourceCamera)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if h.MimeType != "video/mp4" {
		t.Fatalf("expected video/mp4, got %s", h.MimeType)
	}
	if h.Source != entities.MediaSourceCamera {
		t.Fatalf("expected camera source, got %s", h.Source)
	}
	if !strings.HasSuffix(h.LocalURI, ".mp4") {
		t.Fatalf("expected .mp4 suffix, got %s", h.LocalURI)
	}

	if err := s.Stat(ctx, h); err != nil {
		t.Fatalf("stat: %v", err)
	}

	rc, err := s.Open(ctx, h)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, mp4Payload()) {
		t.Fatalf("staged content differs from upload")
	}
}

func TestStore_SaveRejectsNonVideo(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), strings.NewReader("just some text"), "notes.txt", entities.MediaSourceGallery)
	if !errors.Is(err, interfaces.ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}

	entries, readErr := os.ReadDir(s.dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected rejected upload removed, found %d files", len(entries))
	}
}

func TestStore_StatMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Stat(ctx, entities.MediaHandle{}); !errors.Is(err, interfaces.ErrMediaMissing) {
		t.Fatalf("expected ErrMediaMissing for zero handle, got %v", err)
	}

	h, err := s.Save(ctx, bytes.NewReader(mp4Payload()), "crash.mp4", entities.MediaSourceCamera)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.Remove(h.LocalURI); err != nil {
		t.Fatalf("remove staged file: %v", err)
	}

	if err := s.Stat(ctx, h); !errors.Is(err, interfaces.ErrMediaMissing) {
		t.Fatalf("expected ErrMediaMissing, got %v", err)
	}
	if _, err := s.Open(ctx, h); !errors.Is(err, interfaces.ErrMediaMissing) {
		t.Fatalf("expected ErrMediaMissing on open, got %v", err)
	}
}

func TestStore_RemoveIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	h, err := s.Save(ctx, bytes.NewReader(mp4Payload()), "crash.mp4", entities.MediaSourceCamera)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Remove(ctx, h); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, h); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if err := s.Remove(ctx, entities.MediaHandle{}); err != nil {
		t.Fatalf("remove zero handle: %v", err)
	}
}
