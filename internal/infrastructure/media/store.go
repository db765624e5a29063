package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

// Store stages acquired videos on local disk until they are analyzed or the
// session is reset. Files are named by a fresh UUID, so concurrent sessions
// never collide.
type Store struct {
	dir string
}

var _ interfaces.IMediaStore = (*Store)(nil)

// NewStore creates the staging directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// NewStoreFromEnv reads MEDIA_DIR, defaulting to a subdirectory of the
// system temp dir.
func NewStoreFromEnv() (*Store, error) {
	dir := os.Getenv("MEDIA_DIR")
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "claimswift-media")
	}
	return NewStore(dir)
}

// Save copies the upload to the staging directory and sniffs its content
// type. Anything that is not a video is removed and rejected.
func (s *Store) Save(ctx context.Context, r io.Reader, filename string, source entities.MediaSource) (entities.MediaHandle, error) {
	ext := filepath.Ext(filename)
	path := filepath.Join(s.dir, uuid.NewString()+ext)

	f, err := os.Create(path)
	if err != nil {
		return entities.MediaHandle{}, fmt.Errorf("stage media: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return entities.MediaHandle{}, fmt.Errorf("stage media: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return entities.MediaHandle{}, fmt.Errorf("stage media: %w", err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		os.Remove(path)
		return entities.MediaHandle{}, fmt.Errorf("sniff media: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "video/") {
		os.Remove(path)
		log.Printf("[media][store] rejected upload filename=%q detected=%s", filename, mtype.String())
		return entities.MediaHandle{}, fmt.Errorf("%w: %s", interfaces.ErrUnsupportedMedia, mtype.String())
	}

	log.Printf("[media][store] staged uri=%s type=%s source=%s", path, mtype.String(), source)
	return entities.MediaHandle{
		LocalURI: path,
		MimeType: mtype.String(),
		Source:   source,
	}, nil
}

func (s *Store) Stat(ctx context.Context, h entities.MediaHandle) error {
	if h.IsZero() {
		return interfaces.ErrMediaMissing
	}
	if _, err := os.Stat(h.LocalURI); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", interfaces.ErrMediaMissing, h.LocalURI)
		}
		return err
	}
	return nil
}

func (s *Store) Open(ctx context.Context, h entities.MediaHandle) (io.ReadCloser, error) {
	f, err := os.Open(h.LocalURI)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrMediaMissing, h.LocalURI)
		}
		return nil, err
	}
	return f, nil
}

// Remove deletes the staged file. A file already gone is not an error.
func (s *Store) Remove(ctx context.Context, h entities.MediaHandle) error {
	if h.IsZero() {
		return nil
	}
	if err := os.Remove(h.LocalURI); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
