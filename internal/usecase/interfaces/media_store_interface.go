package interfaces

import (
	"context"
	"errors"
	"io"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

var (
	ErrMediaMissing     = errors.New("video file does not exist")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// IMediaStore abstracts local staging of acquired video.
//
// Save sniffs the payload and rejects anything that is not a video; Stat
// re-validates existence right before an analysis submission (the staged file
// may have been cleaned up underneath the workflow).
type IMediaStore interface {
	Save(ctx context.Context, r io.Reader, filename string, source entities.MediaSource) (entities.MediaHandle, error)
	Stat(ctx context.Context, h entities.MediaHandle) error
	Open(ctx context.Context, h entities.MediaHandle) (io.ReadCloser, error)
	Remove(ctx context.Context, h entities.MediaHandle) error
}
