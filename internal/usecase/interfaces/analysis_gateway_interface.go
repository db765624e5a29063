package interfaces

import (
	"context"
	"errors"
	"io"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

// Failure classes an IAnalysisGateway implementation must wrap its errors
// with. Transport failures are retryable by resubmitting; a rejected or
// malformed response is not.
var (
	ErrAnalysisTransport = errors.New("analysis service unreachable")
	ErrAnalysisRejected  = errors.New("analysis service rejected the upload")
	ErrAnalysisMalformed = errors.New("malformed analysis response")
)

// IAnalysisGateway abstracts the external damage-analysis service.
//
// AnalyzeVideo streams the acquired video plus vehicle metadata in a single
// non-idempotent exchange and returns the parsed estimate payload. A result
// without a best frame means no damage was detected, which is not an error.
type IAnalysisGateway interface {
	AnalyzeVideo(ctx context.Context, video io.Reader, media entities.MediaHandle, vehicle entities.VehicleRef) (entities.AnalysisResult, error)
}
