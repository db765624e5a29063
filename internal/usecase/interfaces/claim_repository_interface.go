package interfaces

import (
	"context"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

// IClaimRepository abstracts DynamoDB persistence for ClaimRecord (the Claim
// Store). Records are append-only; the workflow never updates or deletes a
// claim. ListByUserID makes no ordering guarantee.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.ClaimRecord) (entities.ClaimRecord, error)
	GetByID(ctx context.Context, claimID string) (entities.ClaimRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ClaimRecord, error)
}
