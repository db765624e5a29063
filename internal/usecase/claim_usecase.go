package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

var (
	ErrClaimNotFound  = errors.New("claim not found")
	ErrInvalidClaimID = errors.New("invalid claim id")
)

// IClaimQueryUseCase exposes read access to filed claims. Claims are only
// ever created through the workflow commit.

type IClaimQueryUseCase interface {
	GetByID(ctx context.Context, claimID string) (entities.ClaimRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ClaimRecord, error)
}

type ClaimQueryUseCase struct {
	repo interfaces.IClaimRepository
}

var _ IClaimQueryUseCase = (*ClaimQueryUseCase)(nil)

func NewClaimQueryUseCase(repo interfaces.IClaimRepository) *ClaimQueryUseCase {
	return &ClaimQueryUseCase{repo: repo}
}

func (u *ClaimQueryUseCase) GetByID(ctx context.Context, claimID string) (entities.ClaimRecord, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.ClaimRecord{}, ErrInvalidClaimID
	}

	c, err := u.repo.GetByID(ctx, claimID)
	if err != nil {
		return entities.ClaimRecord{}, err
	}
	if c.ClaimID == "" {
		return entities.ClaimRecord{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimQueryUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.ClaimRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}
