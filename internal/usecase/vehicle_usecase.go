package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase/interfaces"
)

var (
	ErrVehicleAlreadyRegistered = errors.New("vehicle already registered for owner")
	ErrInvalidOwnerID           = errors.New("invalid owner id")
)

// IVehicleUseCase exposes vehicle registration, the ownership source the
// claim workflow verifies against.

type IVehicleUseCase interface {
	Register(ctx context.Context, ownerID, brand, model, plateNumber string) (entities.VehicleRef, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.VehicleRef, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Register(ctx context.Context, ownerID, brand, model, plateNumber string) (entities.VehicleRef, error) {
	ownerID = strings.TrimSpace(ownerID)
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	plateNumber = strings.TrimSpace(plateNumber)
	if ownerID == "" {
		return entities.VehicleRef{}, ErrInvalidOwnerID
	}
	if brand == "" || model == "" || plateNumber == "" {
		return entities.VehicleRef{}, ErrEmptyVehicleFields
	}

	// Enforce: 1 record per (owner, plate).
	if existing, err := u.repo.GetByOwnerAndPlate(ctx, ownerID, plateNumber); err != nil {
		return entities.VehicleRef{}, err
	} else if existing.ID != "" {
		return entities.VehicleRef{}, ErrVehicleAlreadyRegistered
	}

	v := entities.VehicleRef{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Brand:        brand,
		Model:        model,
		PlateNumber:  plateNumber,
		RegisteredAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		log.Printf("[vehicle][usecase] register failed owner_id=%s plate=%s err=%v", ownerID, plateNumber, err)
		return entities.VehicleRef{}, err
	}
	log.Printf("[vehicle][usecase] registered vehicle_id=%s owner_id=%s", created.ID, ownerID)
	return created, nil
}

func (u *VehicleUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.VehicleRef, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwner(ctx, ownerID)
}
