package interfaces

import (
	"context"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for VehicleRef (the
// Vehicle Store).
//
// The claim workflow must be able to:
//   - look a vehicle up by (owner, plate) before allowing an upload
//   - create a vehicle during registration
//   - list an owner's vehicles

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.VehicleRef) (entities.VehicleRef, error)
	GetByOwnerAndPlate(ctx context.Context, ownerID, plateNumber string) (entities.VehicleRef, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.VehicleRef, error)
}
