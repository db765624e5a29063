package response

import (
	"time"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	PlateNumber  string    `json:"plate_number"`
	RegisteredAt time.Time `json:"registered_at"`
}

func FromVehicle(v entities.VehicleRef) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Brand:        v.Brand,
		Model:        v.Model,
		PlateNumber:  v.PlateNumber,
		RegisteredAt: v.RegisteredAt,
	}
}

func FromVehicles(vs []entities.VehicleRef) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
