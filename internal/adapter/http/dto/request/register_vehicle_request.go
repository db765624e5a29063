package request

import "strings"

// RegisterVehicleRequest adds a vehicle to the user's registry, the source
// the claim workflow verifies against.
type RegisterVehicleRequest struct {
	Brand       string `json:"brand" binding:"required"`
	Model       string `json:"model" binding:"required"`
	PlateNumber string `json:"plate_number" binding:"required"`
}

func (r RegisterVehicleRequest) Normalized() (brand, model, plate string) {
	return strings.TrimSpace(r.Brand), strings.TrimSpace(r.Model), strings.TrimSpace(r.PlateNumber)
}
