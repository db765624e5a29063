package request

import "strings"

// VerifyVehicleRequest starts a claim session by checking ownership of the
// described vehicle.
type VerifyVehicleRequest struct {
	CarBrand  string `json:"car_brand" binding:"required"`
	CarModel  string `json:"car_model" binding:"required"`
	CarNumber string `json:"car_number" binding:"required"`
}

func (r VerifyVehicleRequest) Normalized() (brand, model, plate string) {
	return strings.TrimSpace(r.CarBrand), strings.TrimSpace(r.CarModel), strings.TrimSpace(r.CarNumber)
}
