package response

import (
	"time"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

type ClaimResponse struct {
	ClaimID      string    `json:"claim_id"`
	UserID       string    `json:"user_id"`
	VehicleID    string    `json:"vehicle_id"`
	CarBrand     string    `json:"car_brand"`
	CarModel     string    `json:"car_model"`
	CarNumber    string    `json:"car_number"`
	PriceDetails string    `json:"price_details"`
	TotalCost    string    `json:"total_cost"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromClaim(c entities.ClaimRecord) ClaimResponse {
	return ClaimResponse{
		ClaimID:      c.ClaimID,
		UserID:       c.UserID,
		VehicleID:    c.VehicleID,
		CarBrand:     c.CarBrand,
		CarModel:     c.CarModel,
		CarNumber:    c.CarNumber,
		PriceDetails: c.PriceDetails,
		TotalCost:    c.TotalCost,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

func FromClaims(cs []entities.ClaimRecord) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClaim(c))
	}
	return out
}
