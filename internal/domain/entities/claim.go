package entities

import (
	"encoding/json"
	"strconv"
	"time"
)

// ClaimStatus represents the insurance review outcome of a filed claim.
//
// The workflow only ever creates Pending claims; status transitions happen
// in the insurer's back office.

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

// ClaimRecord is the claim filed from one validated damage estimate.
//
// Storage model (DynamoDB):
//   - PK: claim_id
//   - GSI1 (user_id-index): user_id
//
// PriceDetails keeps the aggregated part estimates serialized as JSON and
// TotalCost is stored as a string, exactly as aggregated; totals are never
// recomputed at commit time.
type ClaimRecord struct {
	ClaimID      string      `json:"claim_id"`
	UserID       string      `json:"user_id"`
	VehicleID    string      `json:"vehicle_id"`
	CarBrand     string      `json:"car_brand"`
	CarModel     string      `json:"car_model"`
	CarNumber    string      `json:"car_number"`
	PriceDetails string      `json:"price_details"`
	TotalCost    string      `json:"total_cost"`
	Status       ClaimStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// BuildClaimRecord assembles the record persisted by claim commit. The claim
// ID is generated by the caller before the persistence call so it is known
// even if the confirmation response is lost.
func BuildClaimRecord(claimID, userID string, vehicle VehicleRef, estimate DamageEstimate) (ClaimRecord, error) {
	details, err := json.Marshal(estimate.PartEstimates)
	if err != nil {
		return ClaimRecord{}, err
	}

	return ClaimRecord{
		ClaimID:      claimID,
		UserID:       userID,
		VehicleID:    vehicle.ID,
		CarBrand:     vehicle.Brand,
		CarModel:     vehicle.Model,
		CarNumber:    vehicle.PlateNumber,
		PriceDetails: string(details),
		TotalCost:    strconv.FormatFloat(estimate.TotalCost, 'f', -1, 64),
		Status:       ClaimStatusPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
