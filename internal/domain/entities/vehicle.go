package entities

import "time"

// VehicleRef is a registered vehicle persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// The claim workflow only looks vehicles up by (owner, plate); records are
// created by vehicle registration and never mutated by the workflow.

type VehicleRef struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	PlateNumber  string    `json:"plate_number"`
	RegisteredAt time.Time `json:"registered_at"`
}
