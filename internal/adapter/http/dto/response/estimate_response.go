package response

import (
	"encoding/base64"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
)

type PartEstimateResponse struct {
	PartName  string  `json:"part"`
	UnitPrice float64 `json:"price"`
	LineTotal float64 `json:"total"`
	Action    string  `json:"repair_or_replace"`
}

// EstimateResponse renders a damage estimate. Images travel base64-encoded,
// the same shape the analysis service uses, so mobile clients can reuse
// their rendering path.
type EstimateResponse struct {
	Parts       []PartEstimateResponse `json:"part_estimates"`
	TotalCost   float64                `json:"total_cost"`
	Message     string                 `json:"message"`
	MaskedImage string                 `json:"masked_image,omitempty"`
	Frame       string                 `json:"frame,omitempty"`
}

func FromEstimate(e entities.DamageEstimate) EstimateResponse {
	parts := make([]PartEstimateResponse, 0, len(e.PartEstimates))
	for _, p := range e.PartEstimates {
		parts = append(parts, PartEstimateResponse{
			PartName:  p.PartName,
			UnitPrice: p.UnitPrice,
			LineTotal: p.LineTotal,
			Action:    string(p.Action),
		})
	}

	resp := EstimateResponse{
		Parts:     parts,
		TotalCost: e.TotalCost,
		Message:   e.Message,
	}
	if len(e.MaskedImage) > 0 {
		resp.MaskedImage = base64.StdEncoding.EncodeToString(e.MaskedImage)
	}
	if len(e.Frame) > 0 {
		resp.Frame = base64.StdEncoding.EncodeToString(e.Frame)
	}
	return resp
}
