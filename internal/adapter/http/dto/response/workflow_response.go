package response

import (
	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
)

type MediaResponse struct {
	MimeType string `json:"mime_type"`
	Source   string `json:"source"`
}

func FromMedia(h entities.MediaHandle) MediaResponse {
	return MediaResponse{
		MimeType: h.MimeType,
		Source:   string(h.Source),
	}
}

// WorkflowResponse is the session view clients poll to render the current
// step. The staged file's local path never leaves the server.
type WorkflowResponse struct {
	State    string            `json:"state"`
	Vehicle  *VehicleResponse  `json:"vehicle,omitempty"`
	Media    *MediaResponse    `json:"media,omitempty"`
	Estimate *EstimateResponse `json:"estimate,omitempty"`
	Claim    *ClaimResponse    `json:"claim,omitempty"`
}

func FromSnapshot(s usecase.WorkflowSnapshot) WorkflowResponse {
	resp := WorkflowResponse{State: string(s.State)}
	if s.Vehicle.ID != "" {
		v := FromVehicle(s.Vehicle)
		resp.Vehicle = &v
	}
	if !s.Media.IsZero() {
		m := FromMedia(s.Media)
		resp.Media = &m
	}
	if s.Estimate != nil {
		e := FromEstimate(*s.Estimate)
		resp.Estimate = &e
	}
	if s.Claim != nil {
		c := FromClaim(*s.Claim)
		resp.Claim = &c
	}
	return resp
}
