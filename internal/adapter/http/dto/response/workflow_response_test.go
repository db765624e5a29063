package response

import (
	"encoding/base64"
	"testing"

	"github.com/vamshikrishnasingam/ClaimSwift/internal/domain/entities"
	"github.com/vamshikrishnasingam/ClaimSwift/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	est := entities.DamageEstimate{
		PartEstimates: []entities.PartEstimate{
			{PartName: "Hood", UnitPrice: 40, LineTotal: 40, Action: entities.PartActionRepair},
			{PartName: "Front Bumper", UnitPrice: 60, LineTotal: 60, Action: entities.PartActionReplace},
		},
		MaskedImage: []byte("masked"),
		Frame:       []byte("frame"),
		TotalCost:   100,
		Message:     "Damage detected",
	}

	resp := FromEstimate(est)
	if len(resp.Parts) != 2 || resp.Parts[0].PartName != "Hood" || resp.Parts[1].Action != "replace" {
		t.Fatalf("unexpected parts: %+v", resp.Parts)
	}
	if resp.TotalCost != 100 {
		t.Fatalf("unexpected total: %v", resp.TotalCost)
	}
	if resp.MaskedImage != base64.StdEncoding.EncodeToString([]byte("masked")) {
		t.Fatalf("masked image not base64 encoded")
	}
}

func TestFromSnapshot(t *testing.T) {
	t.Run("idle session has only state", func(t *testing.T) {
		resp := FromSnapshot(usecase.WorkflowSnapshot{State: usecase.StateIdle})
		if resp.State != "Idle" {
			t.Fatalf("unexpected state: %s", resp.State)
		}
		if resp.Vehicle != nil || resp.Media != nil || resp.Estimate != nil || resp.Claim != nil {
			t.Fatalf("expected empty optional fields: %+v", resp)
		}
	})

	t.Run("full session", func(t *testing.T) {
		est := entities.DamageEstimate{TotalCost: 100}
		claim := entities.ClaimRecord{ClaimID: "claim-1"}
		resp := FromSnapshot(usecase.WorkflowSnapshot{
			State:    usecase.StateCompleted,
			Vehicle:  entities.VehicleRef{ID: "veh-1"},
			Media:    entities.MediaHandle{LocalURI: "/tmp/v.mp4", MimeType: "video/mp4", Source: entities.MediaSourceCamera},
			Estimate: &est,
			Claim:    &claim,
		})
		if resp.State != "Completed" {
			t.Fatalf("unexpected state: %s", resp.State)
		}
		if resp.Vehicle == nil || resp.Vehicle.ID != "veh-1" {
			t.Fatalf("unexpected vehicle: %+v", resp.Vehicle)
		}
		if resp.Media == nil || resp.Media.MimeType != "video/mp4" {
			t.Fatalf("unexpected media: %+v", resp.Media)
		}
		if resp.Estimate == nil || resp.Estimate.TotalCost != 100 {
			t.Fatalf("unexpected estimate: %+v", resp.Estimate)
		}
		if resp.Claim == nil || resp.Claim.ClaimID != "claim-1" {
			t.Fatalf("unexpected claim: %+v", resp.Claim)
		}
	})
}
