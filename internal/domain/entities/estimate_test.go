package entities

import (
	"errors"
	"testing"
)

func TestAggregateEstimate_EmptyParts(t *testing.T) {
	_, err := AggregateEstimate("Processing complete!", BestFrame{})
	if !errors.Is(err, ErrEmptyEstimate) {
		t.Fatalf("expected ErrEmptyEstimate, got %v", err)
	}
}

func TestAggregateEstimate_Validation(t *testing.T) {
	cases := []struct {
		name string
		part PartPrice
		want error
	}{
		{name: "missing part name", part: PartPrice{Price: 10, Total: 10, RepairOrReplace: "repair"}, want: ErrMissingPartName},
		{name: "negative price", part: PartPrice{PartName: "Bumper", Price: -1, Total: 10, RepairOrReplace: "repair"}, want: ErrNegativePartPrice},
		{name: "negative total", part: PartPrice{PartName: "Bumper", Price: 10, Total: -10, RepairOrReplace: "replace"}, want: ErrNegativePartPrice},
		{name: "unknown action", part: PartPrice{PartName: "Bumper", Price: 10, Total: 10, RepairOrReplace: "paint"}, want: ErrInvalidPartAction},
		{name: "empty action", part: PartPrice{PartName: "Bumper", Price: 10, Total: 10}, want: ErrInvalidPartAction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AggregateEstimate("msg", BestFrame{PartPrices: []PartPrice{tc.part}})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAggregateEstimate_SumsLineTotals(t *testing.T) {
	frame := BestFrame{
		MaskedImage: []byte{0xff, 0xd8},
		Frame:       []byte{0xff, 0xd9},
		PartPrices: []PartPrice{
			{PartName: "Bumper", Price: 100, Total: 100, RepairOrReplace: "repair"},
			{PartName: "Door", Price: 250, Total: 500, RepairOrReplace: "replace"},
			{PartName: "Light", Price: 75.5, Total: 75.5, RepairOrReplace: "replace"},
		},
	}

	est, err := AggregateEstimate("Processing complete!", frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.TotalCost != 675.5 {
		t.Fatalf("expected total 675.5, got %v", est.TotalCost)
	}
	if len(est.PartEstimates) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(est.PartEstimates))
	}

	// Response order must survive aggregation.
	order := []string{"Bumper", "Door", "Light"}
	sum := 0.0
	for i, p := range est.PartEstimates {
		if p.PartName != order[i] {
			t.Fatalf("expected part %s at index %d, got %s", order[i], i, p.PartName)
		}
		sum += p.LineTotal
	}
	if sum != est.TotalCost {
		t.Fatalf("total %v does not equal sum of line totals %v", est.TotalCost, sum)
	}
	if est.Message != "Processing complete!" {
		t.Fatalf("unexpected message: %q", est.Message)
	}
	if len(est.MaskedImage) == 0 || len(est.Frame) == 0 {
		t.Fatalf("expected annotated images carried through")
	}
}

func TestAggregateEstimate_ActionMapping(t *testing.T) {
	frame := BestFrame{PartPrices: []PartPrice{
		{PartName: "Windshield", Price: 300, Total: 300, RepairOrReplace: "replace"},
	}}
	est, err := AggregateEstimate("msg", frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.PartEstimates[0].Action != PartActionReplace {
		t.Fatalf("expected replace action, got %s", est.PartEstimates[0].Action)
	}
}
