package entities

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyEstimate     = errors.New("estimate has no part prices")
	ErrNegativePartPrice = errors.New("negative part price")
	ErrInvalidPartAction = errors.New("invalid repair_or_replace action")
	ErrMissingPartName   = errors.New("missing part name")
)

// PartAction is the recovery action the analysis service recommends for a
// damaged part.

type PartAction string

const (
	PartActionRepair  PartAction = "repair"
	PartActionReplace PartAction = "replace"
)

// PartPrice is one entry of the analysis service's part_prices object, in
// response order.
type PartPrice struct {
	PartName        string  `json:"part"`
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
	RepairOrReplace string  `json:"repair_or_replace"`
}

// BestFrame is the damage detection payload for the frame with the most
// detected parts. MaskedImage and Frame are opaque JPEG bytes kept for
// rendering only.
type BestFrame struct {
	MaskedImage []byte      `json:"masked_image"`
	Frame       []byte      `json:"frame"`
	PartPrices  []PartPrice `json:"part_prices"`
}

// AnalysisResult is the full analysis service response. A nil BestFrame means
// no damage was detected, which is a valid outcome distinct from failure.
type AnalysisResult struct {
	Message   string     `json:"message"`
	BestFrame *BestFrame `json:"best_frame,omitempty"`
}

// PartEstimate is a validated per-part line of a DamageEstimate.
type PartEstimate struct {
	PartName  string     `json:"part"`
	UnitPrice float64    `json:"price"`
	LineTotal float64    `json:"total"`
	Action    PartAction `json:"repair_or_replace"`
}

// DamageEstimate is the immutable repair-cost estimate produced from one
// successful analysis submission. It is never mutated; a re-upload supersedes
// it with a new one.
type DamageEstimate struct {
	PartEstimates []PartEstimate `json:"part_estimates"`
	MaskedImage   []byte         `json:"-"`
	Frame         []byte         `json:"-"`
	TotalCost     float64        `json:"total_cost"`
	Message       string         `json:"message"`
}

// AggregateEstimate builds a DamageEstimate from a best frame. Pure function:
// it validates every part line and sums the line totals; it never recomputes
// a line total from price and count. An empty part_prices object is not a
// valid basis for a claim.
func AggregateEstimate(message string, frame BestFrame) (DamageEstimate, error) {
	if len(frame.PartPrices) == 0 {
		return DamageEstimate{}, ErrEmptyEstimate
	}

	parts := make([]PartEstimate, 0, len(frame.PartPrices))
	total := 0.0
	for _, p := range frame.PartPrices {
		if p.PartName == "" {
			return DamageEstimate{}, ErrMissingPartName
		}
		if p.Price < 0 || p.Total < 0 {
			return DamageEstimate{}, fmt.Errorf("%w: part %s", ErrNegativePartPrice, p.PartName)
		}
		action := PartAction(p.RepairOrReplace)
		if action != PartActionRepair && action != PartActionReplace {
			return DamageEstimate{}, fmt.Errorf("%w: part %s action %q", ErrInvalidPartAction, p.PartName, p.RepairOrReplace)
		}
		parts = append(parts, PartEstimate{
			PartName:  p.PartName,
			UnitPrice: p.Price,
			LineTotal: p.Total,
			Action:    action,
		})
		total += p.Total
	}

	return DamageEstimate{
		PartEstimates: parts,
		MaskedImage:   frame.MaskedImage,
		Frame:         frame.Frame,
		TotalCost:     total,
		Message:       message,
	}, nil
}
