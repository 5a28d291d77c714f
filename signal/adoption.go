package signal

import (
	"context"

	"github.com/rhels/imagegate/adoption"
	"github.com/rhels/imagegate/oci"
)

// AdoptionEvaluator delegates to the per-registry adoption source table.
type AdoptionEvaluator struct {
	Sources *adoption.Registry
}

func NewAdoptionEvaluator(sources *adoption.Registry) *AdoptionEvaluator {
	return &AdoptionEvaluator{Sources: sources}
}

func (e *AdoptionEvaluator) Evaluate(ctx context.Context, ref oci.ImageReference) Result {
	points, detail := e.Sources.Lookup(ref.Registry).Evaluate(ctx, ref)
	return Result{
		Criterion: CriterionAdoption,
		Points:    points,
		MaxPoints: MaxAdoption,
		Detail:    detail,
	}
}
