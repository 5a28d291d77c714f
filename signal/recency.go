package signal

import (
	"context"
	"fmt"
	"time"

	"github.com/rhels/imagegate/oci"
)

// RecencyEvaluator scores how recently the image was published. The
// inspection capability also yields the registry metadata recorded in
// the report, so the details are returned alongside the result.
type RecencyEvaluator struct {
	Inspector   oci.Inspector
	WindowDays  int
	StaleDays   int
	timeSourceF func() time.Time // injectable clock for tests
}

func NewRecencyEvaluator(inspector oci.Inspector, windowDays, staleDays int) *RecencyEvaluator {
	return &RecencyEvaluator{
		Inspector:  inspector,
		WindowDays: windowDays,
		StaleDays:  staleDays,
	}
}

func (e *RecencyEvaluator) now() time.Time {
	if e.timeSourceF != nil {
		return e.timeSourceF()
	}
	return time.Now()
}

func (e *RecencyEvaluator) Evaluate(ctx context.Context, ref oci.ImageReference) (Result, *oci.ImageDetails) {
	result := Result{Criterion: CriterionRecency, MaxPoints: MaxRecency}
	details, err := e.Inspector.Inspect(ctx, ref)
	if err != nil {
		result.Detail = fmt.Sprintf("image inspection unavailable: %s", err)
		return result, nil
	}
	if details.Created == nil {
		result.Detail = "registry reports no publish timestamp"
		return result, details
	}
	// whole days, strict thresholds
	ageDays := int(e.now().UTC().Sub(details.Created.UTC()).Hours() / 24)
	switch {
	case ageDays <= e.WindowDays:
		result.Points = MaxRecency
		result.Detail = fmt.Sprintf("published %d days ago, within the %d-day window", ageDays, e.WindowDays)
	case ageDays <= e.StaleDays:
		result.Points = 5
		result.Detail = fmt.Sprintf("published %d days ago, older than the %d-day window", ageDays, e.WindowDays)
	default:
		result.Detail = fmt.Sprintf("published %d days ago, stale (over %d days)", ageDays, e.StaleDays)
	}
	return result, details
}
