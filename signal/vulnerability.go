package signal

import (
	"context"
	"fmt"

	"github.com/rhels/imagegate/oci"
	"github.com/rhels/imagegate/scan"
)

// VulnerabilityEvaluator derives two results from a single scan: a
// binary critical sub-score and a binary high sub-score. Count magnitude
// is deliberately ignored; one critical finding scores the same as a
// thousand. Medium and low counts are carried for the report but never
// scored.
type VulnerabilityEvaluator struct {
	Scanner scan.Scanner
}

func NewVulnerabilityEvaluator(scanner scan.Scanner) *VulnerabilityEvaluator {
	return &VulnerabilityEvaluator{Scanner: scanner}
}

func (e *VulnerabilityEvaluator) Evaluate(ctx context.Context, ref oci.ImageReference) (critical, high Result, counts scan.Counts) {
	critical = Result{Criterion: CriterionVulnCritical, MaxPoints: MaxVulnCritical}
	high = Result{Criterion: CriterionVulnHigh, MaxPoints: MaxVulnHigh}

	result, err := e.Scanner.Scan(ctx, ref)
	if err != nil {
		// Unknown risk is neither zero risk nor full risk: the critical
		// sub-score takes explicit partial credit. The high sub-score
		// sees an empty result and yields full points; this asymmetry
		// is a documented product decision, do not unify silently.
		critical.Points = 10
		critical.Detail = fmt.Sprintf("scan unavailable, unknown risk scored as partial credit: %s", err)
		high.Points = MaxVulnHigh
		high.Detail = "no high-severity findings (scan unavailable, empty result)"
		return critical, high, scan.Counts{}
	}
	counts = *result

	if counts.Critical == 0 {
		critical.Points = MaxVulnCritical
		critical.Detail = "no critical vulnerabilities found"
	} else {
		critical.Detail = fmt.Sprintf("%d critical vulnerabilities found", counts.Critical)
	}
	if counts.High == 0 {
		high.Points = MaxVulnHigh
		high.Detail = "no high-severity vulnerabilities found"
	} else {
		high.Detail = fmt.Sprintf("%d high-severity vulnerabilities found", counts.High)
	}
	return critical, high, counts
}
