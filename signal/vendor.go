package signal

import (
	"fmt"

	"github.com/rhels/imagegate/oci"
)

// VendorEvaluator checks image provenance against the configured trust
// sets. Matching is exact string comparison only: no globs, no prefixes,
// no case folding.
type VendorEvaluator struct {
	trustedRegistries map[string]struct{}
	trustedNamespaces map[string]struct{}
}

func NewVendorEvaluator(registries, namespaces []string) *VendorEvaluator {
	e := &VendorEvaluator{
		trustedRegistries: make(map[string]struct{}, len(registries)),
		trustedNamespaces: make(map[string]struct{}, len(namespaces)),
	}
	for _, host := range registries {
		e.trustedRegistries[host] = struct{}{}
	}
	for _, ns := range namespaces {
		e.trustedNamespaces[ns] = struct{}{}
	}
	return e
}

// Evaluate returns the vendor result and whether the vendor is known.
// The flag feeds the aggregator's guardrail: an unknown vendor can never
// auto-approve regardless of total score. Registry-level trust
// supersedes the namespace check.
func (e *VendorEvaluator) Evaluate(ref oci.ImageReference) (Result, bool) {
	result := Result{Criterion: CriterionVendor, MaxPoints: MaxVendor}
	if _, ok := e.trustedRegistries[ref.Registry]; ok {
		result.Points = MaxVendor
		result.Detail = fmt.Sprintf("registry %s is a trusted vendor registry", ref.Registry)
		return result, true
	}
	if _, ok := e.trustedNamespaces[ref.Namespace]; ok {
		result.Points = MaxVendor
		result.Detail = fmt.Sprintf("namespace %s is a trusted vendor namespace", ref.Namespace)
		return result, true
	}
	result.Detail = fmt.Sprintf("vendor for %s/%s is not in the trusted registry or namespace sets", ref.Registry, ref.Path())
	return result, false
}
