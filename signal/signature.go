package signal

import (
	"context"
	"fmt"

	"github.com/rhels/imagegate/oci"
	"github.com/rhels/imagegate/signature"
)

// SignatureEvaluator scores cryptographic signature presence. Binary:
// only a verified signature earns points, and an unavailable verifier is
// treated as unsigned.
type SignatureEvaluator struct {
	Verifier signature.Verifier
}

func NewSignatureEvaluator(verifier signature.Verifier) *SignatureEvaluator {
	return &SignatureEvaluator{Verifier: verifier}
}

func (e *SignatureEvaluator) Evaluate(ctx context.Context, ref oci.ImageReference) Result {
	result := Result{Criterion: CriterionSignature, MaxPoints: MaxSignature}
	status, err := e.Verifier.Verify(ctx, ref)
	switch status {
	case signature.StatusVerified:
		result.Points = MaxSignature
		result.Detail = "image signature verified"
	case signature.StatusUnavailable:
		result.Detail = "signature verification unavailable, treated as unsigned"
		if err != nil {
			result.Detail = fmt.Sprintf("signature verification unavailable, treated as unsigned: %s", err)
		}
	default:
		result.Detail = "no valid signature found"
		if err != nil {
			result.Detail = fmt.Sprintf("no valid signature found: %s", err)
		}
	}
	return result
}
