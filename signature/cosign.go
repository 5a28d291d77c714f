package signature

import (
	"context"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/rhels/imagegate/oci"
	"github.com/sigstore/cosign/v2/pkg/cosign"
	ociremote "github.com/sigstore/cosign/v2/pkg/oci/remote"
	"github.com/sigstore/sigstore/pkg/fulcioroots"
)

// ensure CosignVerifier implements Verifier.
var _ Verifier = &CosignVerifier{}

// CosignVerifier checks for any valid keyless signature on the image.
// The identity match is deliberately permissive: presence of a signature
// chained to the Fulcio roots is the signal, provenance of the signer is
// the vendor evaluator's job.
type CosignVerifier struct{}

func NewCosignVerifier() *CosignVerifier {
	return &CosignVerifier{}
}

func (v *CosignVerifier) Verify(ctx context.Context, ref oci.ImageReference) (Status, error) {
	subjectRef, err := name.ParseReference(ref.String())
	if err != nil {
		return StatusUnavailable, fmt.Errorf("failed to parse reference: %w", err)
	}
	roots, err := fulcioroots.Get()
	if err != nil {
		return StatusUnavailable, fmt.Errorf("failed to load fulcio roots: %w", err)
	}
	intermediates, err := fulcioroots.GetIntermediates()
	if err != nil {
		return StatusUnavailable, fmt.Errorf("failed to load fulcio intermediates: %w", err)
	}
	checkOpts := &cosign.CheckOpts{
		RegistryClientOpts: []ociremote.Option{
			ociremote.WithRemoteOptions(oci.MultiKeychainOption()),
		},
		RootCerts:         roots,
		IntermediateCerts: intermediates,
		Identities: []cosign.Identity{
			{IssuerRegExp: ".*", SubjectRegExp: ".*"},
		},
		// transparency-log and SCT checks are out of scope for a
		// presence signal
		IgnoreTlog: true,
		IgnoreSCT:  true,
	}
	signatures, _, err := cosign.VerifyImageSignatures(ctx, subjectRef, checkOpts)
	if err != nil {
		if ctx.Err() != nil {
			return StatusUnavailable, fmt.Errorf("signature check aborted: %w", ctx.Err())
		}
		return StatusUnverified, fmt.Errorf("no valid signature: %w", err)
	}
	if len(signatures) == 0 {
		return StatusUnverified, fmt.Errorf("image %s carries no signatures", ref)
	}
	return StatusVerified, nil
}
