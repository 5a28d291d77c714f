package imagegate

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rhels/imagegate/adoption"
	"github.com/rhels/imagegate/config"
	"github.com/rhels/imagegate/oci"
	"github.com/rhels/imagegate/scan"
	"github.com/rhels/imagegate/signal"
	"github.com/rhels/imagegate/signature"
)

// ErrNoImage is the only fatal input error: without an image reference
// there is nothing to evaluate and no report is produced.
var ErrNoImage = errors.New("no image reference provided")

// Options overrides the external capabilities, mainly for tests. Nil
// fields get the production implementations.
type Options struct {
	Inspector       oci.Inspector
	Scanner         scan.Scanner
	Verifier        signature.Verifier
	AdoptionSources *adoption.Registry
}

// ImageEvaluator gathers the five trust signals for one image, sums them
// under the vendor guardrail and classifies the result. It is safe for
// concurrent use; each Evaluate call is an independent single-pass run.
type ImageEvaluator struct {
	cfg config.Config

	vendor        *signal.VendorEvaluator
	recency       *signal.RecencyEvaluator
	adoption      *signal.AdoptionEvaluator
	vulnerability *signal.VulnerabilityEvaluator
	signature     *signal.SignatureEvaluator
}

func NewImageEvaluator(cfg config.Config, opts *Options) *ImageEvaluator {
	if opts == nil {
		opts = &Options{}
	}
	inspector := opts.Inspector
	if inspector == nil {
		inspector = oci.NewRegistryInspector()
	}
	scanner := opts.Scanner
	if scanner == nil {
		scanner = scan.NewTrivyScanner()
	}
	verifier := opts.Verifier
	if verifier == nil {
		verifier = signature.NewCosignVerifier()
	}
	sources := opts.AdoptionSources
	if sources == nil {
		sources = adoption.Default(cfg.CuratedRegistries)
	}
	return &ImageEvaluator{
		cfg:           cfg,
		vendor:        signal.NewVendorEvaluator(cfg.TrustedRegistries, cfg.TrustedNamespaces),
		recency:       signal.NewRecencyEvaluator(inspector, cfg.RecencyWindowDays, cfg.StaleWindowDays),
		adoption:      signal.NewAdoptionEvaluator(sources),
		vulnerability: signal.NewVulnerabilityEvaluator(scanner),
		signature:     signal.NewSignatureEvaluator(verifier),
	}
}

// Evaluate runs a full single-image evaluation. Signal evaluators run
// concurrently, each under its own timeout, and are joined before any
// aggregation; a cancelled context aborts the run without a partial
// report. Signal-source failures never surface as errors here, they
// degrade inside the evaluators.
func (e *ImageEvaluator) Evaluate(ctx context.Context, image string) (*EvaluationReport, error) {
	if strings.TrimSpace(image) == "" {
		return nil, ErrNoImage
	}
	ref := oci.ParseReference(image)
	logger := log.WithField("image", ref.String())
	logger.Debug("starting evaluation")

	// vendor trust is pure configuration lookup, no capability involved
	vendorResult, vendorKnown := e.vendor.Evaluate(ref)

	var (
		recencyResult  signal.Result
		details        *oci.ImageDetails
		adoptionResult signal.Result
		criticalResult signal.Result
		highResult     signal.Result
		counts         scan.Counts
		sigResult      signal.Result
	)

	g, gctx := errgroup.WithContext(ctx)
	run := func(name string, f func(sctx context.Context)) {
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, e.cfg.SignalTimeout())
			defer cancel()
			f(sctx)
			logger.WithField("signal", name).Debug("signal evaluated")
			return nil
		})
	}
	run("recency", func(sctx context.Context) {
		recencyResult, details = e.recency.Evaluate(sctx, ref)
	})
	run("adoption", func(sctx context.Context) {
		adoptionResult = e.adoption.Evaluate(sctx, ref)
	})
	run("vulnerability", func(sctx context.Context) {
		criticalResult, highResult, counts = e.vulnerability.Evaluate(sctx, ref)
	})
	run("signature", func(sctx context.Context) {
		sigResult = e.signature.Evaluate(sctx, ref)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// join barrier: a cancelled run must never surface a partial report
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := []signal.Result{
		vendorResult,
		recencyResult,
		adoptionResult,
		criticalResult,
		highResult,
		sigResult,
	}
	total := 0
	for _, r := range results {
		total += r.Points
	}
	decision := Decide(total, vendorKnown, Thresholds{
		Approve: e.cfg.ApproveThreshold,
		Review:  e.cfg.ReviewThreshold,
	})

	report := &EvaluationReport{
		Image:           ref,
		Timestamp:       time.Now().UTC(),
		Results:         results,
		TotalScore:      total,
		MaxScore:        MaxScore,
		Decision:        decision,
		Vulnerabilities: counts,
		Metadata:        ImageMetadata{PURL: ref.PURL()},
	}
	if details != nil {
		report.Metadata.Created = details.Created
		report.Metadata.SizeMB = details.SizeMB
		report.Metadata.Layers = details.Layers
		report.Metadata.Digest = details.Digest
	}
	logger.WithFields(log.Fields{
		"total":    total,
		"decision": decision,
	}).Info("evaluation complete")
	return report, nil
}

// Evaluate is the package-level convenience entry point.
func Evaluate(ctx context.Context, image string, cfg config.Config) (*EvaluationReport, error) {
	return NewImageEvaluator(cfg, nil).Evaluate(ctx, image)
}
