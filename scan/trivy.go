package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/rhels/imagegate/oci"
)

// trivyReport is the subset of the Trivy JSON schema we consume.
type trivyReport struct {
	SchemaVersion int           `json:",omitempty"`
	ArtifactName  string        `json:",omitempty"`
	Results       []trivyResult `json:",omitempty"`
}

type trivyResult struct {
	Target          string               `json:",omitempty"`
	Class           string               `json:",omitempty"`
	Vulnerabilities []trivyVulnerability `json:",omitempty"`
}

type trivyVulnerability struct {
	VulnerabilityID string `json:",omitempty"`
	PkgID           string `json:",omitempty"`
	Severity        string `json:",omitempty"`
}

// TrivyScanner invokes the trivy CLI against a remote image. The binary
// is looked up lazily so a missing tool degrades to ErrUnavailable
// instead of failing the evaluation.
type TrivyScanner struct {
	// Binary overrides the trivy executable name, mainly for tests.
	Binary string
}

func NewTrivyScanner() *TrivyScanner {
	return &TrivyScanner{Binary: "trivy"}
}

func (s *TrivyScanner) Scan(ctx context.Context, ref oci.ImageReference) (*Counts, error) {
	binary := s.Binary
	if binary == "" {
		binary = "trivy"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrUnavailable, binary)
	}

	cmd := exec.CommandContext(ctx, binary, "image",
		"--format", "json",
		"--quiet",
		"--no-progress",
		ref.String(),
	)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("%w: trivy failed: %s", ErrUnavailable, err)
	}
	return parseTrivyReport(stdout.Bytes())
}

func parseTrivyReport(data []byte) (*Counts, error) {
	report := &trivyReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal trivy report: %s", ErrUnavailable, err)
	}
	counts := &Counts{}
	for _, result := range report.Results {
		for _, vuln := range result.Vulnerabilities {
			counts.Add(Severity(vuln.Severity), 1)
		}
	}
	return counts, nil
}
