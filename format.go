package imagegate

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"
)

// Process exit codes for each disposition. Automation branches on these,
// so they are part of the stable interface.
const (
	ExitApprove = 0
	ExitError   = 1
	ExitReview  = 2
	ExitReject  = 3
)

// ExitCode maps a decision to its process exit code.
func ExitCode(d Decision) int {
	switch d {
	case DecisionAutoApprove:
		return ExitApprove
	case DecisionNeedsReview:
		return ExitReview
	case DecisionAutoReject:
		return ExitReject
	}
	return ExitError
}

// WriteJSON renders the report as an indented JSON document with stable
// field names.
func (r *EvaluationReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

var reportTemplate = template.Must(template.New("report").Parse(`Image:     {{.Image}}
Evaluated: {{.Timestamp.Format "2006-01-02T15:04:05Z07:00"}}
{{- if .Metadata.Digest}}
Digest:    {{.Metadata.Digest}}
{{- end}}

{{range .Results}}  {{printf "%-24s" .Criterion}} {{printf "%3d" .Points}}/{{printf "%-3d" .MaxPoints}} {{.Detail}}
{{end}}
Vulnerabilities: {{.Vulnerabilities.Critical}} critical, {{.Vulnerabilities.High}} high, {{.Vulnerabilities.Medium}} medium, {{.Vulnerabilities.Low}} low
Score:           {{.TotalScore}}/{{.MaxScore}}
Decision:        {{.Decision}}
`))

// WriteTable renders the human-readable report.
func (r *EvaluationReport) WriteTable(w io.Writer) error {
	if err := reportTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
