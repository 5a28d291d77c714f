/*
   Copyright imagegate authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package imagegate

import (
	"time"

	"github.com/rhels/imagegate/oci"
	"github.com/rhels/imagegate/scan"
	"github.com/rhels/imagegate/signal"
)

// Decision is the disposition recommended for an image. It is advisory:
// enforcement happens downstream in the admission controller fed by the
// generated policy document.
type Decision string

const (
	DecisionAutoApprove Decision = "auto-approve"
	DecisionNeedsReview Decision = "needs-human-review"
	DecisionAutoReject  Decision = "auto-reject"
)

// MaxScore is the fixed ceiling of the aggregate trust score.
const MaxScore = 100

// Thresholds are the score boundaries of the decision function.
type Thresholds struct {
	Approve int
	Review  int
}

// Decide maps a total score and the vendor-known flag to a disposition.
// Pure and deterministic: identical inputs always yield the identical
// decision. An unknown vendor is capped at needs-human-review no matter
// how well the other five signals scored; provenance cannot be bought
// with good CVE, adoption or signature numbers.
func Decide(totalScore int, vendorKnown bool, t Thresholds) Decision {
	switch {
	case totalScore >= t.Approve:
		if !vendorKnown {
			return DecisionNeedsReview
		}
		return DecisionAutoApprove
	case totalScore >= t.Review:
		return DecisionNeedsReview
	default:
		return DecisionAutoReject
	}
}

// ImageMetadata is registry-side metadata recorded for observability.
// Fields the registry did not supply are omitted.
type ImageMetadata struct {
	Created *time.Time `json:"created,omitempty"`
	SizeMB  float64    `json:"size_mb,omitempty"`
	Layers  int        `json:"layers,omitempty"`
	Digest  string     `json:"digest,omitempty"`
	PURL    string     `json:"purl,omitempty"`
}

// EvaluationReport is the complete outcome of a single-image evaluation.
// It is constructed once, after all evaluators have joined, and never
// mutated. TotalScore is always the exact sum of the recorded result
// points. Field names are stable: automation parses this document.
type EvaluationReport struct {
	Image           oci.ImageReference `json:"image"`
	Timestamp       time.Time          `json:"timestamp"`
	Results         []signal.Result    `json:"results"`
	TotalScore      int                `json:"total_score"`
	MaxScore        int                `json:"max_score"`
	Decision        Decision           `json:"decision"`
	Vulnerabilities scan.Counts        `json:"raw_vulnerability_counts"`
	Metadata        ImageMetadata      `json:"image_metadata"`
}
