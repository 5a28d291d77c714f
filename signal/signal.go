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

// Package signal holds the independent trust-signal evaluators. Each
// evaluator normalizes one partially-reliable signal into a bounded
// point value with a human-readable justification; none of them fails,
// an unavailable signal source degrades to its documented fallback
// score instead.
package signal

// Criterion identifies a scored trust signal.
type Criterion string

const (
	CriterionVendor       Criterion = "vendor"
	CriterionRecency      Criterion = "recency"
	CriterionAdoption     Criterion = "adoption"
	CriterionVulnCritical Criterion = "vulnerability-critical"
	CriterionVulnHigh     Criterion = "vulnerability-high"
	CriterionSignature    Criterion = "signature"
)

// Maximum points per criterion. The six ceilings sum to 100.
const (
	MaxVendor       = 30
	MaxRecency      = 15
	MaxAdoption     = 15
	MaxVulnCritical = 20
	MaxVulnHigh     = 10
	MaxSignature    = 10
)

// Criteria returns all criteria in declaration order, which is also the
// fixed ordering of results in a report.
func Criteria() []Criterion {
	return []Criterion{
		CriterionVendor,
		CriterionRecency,
		CriterionAdoption,
		CriterionVulnCritical,
		CriterionVulnHigh,
		CriterionSignature,
	}
}

// Result is the immutable outcome of one evaluator for one criterion.
// Invariant: 0 <= Points <= MaxPoints.
type Result struct {
	Criterion Criterion `json:"criterion"`
	Points    int       `json:"points"`
	MaxPoints int       `json:"max_points"`
	Detail    string    `json:"detail"`
}
