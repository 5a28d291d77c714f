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

package scan

import (
	"context"
	"errors"

	"github.com/rhels/imagegate/oci"
)

// ErrUnavailable marks the scan capability itself as absent or broken,
// as opposed to a scan that ran and found nothing.
var ErrUnavailable = errors.New("vulnerability scanner unavailable")

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Counts holds per-severity vulnerability totals from a single scan.
// The raw numbers are always carried into the report even though
// scoring reduces them to binaries.
type Counts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (c *Counts) Add(severity Severity, n int) {
	switch severity {
	case SeverityCritical:
		c.Critical += n
	case SeverityHigh:
		c.High += n
	case SeverityMedium:
		c.Medium += n
	case SeverityLow:
		c.Low += n
	}
}

// Scanner is the vulnerability-scan capability. A nil-error return means
// the scan ran; errors wrapping ErrUnavailable mean it could not.
type Scanner interface {
	Scan(ctx context.Context, ref oci.ImageReference) (*Counts, error)
}
