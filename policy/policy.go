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

// Package policy renders the downstream admission-policy document from
// the approved allowlist. The document is pure templating over the
// allowlist contents; enforcement is the admission controller's job.
package policy

import (
	"fmt"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/rhels/imagegate/allowlist"
)

const (
	APIVersion = "policy.rhels.io/v1"
	Kind       = "ImageAllowlistPolicy"

	Filename = "image-allowlist-policy.yaml"
)

type Document struct {
	APIVersion string   `json:"apiVersion"`
	Kind       string   `json:"kind"`
	Metadata   Metadata `json:"metadata"`
	Spec       Spec     `json:"spec"`
}

type Metadata struct {
	Name        string            `json:"name"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

type Spec struct {
	// Action is always enforce; the admission controller decides what
	// enforcement means.
	Action string `json:"action"`
	// AllowedImages are the exact references admitted so far, sorted.
	AllowedImages []string `json:"allowedImages"`
}

// Build assembles the policy document for the given allowlist.
func Build(name string, list *allowlist.List, generatedAt time.Time) *Document {
	return &Document{
		APIVersion: APIVersion,
		Kind:       Kind,
		Metadata: Metadata{
			Name: name,
			Annotations: map[string]string{
				"policy.rhels.io/generated-at": generatedAt.UTC().Format(time.RFC3339),
				"policy.rhels.io/generated-by": "imagegate",
			},
		},
		Spec: Spec{
			Action:        "enforce",
			AllowedImages: list.Entries(),
		},
	}
}

// Render serializes the document as YAML with stable field names.
func (d *Document) Render() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy document: %w", err)
	}
	return data, nil
}
