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

// Package adoption scores community adoption of an image. Every public
// registry exposes different adoption signals, so scoring is a strategy
// per registry host; unrecognized hosts fall through to a conservative
// default. New registries are supported by registering a new Source,
// never by editing an existing one.
package adoption

import (
	"context"
	"fmt"

	"github.com/rhels/imagegate/oci"
)

// MaxPoints is the adoption criterion ceiling shared by all sources.
const MaxPoints = 15

// Source computes the adoption sub-score for one registry family.
// Sources degrade instead of failing: an unreachable API maps to the
// family's documented fallback points.
type Source interface {
	Evaluate(ctx context.Context, ref oci.ImageReference) (points int, detail string)
}

// Registry maps registry hosts to their adoption source, with an
// explicit default for hosts nothing claims.
type Registry struct {
	sources  map[string]Source
	fallback Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources:  map[string]Source{},
		fallback: &unknownSource{},
	}
}

func (r *Registry) Register(host string, source Source) {
	r.sources[host] = source
}

func (r *Registry) Lookup(host string) Source {
	if source, ok := r.sources[host]; ok {
		return source
	}
	return r.fallback
}

// Default wires the built-in sources: Docker Hub, Quay, GHCR packages,
// plus a flat-credit source for each curated host.
func Default(curated []string) *Registry {
	r := NewRegistry()
	r.Register("docker.io", NewHubSource())
	r.Register("quay.io", NewQuaySource())
	r.Register("ghcr.io", NewPackagesSource())
	for _, host := range curated {
		r.Register(host, CuratedSource{})
	}
	return r
}

// CuratedSource presumes adoption verified by the registry's own
// curation process.
type CuratedSource struct{}

func (CuratedSource) Evaluate(_ context.Context, ref oci.ImageReference) (int, string) {
	return MaxPoints, fmt.Sprintf("registry %s is curated, adoption presumed verified", ref.Registry)
}

// unknownSource has no heuristic, so no partial credit either.
type unknownSource struct{}

func (unknownSource) Evaluate(_ context.Context, ref oci.ImageReference) (int, string) {
	return 0, fmt.Sprintf("no adoption data source for registry %s", ref.Registry)
}
