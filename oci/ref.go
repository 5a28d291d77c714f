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

package oci

import (
	"strings"

	"github.com/distribution/reference"
	"github.com/package-url/packageurl-go"
)

// DefaultRegistry is the host assumed for references that carry no
// explicit registry component.
const DefaultRegistry = "docker.io"

const defaultTag = "latest"

// ImageReference is the decomposed form of an image reference string.
// It is constructed once per evaluation and never mutated.
type ImageReference struct {
	Registry   string `json:"registry"`
	Namespace  string `json:"namespace"`
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
}

// ParseReference decomposes an image reference into registry, namespace,
// repository and tag. It never fails: strings that normalization rejects
// are split best-effort, with missing fields left empty so downstream
// signal evaluators treat them as unknown.
func ParseReference(image string) ImageReference {
	image = strings.TrimSpace(image)
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return splitReference(image)
	}
	named = reference.TagNameOnly(named)

	ref := ImageReference{
		Registry: reference.Domain(named),
		Tag:      defaultTag,
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	path := reference.Path(named)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		ref.Namespace = path[:i]
		ref.Repository = path[i+1:]
	} else {
		ref.Repository = path
	}
	return ref
}

// splitReference is the fallback for strings the distribution parser
// rejects (uppercase, stray separators). Missing fields stay empty.
func splitReference(image string) ImageReference {
	ref := ImageReference{Registry: DefaultRegistry, Tag: defaultTag}
	if image == "" {
		return ref
	}
	if i := strings.LastIndex(image, ":"); i >= 0 && !strings.Contains(image[i+1:], "/") {
		if i+1 < len(image) {
			ref.Tag = image[i+1:]
		}
		image = image[:i]
	}
	parts := strings.Split(image, "/")
	if len(parts) > 1 && (strings.Contains(parts[0], ".") || parts[0] == "localhost") {
		ref.Registry = parts[0]
		parts = parts[1:]
	}
	ref.Repository = parts[len(parts)-1]
	if len(parts) > 1 {
		ref.Namespace = strings.Join(parts[:len(parts)-1], "/")
	}
	return ref
}

// Path returns the repository path within the registry, without the
// registry host or tag.
func (r ImageReference) Path() string {
	if r.Namespace == "" {
		return r.Repository
	}
	return r.Namespace + "/" + r.Repository
}

// String reassembles the reference in registry/namespace/repository:tag
// form, omitting empty components.
func (r ImageReference) String() string {
	var b strings.Builder
	if r.Registry != "" {
		b.WriteString(r.Registry)
		b.WriteString("/")
	}
	b.WriteString(r.Path())
	if r.Tag != "" {
		b.WriteString(":")
		b.WriteString(r.Tag)
	}
	return b.String()
}

// PURL renders the reference as a package-url for report metadata.
func (r ImageReference) PURL() string {
	var qualifiers []packageurl.Qualifier
	if r.Registry != "" && r.Registry != DefaultRegistry {
		qualifiers = append(qualifiers, packageurl.Qualifier{
			Key:   "repository_url",
			Value: r.Registry,
		})
	}
	p := packageurl.NewPackageURL(packageurl.TypeDocker, r.Namespace, r.Repository, r.Tag, qualifiers, "")
	return p.ToString()
}
