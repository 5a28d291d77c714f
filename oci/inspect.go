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
	"context"
	"fmt"
	"time"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// ImageDetails holds the registry-side metadata used by the recency
// signal and recorded in the evaluation report. Fields the registry did
// not supply are left at their zero values.
type ImageDetails struct {
	Created *time.Time
	Digest  string
	Layers  int
	SizeMB  float64
}

// Inspector is the image-inspection capability. Implementations must
// respect the context deadline; callers treat any error as the
// capability being unavailable.
type Inspector interface {
	Inspect(ctx context.Context, ref ImageReference) (*ImageDetails, error)
}

// ensure RegistryInspector implements Inspector.
var _ Inspector = &RegistryInspector{}

// RegistryInspector resolves image metadata directly from the registry.
type RegistryInspector struct{}

func NewRegistryInspector() *RegistryInspector {
	return &RegistryInspector{}
}

func (i *RegistryInspector) Inspect(ctx context.Context, ref ImageReference) (*ImageDetails, error) {
	subjectRef, err := name.ParseReference(ref.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference: %w", err)
	}
	options := []remote.Option{MultiKeychainOption(), remote.WithTransport(HTTPTransport()), remote.WithContext(ctx)}
	desc, err := remote.Get(subjectRef, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to get image manifest: %w", err)
	}
	// remote picks a platform-appropriate child when the descriptor is an index
	image, err := desc.Image()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image from %s descriptor: %w", desc.MediaType, err)
	}
	digest, err := image.Digest()
	if err != nil {
		return nil, fmt.Errorf("failed to get image digest: %w", err)
	}
	details := &ImageDetails{Digest: digest.String()}

	manifest, err := image.Manifest()
	if err != nil {
		return nil, fmt.Errorf("failed to get image manifest: %w", err)
	}
	details.Layers = len(manifest.Layers)
	var size int64
	for _, layer := range manifest.Layers {
		size += layer.Size
	}
	details.SizeMB = float64(size) / (1024 * 1024)

	if !isImageConfig(string(manifest.Config.MediaType)) {
		// artifact with a non-image config (e.g. a chart); created stays unknown
		return details, nil
	}
	config, err := image.ConfigFile()
	if err != nil {
		return details, nil
	}
	if !config.Created.IsZero() {
		created := config.Created.Time
		details.Created = &created
	}
	return details, nil
}

func isImageConfig(mediaType string) bool {
	return mediaType == ocispec.MediaTypeImageConfig ||
		mediaType == "application/vnd.docker.container.image.v1+json"
}
