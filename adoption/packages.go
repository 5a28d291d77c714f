package adoption

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rhels/imagegate/oci"
)

const defaultPackagesAPI = "https://api.github.com"

type packageVersion struct {
	ID int64 `json:"id"`
}

// PackagesSource scores forge-hosted registries (ghcr.io) by published
// version count. The forge exposes no pull numbers, so version cadence
// stands in for adoption; the floor is 5 like other known registries.
type PackagesSource struct {
	BaseURL string
	Client  *http.Client
}

func NewPackagesSource() *PackagesSource {
	return &PackagesSource{BaseURL: defaultPackagesAPI, Client: oci.HTTPClient()}
}

func (s *PackagesSource) Evaluate(ctx context.Context, ref oci.ImageReference) (int, string) {
	url := fmt.Sprintf("%s/users/%s/packages/container/%s/versions?per_page=100", s.BaseURL, ref.Namespace, ref.Repository)
	var versions []packageVersion
	if err := getJSON(ctx, s.Client, url, &versions); err != nil {
		return 5, fmt.Sprintf("packages API unreachable, partial credit: %s", err)
	}
	count := len(versions)
	switch {
	case count >= 50:
		return 15, fmt.Sprintf("%d published versions, active", count)
	case count >= 10:
		return 10, fmt.Sprintf("%d published versions, maintained", count)
	}
	return 5, fmt.Sprintf("%d published versions, limited history", count)
}
