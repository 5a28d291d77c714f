package adoption

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rhels/imagegate/oci"
)

const defaultQuayAPI = "https://quay.io/api/v1"

type quayRepository struct {
	StarCount int                    `json:"star_count"`
	Tags      map[string]interface{} `json:"tags"`
}

// QuaySource scores quay.io images by stars and tag activity. Absence of
// data here is limited-but-not-disqualifying, so the floor (and the
// unreachable fallback) is 5 rather than the hub's 0.
type QuaySource struct {
	BaseURL string
	Client  *http.Client
}

func NewQuaySource() *QuaySource {
	return &QuaySource{BaseURL: defaultQuayAPI, Client: oci.HTTPClient()}
}

func (s *QuaySource) Evaluate(ctx context.Context, ref oci.ImageReference) (int, string) {
	url := fmt.Sprintf("%s/repository/%s?includeTags=true", s.BaseURL, ref.Path())
	repo := &quayRepository{}
	if err := getJSON(ctx, s.Client, url, repo); err != nil {
		return 5, fmt.Sprintf("quay API unreachable, partial credit: %s", err)
	}
	tagCount := len(repo.Tags)
	switch {
	case repo.StarCount >= 10 || tagCount >= 20:
		return 15, fmt.Sprintf("%d stars, %d tags, established", repo.StarCount, tagCount)
	case repo.StarCount >= 3 || tagCount >= 5:
		return 10, fmt.Sprintf("%d stars, %d tags, moderate", repo.StarCount, tagCount)
	}
	return 5, fmt.Sprintf("%d stars, %d tags, limited data", repo.StarCount, tagCount)
}
