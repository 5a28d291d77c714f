package adoption

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rhels/imagegate/oci"
)

const defaultHubAPI = "https://hub.docker.com/v2"

// hubRepository is the subset of the Docker Hub repositories API we read.
type hubRepository struct {
	PullCount int64 `json:"pull_count"`
	StarCount int   `json:"star_count"`
}

// HubSource scores Docker Hub images by pull count. An unreachable API
// yields zero: the hub is the default path and stays conservative.
type HubSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHubSource() *HubSource {
	return &HubSource{BaseURL: defaultHubAPI, Client: oci.HTTPClient()}
}

func (s *HubSource) Evaluate(ctx context.Context, ref oci.ImageReference) (int, string) {
	namespace := ref.Namespace
	if namespace == "" {
		namespace = "library"
	}
	url := fmt.Sprintf("%s/repositories/%s/%s/", s.BaseURL, namespace, ref.Repository)
	repo := &hubRepository{}
	if err := getJSON(ctx, s.Client, url, repo); err != nil {
		return 0, fmt.Sprintf("hub API unreachable: %s", err)
	}
	switch {
	case repo.PullCount >= 1_000_000:
		return 15, fmt.Sprintf("%d pulls, widely adopted", repo.PullCount)
	case repo.PullCount >= 100_000:
		return 10, fmt.Sprintf("%d pulls, well adopted", repo.PullCount)
	case repo.PullCount >= 10_000:
		return 5, fmt.Sprintf("%d pulls, some adoption", repo.PullCount)
	}
	return 0, fmt.Sprintf("%d pulls, low adoption", repo.PullCount)
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	if client == nil {
		client = oci.HTTPClient()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
