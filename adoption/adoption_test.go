package adoption

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rhels/imagegate/oci"
	"github.com/stretchr/testify/assert"
)

func hubServer(t *testing.T, pulls int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repositories/acme/app/", r.URL.Path)
		fmt.Fprintf(w, `{"pull_count": %d, "star_count": 1}`, pulls)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHubSourceTiers(t *testing.T) {
	ref := oci.ParseReference("acme/app:v1")
	testCases := []struct {
		pulls  int64
		points int
	}{
		{2_000_000, 15},
		{1_000_000, 15},
		{100_000, 10},
		{10_000, 5},
		{9_999, 0},
		{0, 0},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.pulls), func(t *testing.T) {
			srv := hubServer(t, tc.pulls)
			source := &HubSource{BaseURL: srv.URL, Client: srv.Client()}
			points, detail := source.Evaluate(context.Background(), ref)
			assert.Equal(t, tc.points, points)
			assert.NotEmpty(t, detail)
		})
	}
}

func TestHubSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	source := &HubSource{BaseURL: srv.URL, Client: srv.Client()}
	points, detail := source.Evaluate(context.Background(), oci.ParseReference("acme/app"))
	assert.Equal(t, 0, points)
	assert.Contains(t, detail, "hub API unreachable")
}

func TestQuaySourceTiers(t *testing.T) {
	ref := oci.ParseReference("quay.io/acme/app:v1")
	testCases := []struct {
		name   string
		body   string
		points int
	}{
		{"many stars", `{"star_count": 10, "tags": {}}`, 15},
		{"many tags", `{"star_count": 0, "tags": {"a":{},"b":{},"c":{},"d":{},"e":{},"f":{},"g":{},"h":{},"i":{},"j":{},"k":{},"l":{},"m":{},"n":{},"o":{},"p":{},"q":{},"r":{},"s":{},"t":{}}}`, 15},
		{"some stars", `{"star_count": 3, "tags": {}}`, 10},
		{"quiet", `{"star_count": 0, "tags": {}}`, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repository/acme/app", r.URL.Path)
				fmt.Fprint(w, tc.body)
			}))
			t.Cleanup(srv.Close)
			source := &QuaySource{BaseURL: srv.URL, Client: srv.Client()}
			points, _ := source.Evaluate(context.Background(), ref)
			assert.Equal(t, tc.points, points)
		})
	}
}

func TestQuaySourceUnreachableKeepsFloor(t *testing.T) {
	source := &QuaySource{BaseURL: "http://127.0.0.1:1", Client: &http.Client{}}
	points, detail := source.Evaluate(context.Background(), oci.ParseReference("quay.io/acme/app"))
	assert.Equal(t, 5, points)
	assert.Contains(t, detail, "partial credit")
}

func TestPackagesSourceTiers(t *testing.T) {
	ref := oci.ParseReference("ghcr.io/acme/app:v1")
	testCases := []struct {
		versions int
		points   int
	}{
		{50, 15},
		{10, 10},
		{9, 5},
		{0, 5},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.versions), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/acme/packages/container/app/versions", r.URL.Path)
				fmt.Fprint(w, "[")
				for i := 0; i < tc.versions; i++ {
					if i > 0 {
						fmt.Fprint(w, ",")
					}
					fmt.Fprintf(w, `{"id": %d}`, i)
				}
				fmt.Fprint(w, "]")
			}))
			t.Cleanup(srv.Close)
			source := &PackagesSource{BaseURL: srv.URL, Client: srv.Client()}
			points, _ := source.Evaluate(context.Background(), ref)
			assert.Equal(t, tc.points, points)
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	r := Default([]string{"registry.example.com"})

	points, detail := r.Lookup("registry.example.com").Evaluate(context.Background(), oci.ParseReference("registry.example.com/app"))
	assert.Equal(t, MaxPoints, points)
	assert.Contains(t, detail, "curated")

	points, detail = r.Lookup("unknown.example.net").Evaluate(context.Background(), oci.ParseReference("unknown.example.net/ns/app"))
	assert.Equal(t, 0, points)
	assert.Contains(t, detail, "no adoption data source")

	assert.IsType(t, &HubSource{}, r.Lookup("docker.io"))
	assert.IsType(t, &QuaySource{}, r.Lookup("quay.io"))
	assert.IsType(t, &PackagesSource{}, r.Lookup("ghcr.io"))
}
