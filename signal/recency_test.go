package signal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rhels/imagegate/oci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recencyAt(t *testing.T, ageDays int) Result {
	t.Helper()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -ageDays)
	e := NewRecencyEvaluator(&oci.MockInspector{
		InspectFunc: func(_ context.Context, _ oci.ImageReference) (*oci.ImageDetails, error) {
			return &oci.ImageDetails{Created: &created}, nil
		},
	}, 90, 365)
	e.timeSourceF = func() time.Time { return now }
	result, details := e.Evaluate(context.Background(), oci.ParseReference("acme/app"))
	require.NotNil(t, details)
	return result
}

func TestRecencyThresholds(t *testing.T) {
	testCases := []struct {
		ageDays int
		points  int
	}{
		{0, 15},
		{90, 15},  // boundary: exactly at the window
		{91, 5},   // strict threshold, no interpolation
		{365, 5},  // boundary: exactly at the stale window
		{366, 0},
	}
	for _, tc := range testCases {
		result := recencyAt(t, tc.ageDays)
		assert.Equal(t, tc.points, result.Points, "age %d days", tc.ageDays)
		assert.Equal(t, CriterionRecency, result.Criterion)
	}
}

func TestRecencyInspectorUnavailable(t *testing.T) {
	e := NewRecencyEvaluator(&oci.MockInspector{
		InspectFunc: func(_ context.Context, _ oci.ImageReference) (*oci.ImageDetails, error) {
			return nil, errors.New("registry timeout")
		},
	}, 90, 365)
	result, details := e.Evaluate(context.Background(), oci.ParseReference("acme/app"))
	assert.Nil(t, details)
	assert.Equal(t, 0, result.Points)
	assert.Contains(t, result.Detail, "image inspection unavailable")
}

func TestRecencyNoTimestamp(t *testing.T) {
	e := NewRecencyEvaluator(&oci.MockInspector{
		InspectFunc: func(_ context.Context, _ oci.ImageReference) (*oci.ImageDetails, error) {
			return &oci.ImageDetails{Digest: "sha256:abc"}, nil
		},
	}, 90, 365)
	result, details := e.Evaluate(context.Background(), oci.ParseReference("acme/app"))
	require.NotNil(t, details)
	assert.Equal(t, 0, result.Points)
	assert.Contains(t, result.Detail, "no publish timestamp")
}
