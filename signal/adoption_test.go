package signal

import (
	"context"
	"testing"

	"github.com/rhels/imagegate/adoption"
	"github.com/rhels/imagegate/oci"
	"github.com/stretchr/testify/assert"
)

func TestAdoptionEvaluatorUsesRegistryStrategy(t *testing.T) {
	e := NewAdoptionEvaluator(adoption.Default([]string{"registry.example.com"}))

	// unrecognized host: no heuristic, no partial credit
	result := e.Evaluate(context.Background(), oci.ParseReference("unknown.example.net/ns/app"))
	assert.Equal(t, CriterionAdoption, result.Criterion)
	assert.Equal(t, 0, result.Points)
	assert.Equal(t, MaxAdoption, result.MaxPoints)

	// curated host: flat credit
	result = e.Evaluate(context.Background(), oci.ParseReference("registry.example.com/app"))
	assert.Equal(t, MaxAdoption, result.Points)
}
