package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStrategy(t *testing.T) {
	s := Default()
	assert.Equal(t, NumberFloat64, s.NumberStrategy)
	assert.Equal(t, UnionTagged, s.UnionStrategy)
	assert.Equal(t, NullabilityPointer, s.NullabilityStrategy)
	assert.Equal(t, ErrorHandlingReturn, s.ErrorHandling)
	assert.Equal(t, 1, s.OptimizationLevel)
	assert.True(t, s.UsePointerReceivers)
	require.NoError(t, s.Validate())
}

func TestNewWithOptions(t *testing.T) {
	s := New(
		WithNumberStrategy(NumberInt),
		WithUnionStrategy(UnionInterface),
		WithOptimizationLevel(2),
	)

	assert.Equal(t, NumberInt, s.NumberStrategy)
	assert.Equal(t, UnionInterface, s.UnionStrategy)
	assert.Equal(t, 2, s.OptimizationLevel)
	// Untouched keys keep the default.
	assert.Equal(t, NullabilityPointer, s.NullabilityStrategy)
}

func TestParseOverlaysDefaults(t *testing.T) {
	s, err := Parse([]byte("numberStrategy: int\nstrict: true\n"))
	require.NoError(t, err)

	assert.Equal(t, NumberInt, s.NumberStrategy)
	assert.True(t, s.Strict)
	// unionStrategy was not in the YAML document, so it keeps the default.
	assert.Equal(t, UnionTagged, s.UnionStrategy)
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	s := Default()
	s.NumberStrategy = "decimal"
	assert.Error(t, s.Validate())

	s = Default()
	s.OptimizationLevel = 3
	assert.Error(t, s.Validate())
}
