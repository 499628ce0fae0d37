package runtimelib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tsgoc/internal/config"
)

func TestGenerateAlwaysIncludesCoreHelpers(t *testing.T) {
	src := Generate(config.Default())

	assert.Contains(t, src, "package tsgocrt")
	assert.Contains(t, src, "func TypeOf(")
	assert.Contains(t, src, "func Includes[")
}

func TestGenerateOmitsOptionalHelperUnderZeroNullability(t *testing.T) {
	cfg := config.New(config.WithNullabilityStrategy(config.NullabilityZero))
	src := Generate(cfg)

	assert.NotContains(t, src, "func OptionalGet[")
}

func TestGenerateOmitsUnionTagHelperUnderAnyStrategy(t *testing.T) {
	cfg := config.New(config.WithUnionStrategy(config.UnionAny))
	src := Generate(cfg)

	assert.NotContains(t, src, "func TagOf(")
}
