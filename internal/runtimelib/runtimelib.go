// Package runtimelib holds the companion runtime-helper source file emitted
// alongside generated Go code when a strategy asks for it (spec §6,
// `generateRuntime`). The core only owns the helper functions whose presence
// a chosen strategy actually requires — `typeof`'s reflection helper, a
// guarded-optional reader, a generic includes check, a tagged-union
// discriminator — never a full standard-library reimplementation. Which
// fragments are selected is a fixed function of the Strategy, not a runtime
// choice, matching spec §9's "optimizer passes execute in a fixed order ...
// a configuration decision, not a runtime one" texture for every other
// feature-subset switch in this codebase.
package runtimelib

import (
	"strings"

	"tsgoc/internal/config"
)

const header = "// Code generated by tsgoc's runtime helper template. DO NOT EDIT.\npackage tsgocrt\n"

const typeOfHelper = `
// TypeOf reports the runtime type name of v the way the source language's
// typeof operator would, collapsing Go's numeric and string kinds onto the
// three primitive names a typed-source reader expects.
func TypeOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int32, int64:
		return "number"
	default:
		return "object"
	}
}
`

const includesHelper = `
// Includes reports whether v occurs in arr, backing the .includes(v) array
// method for any comparable element type.
func Includes[T comparable](arr []T, v T) bool {
	for _, x := range arr {
		if x == v {
			return true
		}
	}
	return false
}
`

const optionalHelper = `
// OptionalGet dereferences an optional=true field read, returning the zero
// value of T in place of a nil-pointer panic.
func OptionalGet[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
`

const unionTagHelper = `
// UnionTag extracts the discriminant tag a tagged-union wrapper carries,
// for switches written against a union value rather than its concrete arm.
type UnionTag interface {
	Tag() string
}

func TagOf(v UnionTag) string {
	if v == nil {
		return ""
	}
	return v.Tag()
}
`

// Generate assembles the companion runtime source cfg selects. The file is
// produced even when every fragment is individually optional, because "any"
// discrimination and typeof both rely on TypeOf regardless of the configured
// NumberStrategy or UnionStrategy.
func Generate(cfg config.Strategy) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(typeOfHelper)
	b.WriteString(includesHelper)
	if cfg.NullabilityStrategy == config.NullabilityPointer {
		b.WriteString(optionalHelper)
	}
	if cfg.UnionStrategy == config.UnionTagged {
		b.WriteString(unionTagHelper)
	}
	return b.String()
}
