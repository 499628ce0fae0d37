package typemapper

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

// IntersectionName computes the canonical interned name for an
// intersection's constituent list.
func IntersectionName(members []types.Type, cfg config.Strategy) string {
	frags := make([]string, 0, len(members))
	for _, m := range members {
		frags = append(frags, fragment(Map(m, cfg).GoType))
	}
	return "Intersection_" + strings.Join(frags, "_")
}

// mapIntersection builds a record with one embedded field per constituent
// type (spec §4.3). Reference-typed constituents embed by their bare name so
// the Go field-promotion rules apply the same way the source's structural
// intersection did; any other constituent kind is given a synthetic field
// name derived from its own mapped type. A constituent whose field name
// repeats an earlier one gets a numeric suffix (A, A2); fields promoted from
// different constituents are not renamed or prefixed.
func mapIntersection(t types.Type, cfg config.Strategy) Result {
	name := IntersectionName(t.Members, cfg)

	var deferred []Deferred
	seen := map[string]int{}
	fields := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		r := Map(m, cfg)
		deferred = append(deferred, r.Deferred...)

		fieldName := embeddedFieldName(m, r.GoType)
		if seen[fieldName] > 0 {
			fieldName = fieldName + fmt.Sprintf("%d", seen[fieldName]+1)
		}
		seen[fieldName]++
		fields = append(fields, fmt.Sprintf("\t%s %s", fieldName, r.GoType))
	}

	src := fmt.Sprintf("type %s struct {\n%s\n}", name, strings.Join(fields, "\n"))
	deferred = append(deferred, Deferred{Name: name, Kind: DeferredIntersection, Source: src})
	return Result{GoType: name, Deferred: deferred}
}

func embeddedFieldName(t types.Type, goType string) string {
	if t.Kind == types.KindReference {
		return strcase.ToCamel(t.RefName)
	}
	return strcase.ToCamel(fragment(goType))
}
