package typemapper

import (
	"fmt"
	"strings"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

// TupleName computes the canonical interned name for a tuple shape (spec
// §4.6): `Tuple{n}_{T1}_..._{Tn}`, with `[]` simplified to `Array` and `*` to
// `Ptr` in each element's fragment so the name stays a legal Go identifier.
func TupleName(elems []types.Type, cfg config.Strategy) string {
	frags := make([]string, 0, len(elems))
	for _, e := range elems {
		frags = append(frags, fragment(Map(e, cfg).GoType))
	}
	return fmt.Sprintf("Tuple%d_%s", len(elems), strings.Join(frags, "_"))
}

func mapTuple(t types.Type, cfg config.Strategy) Result {
	name := TupleName(t.Elems, cfg)

	var deferred []Deferred
	fields := make([]string, 0, len(t.Elems))
	for i, e := range t.Elems {
		r := Map(e, cfg)
		deferred = append(deferred, r.Deferred...)
		fields = append(fields, fmt.Sprintf("\tItem%d %s", i, r.GoType))
	}

	src := fmt.Sprintf("type %s struct {\n%s\n}", name, strings.Join(fields, "\n"))
	deferred = append(deferred, Deferred{Name: name, Kind: DeferredTuple, Source: src})
	return Result{GoType: name, Deferred: deferred}
}

// fragment turns a mapped Go type string into an identifier-safe fragment
// for use inside an interned name: `[]` becomes `Array`, `*` becomes `Ptr`,
// and anything else that can't appear in a Go identifier is dropped.
func fragment(goType string) string {
	s := strings.ReplaceAll(goType, "[]", "Array")
	s = strings.ReplaceAll(s, "*", "Ptr")

	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Any"
	}
	return b.String()
}
