package typemapper

import (
	"fmt"
	"strings"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

// UnionName computes the canonical interned name for a union's member list,
// using the same fragment scheme as TupleName so tagged and interface union
// definitions never collide with a tuple generated from the same members.
func UnionName(members []types.Type, cfg config.Strategy) string {
	frags := make([]string, 0, len(members))
	for _, m := range members {
		frags = append(frags, fragment(Map(m, cfg).GoType))
	}
	return fmt.Sprintf("Union%d_%s", len(members), strings.Join(frags, "_"))
}

func mapUnion(t types.Type, cfg config.Strategy) Result {
	if len(t.Members) == 1 {
		return Map(t.Members[0], cfg)
	}
	switch cfg.UnionStrategy {
	case config.UnionInterface:
		return mapUnionInterface(t, cfg)
	case config.UnionAny:
		return Result{GoType: "any"}
	default:
		return mapUnionTagged(t, cfg)
	}
}

// mapUnionTagged implements the default union strategy: a record with
// `tag int` and one nullable field per arm, plus `IsType{i}`/`AsType{i}`
// helpers and a `New{Name}FromArm{i}` constructor per arm (spec §4.3).
func mapUnionTagged(t types.Type, cfg config.Strategy) Result {
	name := UnionName(t.Members, cfg)

	var deferred []Deferred
	var fields []string
	var helpers []string
	for i, m := range t.Members {
		r := Map(m, cfg)
		deferred = append(deferred, r.Deferred...)
		fields = append(fields, fmt.Sprintf("\tarm%d *%s", i, r.GoType))
		helpers = append(helpers,
			fmt.Sprintf("func (u *%s) IsType%d() bool { return u.tag == %d }", name, i, i),
			fmt.Sprintf("func (u *%s) AsType%d() *%s { return u.arm%d }", name, i, r.GoType, i),
			fmt.Sprintf("func New%sFromArm%d(v %s) *%s { return &%s{tag: %d, arm%d: &v} }", name, i, r.GoType, name, name, i, i),
		)
	}

	src := fmt.Sprintf("type %s struct {\n\ttag int\n%s\n}\n\n%s",
		name, strings.Join(fields, "\n"), strings.Join(helpers, "\n"))
	deferred = append(deferred, Deferred{Name: name, Kind: DeferredUnionTagged, Source: src})
	return Result{GoType: "*" + name, Deferred: deferred}
}

// mapUnionInterface implements the interface union strategy: a nominal
// marker interface with a private marker method, and one record per arm
// implementing it. The emitter discriminates arms with a type switch.
func mapUnionInterface(t types.Type, cfg config.Strategy) Result {
	name := UnionName(t.Members, cfg)
	marker := "is" + name

	var deferred []Deferred
	def := []string{fmt.Sprintf("type %s interface {\n\t%s()\n}", name, marker)}
	for i, m := range t.Members {
		r := Map(m, cfg)
		deferred = append(deferred, r.Deferred...)
		armName := fmt.Sprintf("%sArm%d", name, i)
		def = append(def,
			fmt.Sprintf("type %s struct {\n\tValue %s\n}", armName, r.GoType),
			fmt.Sprintf("func (%s) %s() {}", armName, marker),
		)
	}

	src := strings.Join(def, "\n\n")
	deferred = append(deferred, Deferred{Name: name, Kind: DeferredUnionInterface, Source: src})
	return Result{GoType: name, Deferred: deferred}
}
