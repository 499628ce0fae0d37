// Package typemapper implements the pure IRType × StrategyConfig → Go-type
// function (spec §4.3). It never touches source locations, never reports
// diagnostics, and never mutates anything outside its own return value: the
// same (Type, Strategy) pair always maps to the same result.
package typemapper

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

// DeferredKind discriminates the shape of a generated type definition that
// a mapping produced alongside its reference string.
type DeferredKind int

const (
	DeferredTuple DeferredKind = iota
	DeferredUnionTagged
	DeferredUnionInterface
	DeferredIntersection
)

// Deferred is a type definition that must be emitted once, before first use,
// under its Name. The emitter's tuple-intern table (spec §4.6) decides
// whether it has already been emitted for the current module; Map always
// recomputes the same Deferred for the same input, so repeated calls are
// idempotent and safe to skip.
type Deferred struct {
	Name   string
	Kind   DeferredKind
	Source string
}

// Result is what Map returns: the Go type string to use at the use site, and
// the zero or more deferred definitions that string depends on. Composite
// types can carry deferred definitions transitively (e.g. a tuple of unions).
type Result struct {
	GoType   string
	Deferred []Deferred
}

// Map implements the primitive/composite/union/intersection mapping tables
// of spec §4.3. Nullability (optional T → T / *T / NullT) is applied
// separately by Nullable, since optionality is a property of the binding
// site (a parameter, a property), not of the type itself.
func Map(t types.Type, cfg config.Strategy) Result {
	switch t.Kind {
	case types.KindUnknown:
		return Result{GoType: "any"}
	case types.KindPrimitive:
		return Result{GoType: mapPrimitive(t.Primitive, cfg)}
	case types.KindArray:
		elem := Map(*t.Elem, cfg)
		return Result{GoType: "[]" + elem.GoType, Deferred: elem.Deferred}
	case types.KindTuple:
		return mapTuple(t, cfg)
	case types.KindObject:
		return mapObject(t, cfg)
	case types.KindFunction:
		return mapFunction(t, cfg)
	case types.KindUnion:
		return mapUnion(t, cfg)
	case types.KindIntersection:
		return mapIntersection(t, cfg)
	case types.KindReference:
		return mapReference(t, cfg)
	case types.KindLiteral:
		return mapLiteral(t, cfg)
	default:
		return Result{GoType: "any"}
	}
}

// mapPrimitive implements the primitive row of §4.3. number's target type
// depends on the configured NumberStrategy; contextual resolution (inferring
// int vs float64 from an initializer's literal shape) is the caller's job —
// Map has no initializer to look at, so contextual degrades to float64 here;
// ContextualNumber is the variant that takes the initializer's shape.
func mapPrimitive(p types.Primitive, cfg config.Strategy) string {
	switch p {
	case types.PrimString:
		return "string"
	case types.PrimBoolean:
		return "bool"
	case types.PrimNumber:
		switch cfg.NumberStrategy {
		case config.NumberInt:
			return "int"
		default:
			return "float64"
		}
	case types.PrimVoid, types.PrimAny, types.PrimUnknown:
		return "any"
	case types.PrimNever:
		return "struct{}"
	default:
		return "any"
	}
}

// ContextualNumber resolves the number primitive under NumberContextual by
// inspecting whether the initializer literal looks integral. Lowering and
// the emitter do not call it; they map number through Map, so under
// NumberContextual every number site gets float64.
func ContextualNumber(cfg config.Strategy, initializerIsIntegral bool) string {
	if cfg.NumberStrategy != config.NumberContextual {
		return mapPrimitive(types.PrimNumber, cfg)
	}
	if initializerIsIntegral {
		return "int"
	}
	return "float64"
}

func mapFunction(t types.Type, cfg config.Strategy) Result {
	var deferred []Deferred
	params := make([]string, 0, len(t.Params))
	if t.IsAsync {
		params = append(params, "context.Context")
	}
	for _, p := range t.Params {
		r := Map(p.Type, cfg)
		deferred = append(deferred, r.Deferred...)
		goType := r.GoType
		if p.Optional {
			goType = Nullable(goType, cfg)
		}
		params = append(params, goType)
	}

	var ret string
	if t.Return != nil {
		r := Map(*t.Return, cfg)
		deferred = append(deferred, r.Deferred...)
		ret = r.GoType
	}

	var sig string
	switch {
	case t.IsAsync && ret != "":
		sig = fmt.Sprintf("func(%s) (%s, error)", strings.Join(params, ", "), ret)
	case t.IsAsync:
		sig = fmt.Sprintf("func(%s) error", strings.Join(params, ", "))
	case ret != "":
		sig = fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), ret)
	default:
		sig = fmt.Sprintf("func(%s)", strings.Join(params, ", "))
	}
	return Result{GoType: sig, Deferred: deferred}
}

func mapObject(t types.Type, cfg config.Strategy) Result {
	if t.IndexSignature != nil && len(t.Properties) == 0 {
		key := Map(t.IndexSignature.KeyType, cfg)
		val := Map(t.IndexSignature.ValueType, cfg)
		d := append(key.Deferred, val.Deferred...)
		return Result{GoType: fmt.Sprintf("map[%s]%s", key.GoType, val.GoType), Deferred: d}
	}

	var deferred []Deferred
	fields := make([]string, 0, len(t.Properties))
	for _, prop := range t.Properties {
		r := Map(prop.Type, cfg)
		deferred = append(deferred, r.Deferred...)
		goType := r.GoType
		if prop.Optional {
			goType = Nullable(goType, cfg)
		}
		fields = append(fields, fmt.Sprintf("%s %s", strcase.ToCamel(prop.Name), goType))
	}
	return Result{GoType: "struct{ " + strings.Join(fields, "; ") + " }", Deferred: deferred}
}

func mapLiteral(t types.Type, cfg config.Strategy) Result {
	switch t.LiteralValue.(type) {
	case string:
		return Result{GoType: "string"}
	case bool:
		return Result{GoType: "bool"}
	case float64, int:
		return Result{GoType: mapPrimitive(types.PrimNumber, cfg)}
	default:
		return Result{GoType: "any"}
	}
}

// Nullable applies the selected NullabilityStrategy to an already-mapped
// base type (spec §4.3, "Nullability mapping"). Pointer wraps in *T; Zero
// leaves the type unchanged (absence collapses into the zero value, a lossy
// but documented choice); SQLNull wraps well-known SQL-mappable primitives in
// their database/sql null wrapper and otherwise falls back to a pointer.
func Nullable(goType string, cfg config.Strategy) string {
	switch cfg.NullabilityStrategy {
	case config.NullabilityZero:
		return goType
	case config.NullabilitySQLNull:
		switch goType {
		case "string":
			return "sql.NullString"
		case "float64":
			return "sql.NullFloat64"
		case "int":
			return "sql.NullInt64"
		case "bool":
			return "sql.NullBool"
		default:
			return "*" + goType
		}
	default:
		return "*" + goType
	}
}
