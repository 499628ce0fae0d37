package typemapper

import (
	"fmt"
	"strings"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

// builtinReferences maps frontend built-in reference names to a function
// that produces the Go mapping, given the reference's type arguments
// already mapped to Go type strings (spec §6, "Built-in name mapping").
// Promise is handled separately in mapReference since it unwraps to its
// argument rather than wrapping it.
var builtinReferences = map[string]func(args []Result) Result{
	"Date": func(args []Result) Result {
		return Result{GoType: "time.Time"}
	},
	"Array": func(args []Result) Result {
		return withArgDeferred("[]"+argOrAny(args, 0), args)
	},
	"Map": func(args []Result) Result {
		return withArgDeferred(fmt.Sprintf("map[%s]%s", argOrAny(args, 0), argOrAny(args, 1)), args)
	},
	"Set": func(args []Result) Result {
		return withArgDeferred(fmt.Sprintf("map[%s]bool", argOrAny(args, 0)), args)
	},
	"Record": func(args []Result) Result {
		return withArgDeferred(fmt.Sprintf("map[%s]%s", argOrAny(args, 0), argOrAny(args, 1)), args)
	},
	// Partial/Required/Readonly/Pick/Omit are identity over their first type
	// argument at the type-mapper level (spec §6): the mapped record layout
	// doesn't distinguish field-optionality variants of the same base type.
	"Partial":  identityOverFirstArg,
	"Required": identityOverFirstArg,
	"Readonly": identityOverFirstArg,
	"Pick":     identityOverFirstArg,
	"Omit":     identityOverFirstArg,
}

func identityOverFirstArg(args []Result) Result {
	if len(args) == 0 {
		return Result{GoType: "any"}
	}
	return args[0]
}

func argOrAny(args []Result, i int) string {
	if i >= len(args) {
		return "any"
	}
	return args[i].GoType
}

func withArgDeferred(goType string, args []Result) Result {
	var deferred []Deferred
	for _, a := range args {
		deferred = append(deferred, a.Deferred...)
	}
	return Result{GoType: goType, Deferred: deferred}
}

// mapReference implements the Reference row of §4.3: built-ins from
// builtinReferences get their hard-coded mapping, Promise<T> unwraps to T,
// and everything else maps to its bare name plus bracket-delimited type
// arguments (generics pass through verbatim; the target's own generic
// syntax, not the source's).
func mapReference(t types.Type, cfg config.Strategy) Result {
	args := make([]Result, 0, len(t.TypeArgs))
	for _, a := range t.TypeArgs {
		args = append(args, Map(a, cfg))
	}

	if t.RefName == "Promise" {
		return identityOverFirstArg(args)
	}

	if fn, ok := builtinReferences[t.RefName]; ok {
		return fn(args)
	}

	if len(args) == 0 {
		return Result{GoType: t.RefName}
	}

	var deferred []Deferred
	names := make([]string, 0, len(args))
	for _, a := range args {
		deferred = append(deferred, a.Deferred...)
		names = append(names, a.GoType)
	}
	return Result{GoType: fmt.Sprintf("%s[%s]", t.RefName, strings.Join(names, ", ")), Deferred: deferred}
}
