// Package optimizer implements the level-gated IR pass pipeline of spec
// §4.2. Every pass is a pure function Module → Module: none of them mutate
// the nodes they're handed (invariant 6); each builds a fresh Module,
// copying any node it rewrites and sharing the rest with its input.
package optimizer

import "tsgoc/internal/ir"

// Pass is one optimizer stage.
type Pass func(*ir.Module) *ir.Module

// passesForLevel returns the ordered pass list for a given optimizationLevel
// (spec §4.2). Re-ordering this list is a configuration decision, not a
// runtime one (spec §5, "Ordering guarantees"), so it's fixed here rather
// than built dynamically from a caller-supplied list.
func passesForLevel(level int) []Pass {
	switch {
	case level <= 0:
		return nil
	case level == 1:
		return []Pass{EliminateDeadCode, FoldConstants}
	default:
		return []Pass{
			EliminateDeadCode,
			FoldConstants,
			SimplifyTypes,
			NormalizeControlFlow,
			Inline,
		}
	}
}

// Run applies every pass for the given optimization level, in order, each
// consuming the previous pass's output.
func Run(m *ir.Module, level int) *ir.Module {
	for _, p := range passesForLevel(level) {
		m = p(m)
	}
	return m
}
