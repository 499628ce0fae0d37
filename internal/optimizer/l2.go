package optimizer

import "tsgoc/internal/ir"

// SimplifyTypes, NormalizeControlFlow, and Inline are the L2 passes spec
// §4.2 names but leaves "deliberately identity-by-default until specified
// in detail" — their intent is documented here so a future pass author
// knows what to build without changing L1 correctness in the meantime.

// SimplifyTypes would collapse redundant type-mapper inputs before they
// reach internal/typemapper — e.g. a union of one member, or an
// intersection whose constituents are already structurally identical —
// so the emitter never has to special-case a degenerate composite type.
// Not yet specified beyond that intent; identity for now.
func SimplifyTypes(m *ir.Module) *ir.Module { return m }

// NormalizeControlFlow would canonicalize equivalent control-flow shapes
// (e.g. an if/else where both branches return, turned into two guarded
// returns) ahead of emission, so the emitter's per-construct rules don't
// need to special-case every source spelling of the same flow. Not yet
// specified beyond that intent; identity for now.
func NormalizeControlFlow(m *ir.Module) *ir.Module { return m }

// Inline would substitute a trivial single-use function body at its one
// call site. Not yet specified beyond that intent; identity for now.
func Inline(m *ir.Module) *ir.Module { return m }
