package ir

import "fmt"

// NameSet tracks names already in use within one module. Lowering seeds it
// with the module's declared top-level names (invariant 3: name uniqueness)
// and returns it from Lower. The type mapper and emitter do not consult it:
// synthesized names (tuple records, union variants, hoisted static
// accessors) are minted without a Unique call and are not checked against
// the declared names.
type NameSet struct {
	seen map[string]bool
}

// NewNameSet returns an empty NameSet.
func NewNameSet() *NameSet {
	return &NameSet{seen: map[string]bool{}}
}

// Reserve marks name as taken. It reports false if name was already reserved.
func (s *NameSet) Reserve(name string) bool {
	if s.seen[name] {
		return false
	}
	s.seen[name] = true
	return true
}

// Has reports whether name is already reserved.
func (s *NameSet) Has(name string) bool {
	return s.seen[name]
}

// Unique returns base if it is free, reserving it; otherwise it appends
// "_2", "_3", ... until it finds a free name, reserves that, and returns it.
func (s *NameSet) Unique(base string) string {
	if s.Reserve(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if s.Reserve(candidate) {
			return candidate
		}
	}
}
