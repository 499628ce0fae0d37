package types

// Modifier is one of the declaration modifiers the frontend reports. A
// declaration may carry several; order is not significant, so callers hold them
// in a ModifierSet rather than a slice.
type Modifier string

const (
	Export    Modifier = "export"
	Default   Modifier = "default"
	Public    Modifier = "public"
	Private   Modifier = "private"
	Protected Modifier = "protected"
	Static    Modifier = "static"
	Readonly  Modifier = "readonly"
	Async     Modifier = "async"
	Const     Modifier = "const"
	Abstract  Modifier = "abstract"
)

// ModifierSet is an unordered set of Modifier values.
type ModifierSet map[Modifier]bool

// NewModifierSet builds a ModifierSet from a variadic list.
func NewModifierSet(mods ...Modifier) ModifierSet {
	s := make(ModifierSet, len(mods))
	for _, m := range mods {
		s[m] = true
	}
	return s
}

// Has reports whether m is present in the set.
func (s ModifierSet) Has(m Modifier) bool {
	return s[m]
}

// Add inserts m into the set and returns the set for chaining.
func (s ModifierSet) Add(m Modifier) ModifierSet {
	s[m] = true
	return s
}

// Visibility returns the access modifier among public/private/protected,
// defaulting to public when none is set (the source language's own default).
func (s ModifierSet) Visibility() Modifier {
	switch {
	case s.Has(Private):
		return Private
	case s.Has(Protected):
		return Protected
	default:
		return Public
	}
}
