// Package sourcemap implements the source-map output object of spec §6: a
// JSON-tagged structure the core populates with raw, un-VLQ-encoded mapping
// triples. VLQ packing into the standard `mappings` string format is
// explicitly a downstream concern the core does not take on.
package sourcemap

// Mapping is one raw generated-position → source-position correspondence.
// NameIndex is -1 when the mapping carries no associated name.
type Mapping struct {
	GeneratedLine   int `json:"generatedLine"`
	GeneratedColumn int `json:"generatedColumn"`
	SourceIndex     int `json:"sourceIndex"`
	SourceLine      int `json:"sourceLine"`
	SourceColumn    int `json:"sourceColumn"`
	NameIndex       int `json:"nameIndex"`
}

// Map is the JSON-encodable source-map object (spec §6: "version:3, sources,
// names, mappings, sourcesContent").
type Map struct {
	Version        int       `json:"version"`
	Sources        []string  `json:"sources"`
	Names          []string  `json:"names"`
	Mappings       []Mapping `json:"mappings"`
	SourcesContent []string  `json:"sourcesContent"`
}

// New returns an empty Map for the given source file, ready for Builder to
// append mappings to as the emitter walks a module.
func New(source, sourceContent string) *Map {
	return &Map{
		Version:        3,
		Sources:        []string{source},
		SourcesContent: []string{sourceContent},
	}
}

// Builder accumulates mappings and names as the emitter produces output,
// deduplicating names so the same identifier isn't recorded twice.
type Builder struct {
	m         *Map
	nameIndex map[string]int
}

// NewBuilder wraps a Map for incremental population.
func NewBuilder(m *Map) *Builder {
	return &Builder{m: m, nameIndex: map[string]int{}}
}

// Add records one mapping. name may be empty, meaning the mapping carries
// no associated identifier.
func (b *Builder) Add(generatedLine, generatedColumn, sourceLine, sourceColumn int, name string) {
	idx := -1
	if name != "" {
		var ok bool
		idx, ok = b.nameIndex[name]
		if !ok {
			idx = len(b.m.Names)
			b.m.Names = append(b.m.Names, name)
			b.nameIndex[name] = idx
		}
	}
	b.m.Mappings = append(b.m.Mappings, Mapping{
		GeneratedLine:   generatedLine,
		GeneratedColumn: generatedColumn,
		SourceIndex:     0,
		SourceLine:      sourceLine,
		SourceColumn:    sourceColumn,
		NameIndex:       idx,
	})
}

// Map returns the Map being built.
func (b *Builder) Map() *Map { return b.m }
