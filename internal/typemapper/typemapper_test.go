package typemapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

func TestMapPrimitives(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "string", Map(types.NewPrimitive(types.PrimString), cfg).GoType)
	assert.Equal(t, "bool", Map(types.NewPrimitive(types.PrimBoolean), cfg).GoType)
	assert.Equal(t, "float64", Map(types.NewPrimitive(types.PrimNumber), cfg).GoType)
	assert.Equal(t, "any", Map(types.NewPrimitive(types.PrimAny), cfg).GoType)

	cfg.NumberStrategy = config.NumberInt
	assert.Equal(t, "int", Map(types.NewPrimitive(types.PrimNumber), cfg).GoType)
}

func TestMapArray(t *testing.T) {
	cfg := config.Default()
	r := Map(types.NewArray(types.NewPrimitive(types.PrimString)), cfg)
	assert.Equal(t, "[]string", r.GoType)
}

func TestMapTupleIsInterned(t *testing.T) {
	cfg := config.Default()
	tuple := types.NewTuple(types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber))

	r := Map(tuple, cfg)
	assert.Equal(t, "Tuple2_string_float64", r.GoType)
	require.Len(t, r.Deferred, 1)
	assert.Equal(t, DeferredTuple, r.Deferred[0].Kind)
	assert.Contains(t, r.Deferred[0].Source, "Item0 string")
	assert.Contains(t, r.Deferred[0].Source, "Item1 float64")

	again := Map(tuple, cfg)
	assert.Equal(t, r.GoType, again.GoType, "same tuple shape must intern to the same name")
}

func TestMapUnionTagged(t *testing.T) {
	cfg := config.Default()
	union := types.NewUnion(types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber))

	r := Map(union, cfg)
	require.Len(t, r.Deferred, 1)
	d := r.Deferred[0]
	assert.Equal(t, DeferredUnionTagged, d.Kind)
	assert.Contains(t, d.Source, "tag int")
	assert.Contains(t, d.Source, "IsType0")
	assert.Contains(t, d.Source, "AsType1")
	assert.Contains(t, d.Source, "FromArm0")
}

func TestMapUnionInterface(t *testing.T) {
	cfg := config.Default()
	cfg.UnionStrategy = config.UnionInterface
	union := types.NewUnion(types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber))

	r := Map(union, cfg)
	require.Len(t, r.Deferred, 1)
	assert.Equal(t, DeferredUnionInterface, r.Deferred[0].Kind)
	assert.Contains(t, r.Deferred[0].Source, "interface")
	assert.Contains(t, r.Deferred[0].Source, "Arm0")
}

func TestMapUnionSingleArmCollapsesToBareType(t *testing.T) {
	cfg := config.Default()
	union := types.NewUnion(types.NewPrimitive(types.PrimString))

	r := Map(union, cfg)
	assert.Equal(t, "string", r.GoType)
	assert.Empty(t, r.Deferred)
}

func TestMapUnionAny(t *testing.T) {
	cfg := config.Default()
	cfg.UnionStrategy = config.UnionAny
	union := types.NewUnion(types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber))

	r := Map(union, cfg)
	assert.Equal(t, "any", r.GoType)
	assert.Empty(t, r.Deferred)
}

func TestMapIntersectionEmbedsByConstituentName(t *testing.T) {
	cfg := config.Default()
	inter := types.NewIntersection(types.NewReference("A"), types.NewReference("B"))
	r := Map(inter, cfg)
	require.Len(t, r.Deferred, 1)
	assert.Contains(t, r.Deferred[0].Source, "A A")
	assert.Contains(t, r.Deferred[0].Source, "B B")
}

func TestMapIntersectionPrefixesConflicts(t *testing.T) {
	cfg := config.Default()
	inter := types.NewIntersection(types.NewReference("A"), types.NewReference("A"))
	r := Map(inter, cfg)
	require.Len(t, r.Deferred, 1)
	assert.Contains(t, r.Deferred[0].Source, "A A")
	assert.Contains(t, r.Deferred[0].Source, "A2 A")
}

func TestMapBuiltinReferences(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "time.Time", Map(types.NewReference("Date"), cfg).GoType)
	assert.Equal(t, "[]string", Map(types.NewReference("Array", types.NewPrimitive(types.PrimString)), cfg).GoType)
	assert.Equal(t, "map[string]float64", Map(types.NewReference("Map", types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber)), cfg).GoType)
	assert.Equal(t, "map[string]bool", Map(types.NewReference("Set", types.NewPrimitive(types.PrimString)), cfg).GoType)
	assert.Equal(t, "string", Map(types.NewReference("Promise", types.NewPrimitive(types.PrimString)), cfg).GoType)
	assert.Equal(t, "string", Map(types.NewReference("Partial", types.NewPrimitive(types.PrimString)), cfg).GoType)
}

func TestMapReferenceWithTypeArgsPassesThrough(t *testing.T) {
	cfg := config.Default()
	r := Map(types.NewReference("Box", types.NewPrimitive(types.PrimString)), cfg)
	assert.Equal(t, "Box[string]", r.GoType)
}

func TestNullableRespectsStrategy(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "*string", Nullable("string", cfg))

	cfg.NullabilityStrategy = config.NullabilityZero
	assert.Equal(t, "string", Nullable("string", cfg))

	cfg.NullabilityStrategy = config.NullabilitySQLNull
	assert.Equal(t, "sql.NullString", Nullable("string", cfg))
	assert.Equal(t, "*Widget", Nullable("Widget", cfg))
}

func TestMapFunctionAsync(t *testing.T) {
	cfg := config.Default()
	fn := types.NewFunction(
		[]types.Parameter{{Name: "name", Type: types.NewPrimitive(types.PrimString)}},
		types.NewPrimitive(types.PrimString),
		nil,
		true,
	)
	r := Map(fn, cfg)
	assert.Equal(t, "func(context.Context, string) (string, error)", r.GoType)
}
