package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

func loc() types.SourceLocation { return types.SourceLocation{} }

func TestEmitModuleVariableDeclWithExplicitType(t *testing.T) {
	decl := ir.NewVariableDecl(loc(), "Count", types.NewModifierSet(types.Export), true,
		typePtr(types.NewPrimitive(types.PrimNumber)), ir.NewLiteral(loc(), float64(3), nil))
	m := &ir.Module{Statements: []ir.Decl{decl}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "var Count float64 = 3")
}

func TestEmitModuleStringTemplateLiteralUsesFmtSprintf(t *testing.T) {
	tmpl := ir.NewTemplateLiteral(loc(), []string{"hello ", "!"}, []ir.Expr{ir.NewIdentifier(loc(), "name", nil)})
	decl := ir.NewVariableDecl(loc(), "greeting", types.ModifierSet{}, true, nil, tmpl)
	m := &ir.Module{Statements: []ir.Decl{decl}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "fmt.Sprintf(")
	assert.Contains(t, out.Imports, "fmt")
}

func TestEmitModuleStrictEqualityCollapsesToGoEquality(t *testing.T) {
	cmp := ir.NewBinary(loc(), "===", ir.NewIdentifier(loc(), "a", nil), ir.NewIdentifier(loc(), "b", nil))
	fn := ir.NewFunctionDecl(loc(), "check", types.NewModifierSet(types.Export), nil, nil,
		nil, nil, false, ir.NewBlock(loc(), []ir.Stmt{ir.NewReturn(loc(), cmp)}))
	m := &ir.Module{Statements: []ir.Decl{fn}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "a == b")
	assert.NotContains(t, out.Source, "===")
}

func TestEmitModuleAsyncFunctionGetsContextAndErrorResult(t *testing.T) {
	fn := ir.NewFunctionDecl(loc(), "fetchThing", types.NewModifierSet(types.Export), nil, nil,
		typePtr(types.NewPrimitive(types.PrimString)), nil, true,
		ir.NewBlock(loc(), []ir.Stmt{ir.NewReturn(loc(), ir.NewLiteral(loc(), "ok", nil))}))
	m := &ir.Module{Statements: []ir.Decl{fn}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "ctx context.Context")
	assert.Contains(t, out.Source, "(string, error)")
	assert.Contains(t, out.Imports, "context")
}

func TestEmitModuleClassProducesRecordAndFactory(t *testing.T) {
	ctor := ir.NewMethod(loc(), "constructor",
		[]types.Parameter{{Name: "email", Type: types.NewPrimitive(types.PrimString)}},
		nil, nil, nil, ir.NewBlock(loc(), nil), types.ModifierSet{}, false,
		&ir.ConstructorInfo{ThisAssignments: []ir.ThisAssignment{
			{Field: "email", Value: ir.NewIdentifier(loc(), "email", nil)},
		}})

	class := ir.NewClassDecl(loc(), "User", types.NewModifierSet(types.Export), nil, nil, nil,
		[]ir.ClassMember{
			ir.NewProperty(loc(), "email", typePtr(types.NewPrimitive(types.PrimString)), nil, types.ModifierSet{}, true),
			ctor,
		})

	m := &ir.Module{Statements: []ir.Decl{class}}
	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "type User struct {")
	assert.Contains(t, out.Source, "func NewUser(email string) *User {")
	assert.Contains(t, out.Source, "Email: email,")
}

func TestEmitModuleEnumHeterogeneousEmitsStringConsts(t *testing.T) {
	members := []*ir.EnumMember{
		ir.NewEnumMember(loc(), "Red", ir.NewLiteral(loc(), "red", nil)),
		ir.NewEnumMember(loc(), "Blue", ir.NewLiteral(loc(), "blue", nil)),
	}
	decl := ir.NewEnumDecl(loc(), "Color", types.NewModifierSet(types.Export), members, true)
	m := &ir.Module{Statements: []ir.Decl{decl}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "type Color string")
	assert.Contains(t, out.Source, `ColorRed Color = "red"`)
}

func TestEmitModuleEnumNumericUsesIota(t *testing.T) {
	members := []*ir.EnumMember{
		ir.NewEnumMember(loc(), "Low", nil),
		ir.NewEnumMember(loc(), "High", nil),
	}
	decl := ir.NewEnumDecl(loc(), "Level", types.NewModifierSet(types.Export), members, false)
	m := &ir.Module{Statements: []ir.Decl{decl}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "LevelLow Level = iota")
	assert.Contains(t, out.Source, "LevelHigh")
}

func TestEmitModuleTupleVariableInternsRecordOnce(t *testing.T) {
	tupleType := typePtr(types.NewTuple(types.NewPrimitive(types.PrimString), types.NewPrimitive(types.PrimNumber)))
	first := ir.NewVariableDecl(loc(), "a", types.ModifierSet{}, true, tupleType, nil)
	second := ir.NewVariableDecl(loc(), "b", types.ModifierSet{}, true, tupleType, nil)
	m := &ir.Module{Statements: []ir.Decl{first, second}}

	out := EmitModule(m, config.Default())

	require.Equal(t, 1, strings.Count(out.Source, "type Tuple2_string_float64 struct"))
}

func TestEmitModuleThrowUnderReturnStrategyProducesErrorResult(t *testing.T) {
	body := ir.NewBlock(loc(), []ir.Stmt{ir.NewThrow(loc(), ir.NewLiteral(loc(), "bad input", nil))})
	fn := ir.NewFunctionDecl(loc(), "validate", types.ModifierSet{}, nil, nil,
		nil, nil, false, body)
	m := &ir.Module{Statements: []ir.Decl{fn}}

	out := EmitModule(m, config.New(config.WithErrorHandling(config.ErrorHandlingReturn)))

	assert.Contains(t, out.Source, "func validate() error {")
	assert.Contains(t, out.Source, `errors.New("bad input")`)
}

func TestEmitModuleThrowUnderPanicStrategyPanics(t *testing.T) {
	body := ir.NewBlock(loc(), []ir.Stmt{ir.NewThrow(loc(), ir.NewLiteral(loc(), "bad input", nil))})
	fn := ir.NewFunctionDecl(loc(), "validate", types.NewModifierSet(types.Export), nil, nil,
		nil, nil, false, body)
	m := &ir.Module{Statements: []ir.Decl{fn}}

	out := EmitModule(m, config.New(config.WithErrorHandling(config.ErrorHandlingPanic)))

	assert.Contains(t, out.Source, `panic("bad input")`)
}

func TestEmitModuleHoistsStaticMethodToModuleLevelFunction(t *testing.T) {
	instanceField := ir.NewProperty(loc(), "instance", typePtr(types.NewReference("Counter")), nil, types.NewModifierSet(types.Static), false)
	getInstance := ir.NewMethod(loc(), "getInstance", nil, nil, typePtr(types.NewReference("Counter")), nil,
		ir.NewBlock(loc(), []ir.Stmt{ir.NewReturn(loc(), ir.NewMember(loc(), ir.NewIdentifier(loc(), "Counter", nil), "instance", false, nil, false))}),
		types.NewModifierSet(types.Static), false, nil)

	class := ir.NewClassDecl(loc(), "Counter", types.NewModifierSet(types.Export), nil, nil, nil,
		[]ir.ClassMember{instanceField, getInstance})

	m := &ir.Module{Statements: []ir.Decl{class}}
	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "func GetCounterInstance()")
	assert.NotContains(t, out.Source, "func (c *Counter) GetInstance")
	assert.Contains(t, out.Source, "return CounterInstance")
}

func TestEmitModuleTopLevelExpressionStatementBecomesInit(t *testing.T) {
	call := ir.NewCall(loc(), ir.NewIdentifier(loc(), "registerHandlers", nil), nil, nil, false)
	m := &ir.Module{Statements: []ir.Decl{ir.NewExpressionStmt(loc(), call)}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "func init() {")
	assert.Contains(t, out.Source, "registerHandlers()")
}

func TestEmitModuleTopLevelAssignmentStatementIsDropped(t *testing.T) {
	assign := ir.NewAssignment(loc(), "=", ir.NewIdentifier(loc(), "counter", nil), ir.NewLiteral(loc(), float64(0), nil))
	m := &ir.Module{Statements: []ir.Decl{ir.NewExpressionStmt(loc(), assign)}}

	out := EmitModule(m, config.Default())

	assert.NotContains(t, out.Source, "func init()")
	assert.NotContains(t, out.Source, "counter = 0")
}

func TestEmitModuleReturnIncludesExpandsToLoop(t *testing.T) {
	includesCall := ir.NewCall(loc(),
		ir.NewMember(loc(), ir.NewIdentifier(loc(), "values", nil), "includes", false, nil, false),
		[]ir.Expr{ir.NewIdentifier(loc(), "v", nil)}, nil, false)
	fn := ir.NewFunctionDecl(loc(), "hasValue", types.NewModifierSet(types.Export), nil, nil,
		typePtr(types.NewPrimitive(types.PrimBoolean)), nil, false,
		ir.NewBlock(loc(), []ir.Stmt{ir.NewReturn(loc(), includesCall)}))
	m := &ir.Module{Statements: []ir.Decl{fn}}

	out := EmitModule(m, config.Default())

	assert.Contains(t, out.Source, "for _, elem := range values {")
	assert.Contains(t, out.Source, "if elem == v {")
	assert.Contains(t, out.Source, "return true")
	assert.Contains(t, out.Source, "return false")
}

func TestEmitModuleGeneratesRuntimeCompanionWhenRequested(t *testing.T) {
	m := &ir.Module{Statements: []ir.Decl{}}

	out := EmitModule(m, config.New(config.WithGenerateRuntime(true)))

	assert.Contains(t, out.Runtime, "package tsgocrt")
	assert.Contains(t, out.Runtime, "func TypeOf(")
}

func TestEmitModuleOmitsRuntimeCompanionByDefault(t *testing.T) {
	m := &ir.Module{Statements: []ir.Decl{}}

	out := EmitModule(m, config.Default())

	assert.Empty(t, out.Runtime)
}

func TestEmitModuleBuildsSourceMapWhenEnabled(t *testing.T) {
	decl := ir.NewVariableDecl(loc(), "Count", types.NewModifierSet(types.Export), true,
		typePtr(types.NewPrimitive(types.PrimNumber)), ir.NewLiteral(loc(), float64(3), nil))
	decl.Location = types.SourceLocation{File: "a.ts", StartLine: 4, StartColumn: 1}
	m := &ir.Module{Path: "a.ts", Statements: []ir.Decl{decl}}

	out := EmitModule(m, config.New(config.WithSourceMap(true)))

	require.NotNil(t, out.SourceMap)
	require.Len(t, out.SourceMap.Mappings, 1)
	assert.Equal(t, 4, out.SourceMap.Mappings[0].SourceLine)
}

func typePtr(t types.Type) *types.Type { return &t }
