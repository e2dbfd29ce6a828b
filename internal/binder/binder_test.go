package binder

import (
	"testing"

	"github.com/clayne/psychec/internal/config"
	"github.com/clayne/psychec/internal/symbols"
	"github.com/clayne/psychec/internal/synbuild"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/token"
	"github.com/clayne/psychec/internal/types"
)

func bindUnit(t *testing.T, unit *syntax.TranslationUnit) (*syntax.SyntaxTree, *Binder) {
	t.Helper()
	tree := syntax.NewSyntaxTree(unit, nil)
	b := New(tree, config.Default())
	return tree, b
}

func findByName(t *testing.T, scope *symbols.Scope, name string) symbols.Symbol {
	t.Helper()
	for _, sym := range scope.Declarations() {
		if named, ok := symbolName(sym); ok && named == name {
			return sym
		}
	}
	t.Fatalf("no symbol named %q in scope", name)
	return nil
}

// symbolName extracts the spelling off whichever concrete Symbol kind
// sym is — every kind but TranslationUnit carries a *ident.Identifier
// Name field, but there is no common accessor on the Symbol interface
// for it (spec.md §3 does not name one), so tests switch the same way
// tags.go's setTagFields does.
func symbolName(sym symbols.Symbol) (string, bool) {
	switch s := sym.(type) {
	case *symbols.Struct:
		return s.Name.String(), true
	case *symbols.Union:
		return s.Name.String(), true
	case *symbols.Enum:
		return s.Name.String(), true
	case *symbols.Typedef:
		return s.Name.String(), true
	case *symbols.Variable:
		return s.Name.String(), true
	case *symbols.Function:
		return s.Name.String(), true
	case *symbols.Parameter:
		return s.Name.String(), true
	case *symbols.Field:
		return s.Name.String(), true
	case *symbols.Enumerator:
		return s.Name.String(), true
	default:
		return "", false
	}
}

// Scenario 1 (spec.md §8): `int x;` — one Variable in file scope, no
// diagnostics.
func TestBindPlainVariable(t *testing.T) {
	unit := synbuild.Unit(
		synbuild.Decl([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("x")),
	)
	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	x, ok := findByName(t, model.Root, "x").(*symbols.Variable)
	if !ok {
		t.Fatalf("x is not a Variable")
	}
	basic, ok := x.Type.(types.Basic)
	if !ok || basic.Kind != types.Int {
		t.Errorf("x.Type = %#v, want Basic(Int)", x.Type)
	}
}

// Scenario 2 (spec.md §8): `unsigned long const *restrict p;`
func TestBindQualifiedPointer(t *testing.T) {
	specs := []syntax.Specifier{
		synbuild.Basic(token.KwUnsigned),
		synbuild.Basic(token.KwLong),
		synbuild.Qual(token.KwConst),
	}
	declarator := synbuild.Ptr(synbuild.Ident("p"), synbuild.Qual(token.KwRestrict))
	unit := synbuild.Unit(synbuild.Decl(specs, declarator))

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	p, ok := findByName(t, model.Root, "p").(*symbols.Variable)
	if !ok {
		t.Fatalf("p is not a Variable")
	}
	outer, ok := p.Type.(types.Qualified)
	if !ok || !outer.Qualifiers.Restrict {
		t.Fatalf("p.Type = %#v, want an outer restrict-Qualified", p.Type)
	}
	ptr, ok := outer.Unqualified.(types.Pointer)
	if !ok {
		t.Fatalf("p.Type's unqualified layer = %#v, want Pointer", outer.Unqualified)
	}
	inner, ok := ptr.Referenced.(types.Qualified)
	if !ok || !inner.Qualifiers.Const {
		t.Fatalf("Pointer.Referenced = %#v, want a const-Qualified", ptr.Referenced)
	}
	basic, ok := inner.Unqualified.(types.Basic)
	if !ok || basic.Kind != types.Long_U {
		t.Errorf("innermost type = %#v, want Basic(Long_U)", inner.Unqualified)
	}
}

// Scenario 3 (spec.md §8): `x;` — no symbol; both Binder-000 and the
// defaults-to-int diagnostic.
func TestBindIncompleteDeclaration(t *testing.T) {
	unit := synbuild.Unit(synbuild.Incomplete())
	tree, b := bindUnit(t, unit)
	b.Bind()

	ids := diagnosticIDs(tree)
	want := []string{"Binder-000", "Binder-100-6.7.2-2-A"}
	if len(ids) != len(want) {
		t.Fatalf("Diagnostics = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Diagnostics[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

// Scenario 4 (spec.md §8): `struct S { int a; struct S *next; } s;`
func TestBindSelfReferentialStruct(t *testing.T) {
	aField := synbuild.Field([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("a"))
	nextField := synbuild.Field(
		[]syntax.Specifier{synbuild.TagRef(token.KwStruct, "S")},
		synbuild.Ptr(synbuild.Ident("next")),
	)
	structDecl := synbuild.Struct("S", []syntax.Node{aField, nextField}, synbuild.Ident("s"))
	unit := synbuild.Unit(structDecl)

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}

	sSym, ok := findByName(t, model.Root, "S").(*symbols.Struct)
	if !ok {
		t.Fatalf("S is not a Struct")
	}
	if sSym.Members == nil {
		t.Fatalf("S has no Members scope")
	}
	a, ok := findByName(t, sSym.Members, "a").(*symbols.Field)
	if !ok {
		t.Fatalf("a is not a Field")
	}
	if basic, ok := a.Type.(types.Basic); !ok || basic.Kind != types.Int {
		t.Errorf("a.Type = %#v, want Basic(Int)", a.Type)
	}
	next, ok := findByName(t, sSym.Members, "next").(*symbols.Field)
	if !ok {
		t.Fatalf("next is not a Field")
	}
	ptr, ok := next.Type.(types.Pointer)
	if !ok {
		t.Fatalf("next.Type = %#v, want Pointer", next.Type)
	}
	tagType, ok := ptr.Referenced.(types.Tag)
	if !ok || tagType.Kind != types.StructTag || tagType.Name.String() != "S" {
		t.Errorf("next.Type.Referenced = %#v, want Tag(Struct, S)", ptr.Referenced)
	}

	s, ok := findByName(t, model.Root, "s").(*symbols.Variable)
	if !ok {
		t.Fatalf("s is not a Variable")
	}
	if tagType, ok := s.Type.(types.Tag); !ok || tagType.Kind != types.StructTag || tagType.Name.String() != "S" {
		t.Errorf("s.Type = %#v, want Tag(Struct, S)", s.Type)
	}
}

// Supplemented scenario (SPEC_FULL.md §6.4): a trailing GNU attribute
// list on a tag declaration is walked but contributes nothing to the
// bound type.
func TestBindTagAttributeListIsInert(t *testing.T) {
	field := synbuild.Field([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("a"))
	structDecl := synbuild.Struct("Packed", []syntax.Node{field})
	structDecl.Attributes = []syntax.Node{synbuild.Attribute()}
	unit := synbuild.Unit(structDecl)

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	sSym, ok := findByName(t, model.Root, "Packed").(*symbols.Struct)
	if !ok {
		t.Fatalf("Packed is not a Struct")
	}
	if _, ok := findByName(t, sSym.Members, "a").(*symbols.Field); !ok {
		t.Errorf("field a missing after binding an attributed struct")
	}
}

// Scenario 5 (spec.md §8): `int f(void)(void);` — function returning a
// function, reported at the inner function declarator.
func TestBindFunctionReturningFunction(t *testing.T) {
	inner := synbuild.Fn(synbuild.Ident("f"), false)
	outer := synbuild.Fn(inner, false)
	unit := synbuild.Unit(synbuild.Decl([]syntax.Specifier{synbuild.Basic(token.KwInt)}, outer))

	tree, b := bindUnit(t, unit)
	b.Bind()

	ids := diagnosticIDs(tree)
	if len(ids) != 1 || ids[0] != "Binder-200-6.7.6.3-1-A" {
		t.Fatalf("Diagnostics = %v, want [Binder-200-6.7.6.3-1-A]", ids)
	}
}

// Scenario 6 (spec.md §8): `typedef int I; I y;` — resolution of I to
// Basic(Int) is deferred; y's type stays an unresolved Typedef
// reference.
func TestBindTypedefResolutionDeferred(t *testing.T) {
	typedefDecl := synbuild.Typedef([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("I"))
	varDecl := synbuild.Decl([]syntax.Specifier{synbuild.TypedefName("I")}, synbuild.Ident("y"))
	unit := synbuild.Unit(typedefDecl, varDecl)

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	i, ok := findByName(t, model.Root, "I").(*symbols.Typedef)
	if !ok {
		t.Fatalf("I is not a Typedef")
	}
	if basic, ok := i.SynonymizedType.(types.Basic); !ok || basic.Kind != types.Int {
		t.Errorf("I.SynonymizedType = %#v, want Basic(Int)", i.SynonymizedType)
	}
	y, ok := findByName(t, model.Root, "y").(*symbols.Variable)
	if !ok {
		t.Fatalf("y is not a Variable")
	}
	td, ok := y.Type.(types.Typedef)
	if !ok || td.Name.String() != "I" {
		t.Errorf("y.Type = %#v, want Typedef{I} (unresolved)", y.Type)
	}
}

// Supplemented scenario (SPEC_FULL.md §5): the long-long composition
// extension, gated by config.BinderOptions.LongLong.
func TestBindLongLongPromotion(t *testing.T) {
	specs := []syntax.Specifier{
		synbuild.Basic(token.KwUnsigned),
		synbuild.Basic(token.KwLong),
		synbuild.Basic(token.KwLong),
	}
	unit := synbuild.Unit(synbuild.Decl(specs, synbuild.Ident("x")))
	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	x, ok := findByName(t, model.Root, "x").(*symbols.Variable)
	if !ok {
		t.Fatalf("x is not a Variable")
	}
	if basic, ok := x.Type.(types.Basic); !ok || basic.Kind != types.LongLong_U {
		t.Errorf("x.Type = %#v, want Basic(LongLong_U)", x.Type)
	}
}

// Supplemented scenario: with the long-long extension disabled (zero
// config.BinderOptions{}), a second `long` is an unrecognized
// composition and reports "two or more data types" instead.
func TestBindLongLongDisabledReportsError(t *testing.T) {
	specs := []syntax.Specifier{synbuild.Basic(token.KwLong), synbuild.Basic(token.KwLong)}
	unit := synbuild.Unit(synbuild.Decl(specs, synbuild.Ident("x")))
	tree := syntax.NewSyntaxTree(unit, nil)
	b := New(tree, config.BinderOptions{})
	b.Bind()

	ids := diagnosticIDs(tree)
	if len(ids) != 1 || ids[0] != "Binder-xxx" {
		t.Fatalf("Diagnostics = %v, want [Binder-xxx]", ids)
	}
}

// Supplemented scenario: restrict applied to a non-pointer base is
// reported and dropped rather than silently kept (spec.md §4.6).
func TestBindRestrictOnNonPointerIsRejected(t *testing.T) {
	specs := []syntax.Specifier{synbuild.Basic(token.KwInt), synbuild.Qual(token.KwRestrict)}
	unit := synbuild.Unit(synbuild.Decl(specs, synbuild.Ident("x")))
	tree, b := bindUnit(t, unit)
	model := b.Bind()

	ids := diagnosticIDs(tree)
	if len(ids) != 1 || ids[0] != "Binder-300-6.7.3-2" {
		t.Fatalf("Diagnostics = %v, want [Binder-300-6.7.3-2]", ids)
	}
	x, ok := findByName(t, model.Root, "x").(*symbols.Variable)
	if !ok {
		t.Fatalf("x is not a Variable")
	}
	if _, isBasic := x.Type.(types.Basic); !isBasic {
		t.Errorf("x.Type = %#v, want a plain (unqualified) Basic(Int): restrict must be dropped", x.Type)
	}
}

// Supplemented scenario: enumerators are inserted into the enum's
// enclosing scope, never into its own TagMembers scope (spec.md §4.3).
func TestBindEnumeratorScopedToEnclosingScope(t *testing.T) {
	enumDecl := synbuild.Enum("Color", []syntax.Node{
		synbuild.Enumerator("Red"),
		synbuild.Enumerator("Green"),
	})
	unit := synbuild.Unit(enumDecl)
	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	colorSym, ok := findByName(t, model.Root, "Color").(*symbols.Enum)
	if !ok {
		t.Fatalf("Color is not an Enum")
	}
	if len(colorSym.Members.Declarations()) != 0 {
		t.Errorf("Color's own Members scope has %d symbols, want 0 (enumerators live in the enclosing scope)", len(colorSym.Members.Declarations()))
	}
	red, ok := findByName(t, model.Root, "Red").(*symbols.Enumerator)
	if !ok {
		t.Fatalf("Red is not an Enumerator in the file scope")
	}
	if basic, ok := red.Type.(types.Basic); !ok || basic.Kind != types.Int {
		t.Errorf("Red.Type = %#v, want Basic(Int)", red.Type)
	}
}

// Supplemented scenario: an array parameter type decays to a pointer
// with the arises-from-array-decay flag set (this module's
// parameter-decay addition, see DESIGN.md's session notes).
func TestBindParameterArrayDecay(t *testing.T) {
	param := synbuild.Param(
		[]syntax.Specifier{synbuild.Basic(token.KwInt)},
		synbuild.Array(synbuild.Ident("buf"), true),
	)
	fnDeclarator := synbuild.Fn(synbuild.Ident("f"), false, param)
	unit := synbuild.Unit(synbuild.Decl([]syntax.Specifier{synbuild.Basic(token.KwInt)}, fnDeclarator))

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	f, ok := findByName(t, model.Root, "f").(*symbols.Function)
	if !ok {
		t.Fatalf("f is not a Function")
	}
	fnType, ok := f.Type.(types.Function)
	if !ok || len(fnType.Parameters) != 1 {
		t.Fatalf("f.Type = %#v, want a one-parameter Function", f.Type)
	}
	ptr, ok := fnType.Parameters[0].(types.Pointer)
	if !ok || !ptr.ArisesFromArrayDecay {
		t.Errorf("parameter type = %#v, want a Pointer with ArisesFromArrayDecay", fnType.Parameters[0])
	}
}

// Function definitions stash the prototype scope built while unwinding
// the declarator and re-open it as the body scope, so parameters stay
// visible inside the compound statement (spec.md §4.5).
func TestBindFunctionDefinitionParametersVisibleInBody(t *testing.T) {
	param := synbuild.Param([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("n"))
	fnDeclarator := synbuild.Fn(synbuild.Ident("f"), false, param)
	localDecl := synbuild.Decl([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("m"))
	body := synbuild.Block(synbuild.DeclStmt(localDecl))
	def := synbuild.Func([]syntax.Specifier{synbuild.Basic(token.KwInt)}, fnDeclarator, body)
	unit := synbuild.Unit(def)

	tree, b := bindUnit(t, unit)
	model := b.Bind()

	if len(tree.Diagnostics()) != 0 {
		t.Fatalf("Diagnostics = %v, want none", tree.Diagnostics())
	}
	f, ok := findByName(t, model.Root, "f").(*symbols.Function)
	if !ok {
		t.Fatalf("f is not a Function")
	}
	if f.BodyScope == nil {
		t.Fatalf("f.BodyScope is nil")
	}
	if _, ok := findByName(t, f.BodyScope, "n").(*symbols.Parameter); !ok {
		t.Errorf("parameter n is not visible in f's body scope")
	}
}

// Idempotence (spec.md §8): binding two identically built trees into
// fresh models produces the same number of diagnostics and an equal
// type for the declared variable.
func TestBindIsIdempotentAcrossRuns(t *testing.T) {
	build := func() *syntax.TranslationUnit {
		return synbuild.Unit(
			synbuild.Decl([]syntax.Specifier{synbuild.Basic(token.KwInt)}, synbuild.Ident("x")),
		)
	}

	tree1, b1 := bindUnit(t, build())
	model1 := b1.Bind()
	tree2, b2 := bindUnit(t, build())
	model2 := b2.Bind()

	if len(tree1.Diagnostics()) != len(tree2.Diagnostics()) {
		t.Fatalf("diagnostic counts differ: %d vs %d", len(tree1.Diagnostics()), len(tree2.Diagnostics()))
	}
	x1, _ := findByName(t, model1.Root, "x").(*symbols.Variable)
	x2, _ := findByName(t, model2.Root, "x").(*symbols.Variable)
	if x1.Type != x2.Type {
		t.Errorf("x.Type differs across runs: %#v vs %#v", x1.Type, x2.Type)
	}
}

func diagnosticIDs(tree *syntax.SyntaxTree) []string {
	diags := tree.Diagnostics()
	ids := make([]string, len(diags))
	for i, d := range diags {
		ids[i] = string(d.StableID)
	}
	return ids
}
