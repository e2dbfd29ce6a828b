package binder

import (
	"github.com/clayne/psychec/internal/symbols"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/types"
)

// unwindDeclarator implements spec.md §4.4: walk d's outermost operator
// first, wrapping t accordingly, and recurse inward. Reading the
// declarator outside-in this way produces the same composition a
// C reader gets reading it inside-out (`*a[10]` parses as
// Pointer{Array{Inner}}, since array/call bind tighter than the
// unary '*' the parser already resolved into this nesting) — applying
// the outer operator to t and only then descending into Inner yields
// the correct nesting without the binder needing its own precedence
// logic. t is passed by value throughout: every types.Type here is an
// immutable value, so each declarator's "clone" of the specifier base
// (spec.md §4.1) is simply this function's own t parameter.
func (b *Binder) unwindDeclarator(d syntax.Declarator, t types.Type, name string) types.Type {
	switch dd := d.(type) {
	case *syntax.IdentifierDeclarator:
		return t
	case *syntax.AbstractDeclarator:
		return t
	case *syntax.ParenDeclarator:
		return b.unwindDeclarator(dd.Inner, t, name)
	case *syntax.PointerDeclarator:
		p := types.Type(types.Pointer{Referenced: t})
		p = b.applyQualifiers(p, dd.Qualifiers)
		return b.unwindDeclarator(dd.Inner, p, name)
	case *syntax.ArrayDeclarator:
		if _, isFn := t.(types.Function); isFn {
			// spec.md §4.4 calls out "function" but not "array" as an
			// illegal array element in so many words; original_source
			// allocates no stable ID for "array of function" distinct
			// from the two named function-shape diagnostics, so this
			// falls back to the general invalid-type ID.
			b.diags.InvalidTypeAt(dd.Tok)
		}
		arr := types.Array{Element: t, Extent: types.ArrayExtent{Unbounded: dd.Unbounded}}
		return b.unwindDeclarator(dd.Inner, arr, name)
	case *syntax.FunctionDeclarator:
		if _, isFn := t.(types.Function); isFn {
			b.diags.FunctionReturningFunctionAt(dd.Tok, name)
		}
		if _, isArr := t.(types.Array); isArr {
			b.diags.FunctionReturningArrayAt(dd.Tok, name)
		}
		scope := b.openScope(symbols.FunctionPrototypeScope)
		params := make([]types.Type, 0, len(dd.Parameters))
		for _, p := range dd.Parameters {
			params = append(params, b.bindParameterDeclaration(p))
		}
		// Unwinding is outside-in, so the last function declarator to
		// reach this point is the innermost one: the parameter list of
		// the function being defined. Each later one replaces the stash.
		if b.inFunctionDefinition {
			b.stashedScope = scope
		}
		b.closeScope()
		fn := types.Function{Result: t, Parameters: params, Variadic: dd.Variadic}
		return b.unwindDeclarator(dd.Inner, fn, name)
	default:
		return t
	}
}

// bindOrdinaryDeclarator unwinds d against base and inserts the
// resulting Variable or Function (prototype, no body) symbol into the
// current scope — shared by VariableAndOrFunctionDeclaration and a tag
// declaration's trailing declarators (`struct S { ... } x;`).
func (b *Binder) bindOrdinaryDeclarator(d syntax.Declarator, base types.Type) {
	name, named := syntax.DeclaratorName(d)
	typ := b.unwindDeclarator(d, base, name)
	nameIdent := b.tree.Idents().Empty()
	if named {
		nameIdent = b.tree.FindIdentifier(name)
	}

	var sym symbols.Symbol
	if _, isFn := typ.(types.Function); isFn {
		fn := &symbols.Function{Name: nameIdent, Type: typ}
		attachHeader(&fn.Header, b.currentSymbol(), b.currentScope(), d)
		sym = fn
	} else {
		v := &symbols.Variable{Name: nameIdent, Type: typ}
		attachHeader(&v.Header, b.currentSymbol(), b.currentScope(), d)
		sym = v
	}
	if named {
		b.currentScope().Insert(nameIdent, sym)
	}
	b.model.KeepDeclaration(d, sym)
}

// VisitVariableAndOrFunctionDeclaration binds one specifier sequence
// shared by one or more declarators, each independently producing a
// Variable or a Function declaration depending on its own declarator
// shape (spec.md §4.1, §4.4).
func (b *Binder) VisitVariableAndOrFunctionDeclaration(n *syntax.VariableAndOrFunctionDeclaration) {
	b.bindSpecifiers(n.Specifiers, n.Tok)
	base := b.popType()
	if len(n.Declarators) == 0 {
		// `int;` — a valid type, but no declarator: declares nothing
		// (spec.md §4.6, Binder-000).
		b.diags.UselessDeclarationAt(n.Tok)
		return
	}
	for _, d := range n.Declarators {
		b.bindOrdinaryDeclarator(d, base)
	}
}

// VisitTypedefDeclaration binds a `typedef` declaration: each
// declarator names a Typedef symbol whose DefinedType is the
// Typedef{name} reference other declarations see when they use this
// name, and whose SynonymizedType is the declarator-produced type
// (spec.md §4.4's "Typedef" subsection). Resolution of DefinedType to
// SynonymizedType is deferred to the external TypeResolver (spec.md
// §4.7); the binder never performs it itself.
func (b *Binder) VisitTypedefDeclaration(n *syntax.TypedefDeclaration) {
	b.bindSpecifiers(n.Specifiers, n.Tok)
	base := b.popType()
	for _, d := range n.Declarators {
		name, named := syntax.DeclaratorName(d)
		typ := b.unwindDeclarator(d, base, name)
		nameIdent := b.tree.Idents().Empty()
		if named {
			nameIdent = b.tree.FindIdentifier(name)
		}
		td := &symbols.Typedef{
			Name:            nameIdent,
			DefinedType:     types.Typedef{Name: nameIdent},
			SynonymizedType: typ,
		}
		attachHeader(&td.Header, b.currentSymbol(), b.currentScope(), d)
		if named {
			b.currentScope().Insert(nameIdent, td)
		}
		b.model.KeepDeclaration(d, td)
	}
}
