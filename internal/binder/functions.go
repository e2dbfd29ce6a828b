package binder

import (
	"github.com/clayne/psychec/internal/symbols"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/types"
)

// VisitParameterDeclaration binds one function-prototype parameter in
// the current (FunctionPrototype) scope. It is also reachable directly
// as bindParameterDeclaration from unwindDeclarator's FunctionDeclarator
// case, which needs the parameter's Type for the enclosing Function
// type — the Visitor interface itself returns nothing, so the
// FunctionDeclarator case calls the underlying method directly instead
// of going through Accept.
func (b *Binder) VisitParameterDeclaration(n *syntax.ParameterDeclaration) {
	b.bindParameterDeclaration(n)
}

func (b *Binder) bindParameterDeclaration(n *syntax.ParameterDeclaration) types.Type {
	b.bindSpecifiers(n.Specifiers, n.Tok)
	base := b.popType()
	if n.Declarator == nil {
		// An abstract parameter (`int f(int)`) has no name to declare.
		return base
	}
	name, named := syntax.DeclaratorName(n.Declarator)
	typ := decayParameterType(b.unwindDeclarator(n.Declarator, base, name))

	nameIdent := b.tree.Idents().Empty()
	if named {
		nameIdent = b.tree.FindIdentifier(name)
	}
	param := &symbols.Parameter{Name: nameIdent, Type: typ}
	attachHeader(&param.Header, b.currentSymbol(), b.currentScope(), n.Declarator)
	if named {
		b.currentScope().Insert(nameIdent, param)
	}
	b.model.KeepDeclaration(n.Declarator, param)
	return typ
}

// decayParameterType applies C's array-to-pointer and
// function-to-pointer parameter decay, the one place types.Pointer's
// ArisesFromArrayDecay/ArisesFromFunctionDecay flags get set by this
// binder (spec.md §3 names the fields; nothing in spec.md §4 spells out
// parameter decay explicitly, but the type model commits to tracking
// it, so a complete implementation needs to populate it somewhere).
func decayParameterType(t types.Type) types.Type {
	base, quals := types.Unqualify(t)
	switch bt := base.(type) {
	case types.Array:
		p := types.Type(types.Pointer{Referenced: bt.Element, ArisesFromArrayDecay: true})
		if !quals.Empty() {
			p = types.NewQualified(p, quals)
		}
		return p
	case types.Function:
		return types.Pointer{Referenced: base, ArisesFromFunctionDecay: true}
	default:
		return t
	}
}

// VisitFunctionDefinition binds a function definition (spec.md §4.5):
// same declarator-unwinding as a prototype, except the
// FunctionPrototype scope built while unwinding is stashed rather than
// closed, then re-opened as the function's body scope so parameters
// stay visible in the body, with a nested Block scope for the
// compound statement itself.
func (b *Binder) VisitFunctionDefinition(n *syntax.FunctionDefinition) {
	b.bindSpecifiers(n.Specifiers, n.Tok)
	base := b.popType()
	name, named := syntax.DeclaratorName(n.Declarator)

	b.inFunctionDefinition = true
	typ := b.unwindDeclarator(n.Declarator, base, name)
	b.inFunctionDefinition = false

	nameIdent := b.tree.Idents().Empty()
	if named {
		nameIdent = b.tree.FindIdentifier(name)
	}
	fn := &symbols.Function{Name: nameIdent, Type: typ}
	attachHeader(&fn.Header, b.currentSymbol(), b.currentScope(), n)
	if named {
		b.currentScope().Insert(nameIdent, fn)
	}
	b.model.KeepDeclaration(n, fn)

	proto := b.stashedScope
	b.stashedScope = nil

	b.pushSymbol(fn)
	if proto == nil {
		// A malformed definition whose declarator was never a function
		// shape at all; open a fresh, empty prototype scope so body
		// binding still has somewhere to nest.
		proto = b.openScope(symbols.FunctionPrototypeScope)
	} else {
		b.pushExistingScope(proto)
	}
	fn.BodyScope = proto
	b.openScope(symbols.BlockScope)
	for _, stmt := range n.Body.Statements {
		stmt.Accept(b)
	}
	b.closeScope() // block
	b.closeScope() // proto/body scope
	b.popSymbol()
}
