package binder

import (
	"github.com/clayne/psychec/internal/ident"
	"github.com/clayne/psychec/internal/symbols"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/token"
	"github.com/clayne/psychec/internal/types"
)

func tagKindOf(kw token.Kind) types.TagKind {
	switch kw {
	case token.KwUnion:
		return types.UnionTag
	case token.KwEnum:
		return types.EnumTag
	default:
		return types.StructTag
	}
}

func newTagSymbol(kind types.TagKind) symbols.Symbol {
	switch kind {
	case types.UnionTag:
		return &symbols.Union{}
	case types.EnumTag:
		return &symbols.Enum{}
	default:
		return &symbols.Struct{}
	}
}

// setTagFields and setTagMembersScope exist because Struct, Union and
// Enum are three distinct Go types that each embed
// symbols.TagDeclaration rather than one shared concrete type — so a
// symbols.Symbol holding one of them needs a type switch to reach the
// embedded fields, same as any other sum-of-structs in this codebase.
func setTagFields(sym symbols.Symbol, name *ident.Identifier, tagType types.Tag) {
	switch s := sym.(type) {
	case *symbols.Struct:
		s.Name, s.Type = name, tagType
	case *symbols.Union:
		s.Name, s.Type = name, tagType
	case *symbols.Enum:
		s.Name, s.Type = name, tagType
	}
}

func setTagMembersScope(sym symbols.Symbol, scope *symbols.Scope) {
	switch s := sym.(type) {
	case *symbols.Struct:
		s.Members = scope
	case *symbols.Union:
		s.Members = scope
	case *symbols.Enum:
		s.Members = scope
	}
}

// VisitStructOrUnionDeclaration and VisitEnumDeclaration both bind a
// tag declaration form (spec.md §4.3): possibly with a body, possibly
// with trailing declarators sharing the tag as their base type
// (`struct S { int a; } x;`).
func (b *Binder) VisitStructOrUnionDeclaration(n *syntax.TagDeclaration) { b.bindTagDeclarationForm(n) }
func (b *Binder) VisitEnumDeclaration(n *syntax.TagDeclaration)          { b.bindTagDeclarationForm(n) }

func (b *Binder) bindTagDeclarationForm(n *syntax.TagDeclaration) {
	b.bindTagDeclaration(n)
	base := b.popType()
	for _, d := range n.Declarators {
		b.bindOrdinaryDeclarator(d, base)
	}
}

// bindTagDeclaration implements spec.md §4.3's with-body and
// without-body cases, pushing the resulting Tag type for the caller —
// either a standalone tag declaration form (discarded if there are no
// trailing declarators) or a TagTypeSpecifier nested inside another
// declaration's specifier list (SPEC_FULL.md §5's re-push case calls
// this too, then pushes a second, independent Tag value of its own).
func (b *Binder) bindTagDeclaration(n *syntax.TagDeclaration) {
	kind := tagKindOf(n.Tok.Kind)
	name := b.tree.FindIdentifier(n.TagName)
	tagType := types.Tag{Kind: kind, Name: name}

	if n.Members == nil {
		b.pushType(tagType)
		return
	}

	sym := newTagSymbol(kind)
	attachHeader(sym.Header(), b.currentSymbol(), b.currentScope(), n)
	setTagFields(sym, name, tagType)

	if !name.IsEmpty() {
		b.currentScope().Insert(name, sym)
	}
	b.model.KeepDeclaration(n, sym)

	b.pushSymbol(sym)
	members := b.openScope(symbols.TagMembersScope)
	setTagMembersScope(sym, members)

	for _, member := range n.Members {
		// Member type construction must never leak into the outer
		// declaration's specifiers: the type stack is saved and
		// replaced by a fresh one-sentinel stack around *each* member
		// declaration individually, not once around the whole member
		// list (spec.md §4.3, SPEC_FULL.md §5).
		saved := b.types
		b.types = []types.Type{nil}
		member.Accept(b)
		b.types = saved
	}

	b.closeScope()
	b.popSymbol()

	// GNU __attribute__ lists carry no type content; walked only so a
	// tag declaration that happens to carry one doesn't skip the same
	// Accept-dispatch discipline every other node gets (SPEC_FULL.md §6.4).
	for _, attr := range n.Attributes {
		attr.Accept(b)
	}

	b.pushType(tagType)
}

// bindTagTypeSpecifier binds a struct/union/enum specifier appearing
// inline in another declaration's specifier list. A bare reference
// (`struct S` in `struct S x;`) just pushes a Tag type: no new symbol,
// the tag is looked up (or created lazily) at use. A body form binds
// the nested tag declaration fully, then re-pushes a second, structurally
// equal Tag value for the outer declarator phase to consume
// (SPEC_FULL.md §5).
func (b *Binder) bindTagTypeSpecifier(sp *syntax.TagTypeSpecifier) {
	if sp.Inner == nil {
		tagType := types.Tag{Kind: tagKindOf(sp.Tok.Kind), Name: b.tree.FindIdentifier(sp.TagName)}
		b.pushType(tagType)
		return
	}
	b.bindTagDeclaration(sp.Inner)
	b.popType() // discard the Tag pushed for sp.Inner as a standalone form
	outer := types.Tag{Kind: tagKindOf(sp.Inner.Tok.Kind), Name: b.tree.FindIdentifier(sp.Inner.TagName)}
	b.pushType(outer)
}

// VisitFieldDeclaration binds a struct/union member declaration. Each
// declarator is bound against its own clone of the member base type
// (spec.md §4.1); the optional bit-field width syntax node is carried
// on the Field symbol unevaluated (constant folding is a Non-goal,
// SPEC_FULL.md §6.2).
func (b *Binder) VisitFieldDeclaration(n *syntax.FieldDeclaration) {
	b.bindSpecifiers(n.Specifiers, n.Tok)
	base := b.popType()
	for i, d := range n.Declarators {
		name, named := syntax.DeclaratorName(d)
		typ := b.unwindDeclarator(d, base, name)
		nameIdent := b.tree.Idents().Empty()
		if named {
			nameIdent = b.tree.FindIdentifier(name)
		}
		var bitWidth syntax.Node
		if i < len(n.BitWidths) {
			bitWidth = n.BitWidths[i]
		}
		field := &symbols.Field{Name: nameIdent, Type: typ, BitWidth: bitWidth}
		attachHeader(&field.Header, b.currentSymbol(), b.currentScope(), d)
		if named {
			b.currentScope().Insert(nameIdent, field)
		}
		b.model.KeepDeclaration(d, field)
	}
}

// VisitEnumeratorDeclaration binds one enum member. Enumerators are
// declared in the enum's *enclosing* scope, not its TagMembers scope
// (spec.md §4.3) — the current scope during this call is the enum's
// Members scope, so the enclosing scope is read off the enum symbol's
// own header instead.
func (b *Binder) VisitEnumeratorDeclaration(n *syntax.EnumeratorDeclaration) {
	nameIdent := b.tree.FindIdentifier(n.Name)
	enclosing := b.currentScope()
	if enumSym, ok := b.currentSymbol().(*symbols.Enum); ok {
		enclosing = enumSym.Header().Enclosing
	}
	e := &symbols.Enumerator{Name: nameIdent, Type: types.Basic{Kind: types.Int}}
	attachHeader(&e.Header, b.currentSymbol(), enclosing, n)
	enclosing.Insert(nameIdent, e)
	b.model.KeepDeclaration(n, e)
}
