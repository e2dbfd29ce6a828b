package binder

import (
	"github.com/clayne/psychec/internal/config"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/token"
	"github.com/clayne/psychec/internal/types"
)

// bindSpecifiers implements spec.md §4.1's specifier phase: the
// non-qualifier pass builds the base type (pushing exactly one new
// entry onto the type stack), then the qualifier pass wraps it in
// Qualified. It leaves the resulting base type on top of the type
// stack for the caller to pop (declarations with no declarator) or
// clone across declarators (spec.md §4.1's declarator phase).
//
// original_source's visitDeclaration_AtSpecifiers_COMMON walks the
// same specifier list twice, filtering each pass rather than
// pre-partitioning it (SPEC_FULL.md §5) — bindNonQualifierSpecifiers
// and the qualifier loop below do the same.
func (b *Binder) bindSpecifiers(specs []syntax.Specifier, declTok token.Token) {
	baseline := b.typeDepth()
	b.bindNonQualifierSpecifiers(specs)
	if b.typeDepth() == baseline {
		b.pushType(types.Basic{Kind: types.Int})
		b.diags.TypeSpecifierMissingDefaultsToIntAt(declTok)
	}

	var quals []syntax.Specifier
	for _, s := range specs {
		if s.IsQualifier() {
			quals = append(quals, s)
		}
	}
	if len(quals) > 0 {
		b.setTopType(b.applyQualifiers(b.topType(), quals))
	}
}

// bindNonQualifierSpecifiers walks every non-qualifier specifier in
// order, composing basic-type keywords and rejecting a second
// unrelated data type (spec.md §4.2's "two or more data types").
func (b *Binder) bindNonQualifierSpecifiers(specs []syntax.Specifier) {
	sawDataType := false
	for _, s := range specs {
		if s.IsQualifier() {
			continue
		}
		switch sp := s.(type) {
		case *syntax.BasicTypeSpecifier:
			b.composeBasicSpecifier(sp, &sawDataType)
		case *syntax.VoidTypeSpecifier:
			if sawDataType {
				b.diags.TwoOrMoreDataTypesAt(sp.Tok)
				continue
			}
			b.pushType(types.Void{})
			sawDataType = true
		case *syntax.TypedefNameSpecifier:
			if sawDataType {
				b.diags.TwoOrMoreDataTypesAt(sp.Tok)
				continue
			}
			b.pushType(types.Typedef{Name: b.tree.FindIdentifier(sp.Name)})
			sawDataType = true
		case *syntax.TagTypeSpecifier:
			if sawDataType {
				b.diags.TwoOrMoreDataTypesAt(sp.Tok)
				continue
			}
			b.bindTagTypeSpecifier(sp)
			sawDataType = true
		}
	}
}

// composeBasicSpecifier applies one basic-type keyword to the
// in-progress base type: the first keyword pushes a fresh Basic, every
// subsequent one composes onto it per the table in spec.md §4.2 (see
// composeBasicKind). original_source mutates the top BasicType's kind
// in place; our types.Basic is a plain immutable value, so composing
// replaces the stack's top slot instead (SPEC_FULL.md §5).
func (b *Binder) composeBasicSpecifier(sp *syntax.BasicTypeSpecifier, sawDataType *bool) {
	kw := sp.Tok.Kind
	if !*sawDataType {
		kind, ok := initialBasicKind(kw)
		if !ok {
			b.diags.InvalidTypeAt(sp.Tok)
			return
		}
		b.pushType(types.Basic{Kind: kind})
		*sawDataType = true
		return
	}
	top, ok := b.topType().(types.Basic)
	if !ok {
		b.diags.TwoOrMoreDataTypesAt(sp.Tok)
		return
	}
	next, ok := composeBasicKind(top.Kind, kw, b.options)
	if !ok {
		b.diags.TwoOrMoreDataTypesAt(sp.Tok)
		return
	}
	b.setTopType(types.Basic{Kind: next})
}

// initialBasicKind is the "empty top" row of spec.md §4.2's table: the
// kind a basic-type keyword starts a specifier sequence with.
func initialBasicKind(kw token.Kind) (types.BasicKind, bool) {
	switch kw {
	case token.KwChar:
		return types.Char, true
	case token.KwShort:
		return types.Short, true
	case token.KwInt:
		return types.Int, true
	case token.KwLong:
		return types.Long, true
	case token.KwFloat:
		return types.Float, true
	case token.KwDouble:
		return types.Double, true
	case token.KwBool:
		return types.Bool, true
	case token.KwSigned:
		return types.Int_S, true
	case token.KwUnsigned:
		return types.Int_U, true
	case token.KwComplex:
		return types.DoubleComplex, true
	default:
		return 0, false
	}
}

// composeBasicKind implements the rest of spec.md §4.2's composition
// table, plus the supplemented long-long and _Complex-with-floating-
// base extensions (SPEC_FULL.md §5), gated by opts. It also resolves
// spec.md §9's Open Question: signed/unsigned re-applied to an already
// signed/unsigned variant of the same rank falls through to the
// default `return top, false`, which the caller reports as "two or
// more data types" rather than silently keeping the existing kind.
func composeBasicKind(top types.BasicKind, kw token.Kind, opts config.BinderOptions) (types.BasicKind, bool) {
	switch top {
	case types.Char:
		switch kw {
		case token.KwSigned:
			return types.Char_S, true
		case token.KwUnsigned:
			return types.Char_U, true
		}
	case types.Short:
		switch kw {
		case token.KwSigned:
			return types.Short_S, true
		case token.KwUnsigned:
			return types.Short_U, true
		case token.KwInt:
			return types.Short, true
		}
	case types.Short_S:
		if kw == token.KwInt {
			return types.Short_S, true
		}
	case types.Short_U:
		if kw == token.KwInt {
			return types.Short_U, true
		}
	case types.Int:
		switch kw {
		case token.KwLong:
			return types.Long, true
		case token.KwSigned:
			return types.Int_S, true
		case token.KwUnsigned:
			return types.Int_U, true
		}
	case types.Int_S:
		if kw == token.KwLong {
			return types.Long_S, true
		}
	case types.Int_U:
		if kw == token.KwLong {
			return types.Long_U, true
		}
	case types.Long:
		switch kw {
		case token.KwInt:
			return types.Long, true
		case token.KwDouble:
			return types.LongDouble, true
		case token.KwSigned:
			return types.Long_S, true
		case token.KwUnsigned:
			return types.Long_U, true
		case token.KwLong:
			if opts.LongLong {
				return types.LongLong, true
			}
		}
	case types.Long_S:
		switch kw {
		case token.KwInt:
			return types.Long_S, true
		case token.KwLong:
			if opts.LongLong {
				return types.LongLong_S, true
			}
		}
	case types.Long_U:
		switch kw {
		case token.KwInt:
			return types.Long_U, true
		case token.KwLong:
			if opts.LongLong {
				return types.LongLong_U, true
			}
		}
	case types.LongLong:
		if kw == token.KwInt {
			return types.LongLong, true
		}
	case types.LongLong_S:
		if kw == token.KwInt {
			return types.LongLong_S, true
		}
	case types.LongLong_U:
		if kw == token.KwInt {
			return types.LongLong_U, true
		}
	case types.Float:
		if kw == token.KwComplex && opts.ComplexFloating {
			return types.FloatComplex, true
		}
	case types.Double:
		switch kw {
		case token.KwComplex:
			return types.DoubleComplex, true
		case token.KwLong:
			return types.LongDouble, true
		}
	case types.LongDouble:
		if kw == token.KwComplex && opts.ComplexFloating {
			return types.LongDoubleComplex, true
		}
	}
	return top, false
}

// applyQualifiers merges every qualifier specifier in quals onto base,
// enforcing spec.md §3's "restrict only admissible on a Pointer"
// invariant: an inadmissible restrict is reported and dropped rather
// than applied (spec.md §4.6, Binder-300-6.7.3-2).
func (b *Binder) applyQualifiers(base types.Type, quals []syntax.Specifier) types.Type {
	var q types.Qualifiers
	for _, s := range quals {
		tq, ok := s.(*syntax.TypeQualifier)
		if !ok {
			continue
		}
		switch tq.Tok.Kind {
		case token.KwConst:
			q.Const = true
		case token.KwVolatile:
			q.Volatile = true
		case token.KwAtomic:
			q.Atomic = true
		case token.KwRestrict:
			if !types.IsPointer(base) {
				b.diags.InvalidUseOfRestrictAt(tq.Tok)
				continue
			}
			q.Restrict = true
		}
	}
	if q.Empty() {
		return base
	}
	return types.NewQualified(base, q)
}
