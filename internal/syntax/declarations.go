package syntax

import "github.com/clayne/psychec/internal/token"

// TranslationUnit is the root of a bound syntax tree.
type TranslationUnit struct {
	Tok          token.Token
	Declarations []Node
}

func (n *TranslationUnit) Token() token.Token   { return n.Tok }
func (n *TranslationUnit) Accept(v Visitor)     { v.VisitTranslationUnit(n) }

// IncompleteDeclaration is a declaration that declares nothing: a bare
// `;` terminating a specifier sequence with no declarator and no tag
// body of its own (spec.md §4.6, Binder-000). Scenario 3 in spec.md §8
// (`x;`) is modeled as an IncompleteDeclaration whose Specifiers list
// is empty, mirroring original_source's dedicated
// visitIncompleteDeclaration entry point rather than deriving the case
// from a zero-declarator VariableAndOrFunctionDeclaration.
type IncompleteDeclaration struct {
	Tok         token.Token
	Specifiers  []Specifier
}

func (n *IncompleteDeclaration) Token() token.Token { return n.Tok }
func (n *IncompleteDeclaration) Accept(v Visitor)   { v.VisitIncompleteDeclaration(n) }

// TagDeclaration is a struct, union or enum declaration. Members is nil
// for a bare reference (`struct S x;`); non-nil (possibly empty) for a
// declaration that introduces the tag's body. Declarators is non-empty
// only when the tag declaration itself also declares objects, e.g.
// `struct S { int a; } x;`. Attributes holds any GNU-style
// `__attribute__((...))` lists trailing the tag keyword or its closing
// brace (`original_source`'s `attributes()`/`attributes_PostCloseBrace()`
// pair) — the binder visits them only to keep stack discipline uniform
// across declaration shapes; neither contributes anything to the bound
// type (SPEC_FULL.md §6.4).
type TagDeclaration struct {
	Tok         token.Token
	TagName     string // empty for an anonymous tag
	Members     []Node // nil: reference form; non-nil: body form
	Declarators []Declarator
	Attributes  []Node
}

func (n *TagDeclaration) Token() token.Token { return n.Tok }
func (n *TagDeclaration) Accept(v Visitor) {
	// Dispatch is disambiguated by the concrete keyword the tree
	// builder recorded on Tok.Kind (KwStruct/KwUnion/KwEnum); the
	// binder's VisitStructOrUnionDeclaration/VisitEnumDeclaration both
	// accept *TagDeclaration and switch on Tok.Kind internally. Both
	// visitor methods are wired to the same node type so the tree
	// builder does not need two near-identical struct literals.
	if n.Tok.Kind == token.KwEnum {
		v.VisitEnumDeclaration(n)
		return
	}
	v.VisitStructOrUnionDeclaration(n)
}

// TypedefDeclaration introduces one or more typedef names.
type TypedefDeclaration struct {
	Tok         token.Token
	Specifiers  []Specifier
	Declarators []Declarator
}

func (n *TypedefDeclaration) Token() token.Token { return n.Tok }
func (n *TypedefDeclaration) Accept(v Visitor)   { v.VisitTypedefDeclaration(n) }

// VariableAndOrFunctionDeclaration declares one or more variables
// and/or function prototypes sharing one specifier sequence.
type VariableAndOrFunctionDeclaration struct {
	Tok         token.Token
	Specifiers  []Specifier
	Declarators []Declarator
}

func (n *VariableAndOrFunctionDeclaration) Token() token.Token { return n.Tok }
func (n *VariableAndOrFunctionDeclaration) Accept(v Visitor) {
	v.VisitVariableAndOrFunctionDeclaration(n)
}

// FunctionDefinition is a function declarator followed by a body
// (spec.md §4.5).
type FunctionDefinition struct {
	Tok        token.Token
	Specifiers []Specifier
	Declarator Declarator
	Body       *CompoundStatement
}

func (n *FunctionDefinition) Token() token.Token { return n.Tok }
func (n *FunctionDefinition) Accept(v Visitor)   { v.VisitFunctionDefinition(n) }

// FieldDeclaration is a struct/union member declaration.
type FieldDeclaration struct {
	Tok         token.Token
	Specifiers  []Specifier
	Declarators []Declarator
	// BitWidths, parallel to Declarators, is the syntax node for each
	// declarator's `: width` expression, or nil. Evaluation is out of
	// scope (spec.md Non-goals); the binder only records the node.
	BitWidths []Node
}

func (n *FieldDeclaration) Token() token.Token { return n.Tok }
func (n *FieldDeclaration) Accept(v Visitor)   { v.VisitFieldDeclaration(n) }

// EnumeratorDeclaration is one `identifier [= expr]` member of an enum.
type EnumeratorDeclaration struct {
	Tok  token.Token
	Name string
}

func (n *EnumeratorDeclaration) Token() token.Token { return n.Tok }
func (n *EnumeratorDeclaration) Accept(v Visitor)   { v.VisitEnumeratorDeclaration(n) }

// ParameterDeclaration is one parameter of a function prototype.
type ParameterDeclaration struct {
	Tok        token.Token
	Specifiers []Specifier
	Declarator Declarator // nil for an abstract parameter (no name)
}

func (n *ParameterDeclaration) Token() token.Token { return n.Tok }
func (n *ParameterDeclaration) Accept(v Visitor)   { v.VisitParameterDeclaration(n) }

// StaticAssertDeclaration is a `_Static_assert(...)` declaration. It
// binds nothing; the binder visits it only to preserve stack discipline
// across declaration lists (mirrors original_source's
// visitStaticAssertDeclaration no-op).
type StaticAssertDeclaration struct {
	Tok token.Token
}

func (n *StaticAssertDeclaration) Token() token.Token { return n.Tok }
func (n *StaticAssertDeclaration) Accept(v Visitor)   { v.VisitStaticAssertDeclaration(n) }

// CompoundStatement is a `{ ... }` block.
type CompoundStatement struct {
	Tok        token.Token
	Statements []Node
}

func (n *CompoundStatement) Token() token.Token { return n.Tok }
func (n *CompoundStatement) Accept(v Visitor)   { v.VisitCompoundStatement(n) }

// AttributeList is a GNU-style `__attribute__((...))` list. The binder
// walks it (for stack-discipline uniformity, SPEC_FULL.md §6.4) but it
// contributes nothing to the type or symbol being built; Accept is a
// no-op, same as a declarator's.
type AttributeList struct {
	Tok token.Token
}

func (n *AttributeList) Token() token.Token { return n.Tok }
func (n *AttributeList) Accept(v Visitor)   {}

// DeclarationStatement wraps a declaration appearing inside a function
// body.
type DeclarationStatement struct {
	Tok         token.Token
	Declaration Node
}

func (n *DeclarationStatement) Token() token.Token { return n.Tok }
func (n *DeclarationStatement) Accept(v Visitor)   { v.VisitDeclarationStatement(n) }
