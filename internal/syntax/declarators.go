package syntax

import "github.com/clayne/psychec/internal/token"

// Declarator is the identifier-bearing shape wrapped around a
// specifier base (spec.md §4.4). The binder walks it outside-in via a
// type switch rather than a dedicated Visitor — the declarator
// taxonomy is closed and small enough that Go's type switch is the
// idiomatic match (as in the standard library's own go/ast.Inspect).
// Declarator embeds Node (a no-op Accept) solely so each declarator,
// not just its enclosing declaration, can be a distinct keep_* key —
// spec.md §6's "each node maps to at most one symbol" otherwise
// couldn't distinguish `a, b` in `int a, b;`.
type Declarator interface {
	Node
	isDeclarator()
}

// IdentifierDeclarator is the terminal declarator: just a name.
type IdentifierDeclarator struct {
	Tok  token.Token
	Name string
}

func (d *IdentifierDeclarator) Token() token.Token { return d.Tok }
func (d *IdentifierDeclarator) Accept(v Visitor)    {}
func (*IdentifierDeclarator) isDeclarator()         {}

// AbstractDeclarator is a declarator with no identifier (an unnamed
// parameter, or a type name used without a declarator).
type AbstractDeclarator struct {
	Tok token.Token
}

func (d *AbstractDeclarator) Token() token.Token { return d.Tok }
func (d *AbstractDeclarator) Accept(v Visitor)    {}
func (*AbstractDeclarator) isDeclarator()         {}

// ParenDeclarator groups a declarator for precedence, e.g. the `(D)` in
// `int (*f)(void)`. It does not itself change the wrapped type.
type ParenDeclarator struct {
	Tok   token.Token
	Inner Declarator
}

func (d *ParenDeclarator) Token() token.Token { return d.Tok }
func (d *ParenDeclarator) Accept(v Visitor)    {}
func (*ParenDeclarator) isDeclarator()         {}

// PointerDeclarator is `* qualifiers D`.
type PointerDeclarator struct {
	Tok        token.Token
	Qualifiers []Specifier // each element's IsQualifier() is true
	Inner      Declarator
}

func (d *PointerDeclarator) Token() token.Token { return d.Tok }
func (d *PointerDeclarator) Accept(v Visitor)    {}
func (*PointerDeclarator) isDeclarator()         {}

// ArrayDeclarator is `D [extent]`. It carries no size — constant
// evaluation of the extent expression is out of scope (spec.md
// Non-goals); Unbounded distinguishes `D[]` from `D[n]`.
type ArrayDeclarator struct {
	Tok       token.Token
	Inner     Declarator
	Unbounded bool
}

func (d *ArrayDeclarator) Token() token.Token { return d.Tok }
func (d *ArrayDeclarator) Accept(v Visitor)    {}
func (*ArrayDeclarator) isDeclarator()         {}

// FunctionDeclarator is `D (parameters)`.
type FunctionDeclarator struct {
	Tok        token.Token
	Inner      Declarator
	Parameters []*ParameterDeclaration
	Variadic   bool
}

func (d *FunctionDeclarator) Token() token.Token { return d.Tok }
func (d *FunctionDeclarator) Accept(v Visitor)    {}
func (*FunctionDeclarator) isDeclarator()         {}

// DeclaratorName returns the identifier ultimately named by d and true,
// or "" and false if d names nothing (an AbstractDeclarator anywhere in
// the chain).
func DeclaratorName(d Declarator) (string, bool) {
	for {
		switch n := d.(type) {
		case *IdentifierDeclarator:
			return n.Name, true
		case *AbstractDeclarator:
			return "", false
		case *ParenDeclarator:
			d = n.Inner
		case *PointerDeclarator:
			d = n.Inner
		case *ArrayDeclarator:
			d = n.Inner
		case *FunctionDeclarator:
			d = n.Inner
		default:
			return "", false
		}
	}
}
