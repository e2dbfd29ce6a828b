package syntax

import "github.com/clayne/psychec/internal/token"

// Specifier is one element of a declaration's specifier sequence. The
// binder distinguishes type-qualifier specifiers from every other kind
// via IsQualifier, so it can walk the sequence twice (spec.md §4.1's
// "non-qualifier pass, then qualifier pass").
type Specifier interface {
	Node
	IsQualifier() bool
}

// BasicTypeSpecifier is one basic-type keyword (char, int, signed, …).
type BasicTypeSpecifier struct {
	Tok token.Token
}

func (s *BasicTypeSpecifier) Token() token.Token { return s.Tok }
func (s *BasicTypeSpecifier) Accept(v Visitor)   {}
func (s *BasicTypeSpecifier) IsQualifier() bool  { return false }

// VoidTypeSpecifier is the `void` keyword used as a type specifier.
type VoidTypeSpecifier struct {
	Tok token.Token
}

func (s *VoidTypeSpecifier) Token() token.Token { return s.Tok }
func (s *VoidTypeSpecifier) Accept(v Visitor)   {}
func (s *VoidTypeSpecifier) IsQualifier() bool  { return false }

// TypeQualifier is one of const/volatile/restrict/_Atomic used as a
// qualifier (as opposed to _Atomic's separate C11 specifier form,
// which this module does not model — see SPEC_FULL.md §6.1).
type TypeQualifier struct {
	Tok token.Token
}

func (s *TypeQualifier) Token() token.Token { return s.Tok }
func (s *TypeQualifier) Accept(v Visitor)   {}
func (s *TypeQualifier) IsQualifier() bool  { return true }

// TypedefNameSpecifier references a name previously introduced by a
// typedef declaration.
type TypedefNameSpecifier struct {
	Tok  token.Token
	Name string
}

func (s *TypedefNameSpecifier) Token() token.Token { return s.Tok }
func (s *TypedefNameSpecifier) Accept(v Visitor)   {}
func (s *TypedefNameSpecifier) IsQualifier() bool  { return false }

// TagTypeSpecifier is a struct/union/enum specifier appearing inline in
// another declaration's specifier list, e.g. the `struct S { ... }` in
// `struct S { ... } x;`, or a bare reference `struct S` in `struct S x;`.
// Inner is nil for a bare reference, in which case TagName carries the
// referenced tag's spelling (empty for an invalid anonymous reference).
type TagTypeSpecifier struct {
	Tok     token.Token
	TagName string
	Inner   *TagDeclaration
}

func (s *TagTypeSpecifier) Token() token.Token { return s.Tok }
func (s *TagTypeSpecifier) Accept(v Visitor)   {}
func (s *TagTypeSpecifier) IsQualifier() bool  { return false }
