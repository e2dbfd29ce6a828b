// Package syntax defines the C declaration syntax tree the binder
// consumes. Lexing and parsing are out of scope (spec.md §1); these
// node types are the fixed algebraic taxonomy a parser would produce —
// here they are constructed directly, by a future parser or by hand in
// tests, exactly as the binder only ever observes them (spec.md §6).
//
// Grounded on funvibe-funxy/internal/ast/ast_core.go's
// Node/Accept(Visitor) idiom, adapted to C's declaration grammar per
// original_source/C/binder/Binder.cpp's visitor method list and
// Binder_Specifiers.cpp's specifier/declarator shapes.
package syntax

import "github.com/clayne/psychec/internal/token"

// Node is implemented by every syntax tree element the binder visits.
type Node interface {
	Accept(v Visitor)
	Token() token.Token
}

// Visitor dispatches over every Node kind the binder understands. A
// method that is not relevant to a given traversal (e.g. a Binder that
// does not care about statements below a function body) may no-op.
type Visitor interface {
	VisitTranslationUnit(n *TranslationUnit)
	VisitIncompleteDeclaration(n *IncompleteDeclaration)
	VisitStructOrUnionDeclaration(n *TagDeclaration)
	VisitEnumDeclaration(n *TagDeclaration)
	VisitTypedefDeclaration(n *TypedefDeclaration)
	VisitVariableAndOrFunctionDeclaration(n *VariableAndOrFunctionDeclaration)
	VisitFunctionDefinition(n *FunctionDefinition)
	VisitFieldDeclaration(n *FieldDeclaration)
	VisitEnumeratorDeclaration(n *EnumeratorDeclaration)
	VisitParameterDeclaration(n *ParameterDeclaration)
	VisitStaticAssertDeclaration(n *StaticAssertDeclaration)
	VisitCompoundStatement(n *CompoundStatement)
	VisitDeclarationStatement(n *DeclarationStatement)
}

// Action names the two recursion-control outcomes, Skip and Quit,
// mirroring spec.md §9's Action enum. No Visitor method returns it:
// every Visit method returns nothing, and each visitor drives its own
// recursion by calling Accept on the children it chooses to walk.
type Action int

const (
	Skip Action = iota
	Quit
)
