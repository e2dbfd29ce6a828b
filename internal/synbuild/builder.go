// Package synbuild is a small declarative builder for internal/syntax
// trees, used only by tests. Hand-nesting the syntax package's node
// literals (a FunctionDeclarator wrapping a PointerDeclarator wrapping
// an IdentifierDeclarator, each carrying its own token) reads poorly
// once a fixture has more than a couple of declarations; these
// constructors give a test the same declarative shape a real parser's
// output would have, without pulling a parser into this module (out of
// scope per spec.md §1).
//
// Grounded on golang.org/x/tools/txtar's own role in the Go toolchain's
// test corpus: a flat text format describing a handful of named
// sections, decoded into whatever shape the consuming test needs
// rather than the archive format dictating it.
package synbuild

import (
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/token"
)

// tok synthesizes a token of kind k carrying lexeme, at an unspecified
// position — fixtures built through this package never need source
// positions, since they exist to exercise binding, not diagnostics
// rendering.
func tok(k token.Kind, lexeme string) token.Token {
	return token.Token{Kind: k, Lexeme: lexeme}
}

// Unit builds a *syntax.TranslationUnit from top-level declarations.
func Unit(decls ...syntax.Node) *syntax.TranslationUnit {
	return &syntax.TranslationUnit{Declarations: decls}
}

// --- specifiers ---

// Basic builds one basic-type specifier keyword (char, int, signed, …).
func Basic(kw token.Kind) syntax.Specifier {
	return &syntax.BasicTypeSpecifier{Tok: tok(kw, "")}
}

// Void builds the `void` type specifier.
func Void() syntax.Specifier {
	return &syntax.VoidTypeSpecifier{Tok: tok(token.KwVoid, "void")}
}

// Qual builds one type-qualifier specifier (const, volatile, restrict,
// _Atomic).
func Qual(kw token.Kind) syntax.Specifier {
	return &syntax.TypeQualifier{Tok: tok(kw, "")}
}

// TypedefName builds a specifier referencing a previously declared
// typedef name.
func TypedefName(name string) syntax.Specifier {
	return &syntax.TypedefNameSpecifier{Tok: tok(token.Identifier, name), Name: name}
}

// TagRef builds a bare tag reference specifier (`struct S` with no
// body), kw one of KwStruct/KwUnion/KwEnum.
func TagRef(kw token.Kind, name string) syntax.Specifier {
	return &syntax.TagTypeSpecifier{Tok: tok(kw, ""), TagName: name}
}

// TagBody builds a tag specifier that carries its own body, wrapping a
// *syntax.TagDeclaration built by Tag/Struct/Union/Enum below.
func TagBody(inner *syntax.TagDeclaration) syntax.Specifier {
	return &syntax.TagTypeSpecifier{Tok: inner.Tok, TagName: inner.TagName, Inner: inner}
}

// --- tag declarations ---

// Struct builds a struct tag declaration. Pass nil members for a bare
// reference form, a non-nil (possibly empty) slice for a body.
func Struct(name string, members []syntax.Node, declarators ...syntax.Declarator) *syntax.TagDeclaration {
	return &syntax.TagDeclaration{Tok: tok(token.KwStruct, "struct"), TagName: name, Members: members, Declarators: declarators}
}

// Union builds a union tag declaration, same shape as Struct.
func Union(name string, members []syntax.Node, declarators ...syntax.Declarator) *syntax.TagDeclaration {
	return &syntax.TagDeclaration{Tok: tok(token.KwUnion, "union"), TagName: name, Members: members, Declarators: declarators}
}

// Enum builds an enum tag declaration, same shape as Struct.
func Enum(name string, members []syntax.Node, declarators ...syntax.Declarator) *syntax.TagDeclaration {
	return &syntax.TagDeclaration{Tok: tok(token.KwEnum, "enum"), TagName: name, Members: members, Declarators: declarators}
}

// Field builds one struct/union member declaration.
func Field(specs []syntax.Specifier, declarators ...syntax.Declarator) *syntax.FieldDeclaration {
	return &syntax.FieldDeclaration{Specifiers: specs, Declarators: declarators}
}

// Enumerator builds one enum member.
func Enumerator(name string) *syntax.EnumeratorDeclaration {
	return &syntax.EnumeratorDeclaration{Tok: tok(token.Identifier, name), Name: name}
}

// Attribute builds a GNU `__attribute__((...))` list node, for tests
// exercising a tag declaration's inert attribute pass (SPEC_FULL.md §6.4).
func Attribute() syntax.Node {
	return &syntax.AttributeList{Tok: tok(token.Identifier, "__attribute__")}
}

// --- ordinary / typedef declarations ---

// Decl builds a VariableAndOrFunctionDeclaration sharing one specifier
// sequence across one or more declarators.
func Decl(specs []syntax.Specifier, declarators ...syntax.Declarator) *syntax.VariableAndOrFunctionDeclaration {
	return &syntax.VariableAndOrFunctionDeclaration{Specifiers: specs, Declarators: declarators}
}

// Incomplete builds a bare `;` declaration (Binder-000).
func Incomplete(specs ...syntax.Specifier) *syntax.IncompleteDeclaration {
	return &syntax.IncompleteDeclaration{Specifiers: specs}
}

// Typedef builds a `typedef` declaration.
func Typedef(specs []syntax.Specifier, declarators ...syntax.Declarator) *syntax.TypedefDeclaration {
	return &syntax.TypedefDeclaration{Specifiers: specs, Declarators: declarators}
}

// StaticAssert builds a `_Static_assert(...)` declaration.
func StaticAssert() *syntax.StaticAssertDeclaration {
	return &syntax.StaticAssertDeclaration{Tok: tok(token.KwStaticAssert, "_Static_assert")}
}

// Func builds a function definition.
func Func(specs []syntax.Specifier, declarator syntax.Declarator, body *syntax.CompoundStatement) *syntax.FunctionDefinition {
	return &syntax.FunctionDefinition{Specifiers: specs, Declarator: declarator, Body: body}
}

// Block builds a compound statement from a mix of declaration and
// statement nodes.
func Block(stmts ...syntax.Node) *syntax.CompoundStatement {
	return &syntax.CompoundStatement{Statements: stmts}
}

// DeclStmt wraps a declaration so it can appear inside a Block.
func DeclStmt(decl syntax.Node) *syntax.DeclarationStatement {
	return &syntax.DeclarationStatement{Declaration: decl}
}

// Param builds one function-prototype parameter. A nil declarator
// marks an abstract (unnamed) parameter.
func Param(specs []syntax.Specifier, declarator syntax.Declarator) *syntax.ParameterDeclaration {
	return &syntax.ParameterDeclaration{Specifiers: specs, Declarator: declarator}
}

// --- declarators ---

// Ident builds a terminal identifier declarator.
func Ident(name string) syntax.Declarator {
	return &syntax.IdentifierDeclarator{Tok: tok(token.Identifier, name), Name: name}
}

// Abstract builds a declarator with no identifier.
func Abstract() syntax.Declarator {
	return &syntax.AbstractDeclarator{}
}

// Paren groups inner for precedence, e.g. the `(D)` in `int (*f)(void)`.
func Paren(inner syntax.Declarator) syntax.Declarator {
	return &syntax.ParenDeclarator{Tok: tok(token.LParen, "("), Inner: inner}
}

// Ptr builds a pointer declarator wrapping inner, optionally carrying
// qualifiers (`* const`, `* restrict`, …).
func Ptr(inner syntax.Declarator, quals ...syntax.Specifier) syntax.Declarator {
	return &syntax.PointerDeclarator{Tok: tok(token.Star, "*"), Qualifiers: quals, Inner: inner}
}

// Array builds an array declarator wrapping inner. unbounded is true
// for `D[]`.
func Array(inner syntax.Declarator, unbounded bool) syntax.Declarator {
	return &syntax.ArrayDeclarator{Tok: tok(token.LBracket, "["), Inner: inner, Unbounded: unbounded}
}

// Fn builds a function declarator wrapping inner with the given
// parameters.
func Fn(inner syntax.Declarator, variadic bool, params ...*syntax.ParameterDeclaration) syntax.Declarator {
	return &syntax.FunctionDeclarator{Tok: tok(token.LParen, "("), Inner: inner, Parameters: params, Variadic: variadic}
}
