// Package semantics implements the bulk arena a single bind() run
// produces into: every symbol, type and scope created while binding a
// translation unit, plus the syntax-node-to-symbol index spec.md §6
// describes as the SemanticModel contract.
//
// Grounded on original_source/C/binder/Binder.cpp's SemanticModel*
// collaborator, which every visit method calls into via keepSomething.
package semantics

import (
	"github.com/google/uuid"

	"github.com/clayne/psychec/internal/symbols"
	"github.com/clayne/psychec/internal/syntax"
)

// Model owns every symbol and scope produced by one bind run and maps
// the syntax node that introduced a declaration back to its bound
// symbol (spec.md §6's symbol_of). A Model does not mutate any symbol
// once binding completes, so it is safe to hand to read-only consumers.
// Neither Model nor the symbols package has a retype operation: a
// later pass that resolves a type assigns the symbol's exported Type
// field directly, and nothing checks that the new type is more
// resolved than the old one or that only one writer assigns it.
type Model struct {
	// ID tags this run for trace-log correlation only (SPEC_FULL.md
	// §2.3/§3): repeated binds of the same translation unit each get a
	// distinct UUID, so idempotence (spec.md §8) is easy to verify by
	// diffing two runs' trace output. It has no semantic role in the
	// bound data itself.
	ID uuid.UUID

	// Root is the file scope every other scope nests under.
	Root *symbols.Scope

	bySyntaxNode map[syntax.Node]symbols.Symbol
}

// New creates an empty Model with a fresh file scope.
func New() *Model {
	return &Model{
		ID:           uuid.New(),
		Root:         symbols.NewScope(symbols.FileScope, nil),
		bySyntaxNode: make(map[syntax.Node]symbols.Symbol),
	}
}

// KeepTranslationUnit attaches the translation-unit symbol to the node
// that introduced it. Every node maps to at most one symbol; keeping a
// second symbol for the same node is a binder bug (spec.md §8) and
// overwrites the first, same as KeepDeclaration.
func (m *Model) KeepTranslationUnit(node syntax.Node, sym symbols.Symbol) {
	m.bySyntaxNode[node] = sym
}

// KeepDeclaration attaches sym, the symbol bound from node, to node —
// the general case of KeepTranslationUnit for every other declaration
// kind (struct/union/enum, typedef, variable, function, parameter,
// field, enumerator).
func (m *Model) KeepDeclaration(node syntax.Node, sym symbols.Symbol) {
	m.bySyntaxNode[node] = sym
}

// SymbolOf returns the symbol bound from node, if any.
func (m *Model) SymbolOf(node syntax.Node) (symbols.Symbol, bool) {
	sym, ok := m.bySyntaxNode[node]
	return sym, ok
}

// DeclarationsIn returns scope's own symbols in insertion order
// (spec.md §6's declarations_in). It does not recurse into child
// scopes.
func (m *Model) DeclarationsIn(scope *symbols.Scope) []symbols.Symbol {
	if scope == nil {
		return nil
	}
	return scope.Declarations()
}
