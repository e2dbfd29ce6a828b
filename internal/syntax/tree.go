package syntax

import (
	"github.com/clayne/psychec/internal/diagnostics"
	"github.com/clayne/psychec/internal/ident"
)

// SyntaxTree is the external input contract a binder consumes
// (spec.md §6): a root node, the identifier pool shared with whatever
// lexer/parser built the tree, and the diagnostics sink the binder
// reports into. Lexing, parsing and syntactic disambiguation build one
// of these; this module only ever observes it.
type SyntaxTree struct {
	root   *TranslationUnit
	idents *ident.Pool
	diags  []*diagnostics.Diagnostic
}

// NewSyntaxTree wraps root for binding. A nil idents pool gets a fresh
// one — convenient for tests that build a tree entirely by hand.
func NewSyntaxTree(root *TranslationUnit, idents *ident.Pool) *SyntaxTree {
	if idents == nil {
		idents = ident.NewPool()
	}
	return &SyntaxTree{root: root, idents: idents}
}

// Root returns the translation unit at the tree's root.
func (t *SyntaxTree) Root() *TranslationUnit { return t.root }

// FindIdentifier interns text against the tree's identifier pool.
func (t *SyntaxTree) FindIdentifier(text string) *ident.Identifier {
	return t.idents.Intern(text)
}

// Idents exposes the tree's identifier pool directly, for callers that
// need the shared empty-identifier sentinel (ident.Pool.Empty).
func (t *SyntaxTree) Idents() *ident.Pool { return t.idents }

// NewDiagnostic appends d to the tree's diagnostic stream (spec.md §6).
func (t *SyntaxTree) NewDiagnostic(d *diagnostics.Diagnostic) {
	t.diags = append(t.diags, d)
}

// Report implements diagnostics.Sink so a SyntaxTree can be handed
// directly to a diagnostics.Reporter.
func (t *SyntaxTree) Report(d *diagnostics.Diagnostic) { t.NewDiagnostic(d) }

// Diagnostics returns every diagnostic raised against this tree so far,
// in report order.
func (t *SyntaxTree) Diagnostics() []*diagnostics.Diagnostic { return t.diags }
