// Package symbols implements the binder's symbol model and scope tree.
//
// The scope-chain shape (parent pointer, insertion-ordered local store,
// shadowed lookup) is grounded on
// funvibe-funxy/internal/symbols/symbol_table_operations.go's
// SymbolTable, stripped of every trait/generics-specific registry that
// has no C analogue. Per-kind symbol fields are grounded on
// original_source/C/symbols/*.h.
package symbols

import (
	"github.com/clayne/psychec/internal/ident"
	"github.com/clayne/psychec/internal/syntax"
	"github.com/clayne/psychec/internal/types"
)

// Symbol is implemented by every declaration kind the binder produces.
type Symbol interface {
	Header() *Header
	isSymbol()
}

// Header is the shared state every Symbol carries, mirroring
// original_source's common Symbol base: the symbol containing this one
// (e.g. the Struct a Field belongs to), the scope this symbol is
// visible in, and the syntax node that introduced it.
type Header struct {
	Containing Symbol
	Enclosing  *Scope
	Origin     syntax.Node
}

func (h *Header) Header() *Header { return h }

// TranslationUnit is the root symbol of a bind run.
type TranslationUnit struct {
	Header
}

func (*TranslationUnit) isSymbol() {}

// TagDeclaration is the shared shape of Struct, Union and Enum: a tag
// symbol owns the Tag type that names it and the member scope its
// fields or enumerators are declared against (enumerators are declared
// in the *enclosing* scope instead — see Enumerator).
type TagDeclaration struct {
	Header
	Name    *ident.Identifier
	Type    types.Tag
	Members *Scope
}

// Struct is a `struct` tag declaration.
type Struct struct{ TagDeclaration }

func (*Struct) isSymbol() {}

// Union is a `union` tag declaration.
type Union struct{ TagDeclaration }

func (*Union) isSymbol() {}

// Enum is an `enum` tag declaration. Its Members scope exists (so
// traversal can open/close it symmetrically with Struct/Union) but the
// binder never inserts an Enumerator into it — see spec.md §4.3.
type Enum struct{ TagDeclaration }

func (*Enum) isSymbol() {}

// Typedef binds a name to a deferred type-resolution slot. DefinedType
// is the Typedef{name} reference other declarations see when they use
// this name; SynonymizedType is the declarator-produced type the name
// actually stands for, filled in only once the typedef's own
// declarator has been walked — mirroring original_source's two-
// constructor Typedef symbol (one for a forward reference with no
// synonymized type yet).
type Typedef struct {
	Header
	Name            *ident.Identifier
	DefinedType     types.Typedef
	SynonymizedType types.Type
}

func (*Typedef) isSymbol() {}

// Variable is an object declaration outside of a struct/union/function
// parameter list.
type Variable struct {
	Header
	Name *ident.Identifier
	Type types.Type
}

func (*Variable) isSymbol() {}

// Function is a function declaration or definition. BodyScope is nil
// for a declaration with no body; for a definition it is the
// FunctionPrototype scope re-opened to host the compound statement
// (spec.md §4.5).
type Function struct {
	Header
	Name      *ident.Identifier
	Type      types.Type
	BodyScope *Scope
}

func (*Function) isSymbol() {}

// Parameter is one parameter of a function prototype.
type Parameter struct {
	Header
	Name *ident.Identifier
	Type types.Type
}

func (*Parameter) isSymbol() {}

// Field is a struct/union member. BitWidth is the syntax node for an
// (unevaluated) bit-field width expression, or nil — constant folding
// is out of scope, so the binder records the node, not a value (see
// SPEC_FULL.md §6.2).
type Field struct {
	Header
	Name     *ident.Identifier
	Type     types.Type
	BitWidth syntax.Node
}

func (*Field) isSymbol() {}

// Enumerator is one member of an enum. Its type is always Basic(Int);
// it is declared in the enum's *enclosing* scope (spec.md §4.3), never
// in the enum's own Members scope. Value computation is a Non-goal.
type Enumerator struct {
	Header
	Name *ident.Identifier
	Type types.Type
}

func (*Enumerator) isSymbol() {}
