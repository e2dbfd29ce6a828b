// Package types implements the binder's C type representation: an
// immutable-by-default algebraic sum over basic, void, pointer, array,
// function, tag, typedef-name and qualified types.
//
// Grounded on original_source/C/types/TypeKind.h (the TypeKind enum),
// Type_Pointer.cpp (referenced type, decay flags) and
// Type_Qualified.cpp (the Qualifiers bitset and the retype channel).
package types

import "github.com/clayne/psychec/internal/ident"

// Type is implemented by every member of the type sum. It carries no
// methods beyond the marker because the binder always switches on a
// type's dynamic kind via a type switch, matching the sum-type idiom
// used throughout the example pack's own type systems.
type Type interface {
	isType()
}

// BasicKind enumerates the composed basic-type kinds. The ordering
// mirrors the progression a specifier sequence walks through: plain,
// then signed/unsigned variants, then the long-long promotion this
// module adds on top of the original table (see SPEC_FULL.md §5).
type BasicKind int

const (
	Char BasicKind = iota
	Char_S
	Char_U
	Short
	Short_S
	Short_U
	Int
	Int_S
	Int_U
	Long
	Long_S
	Long_U
	LongLong
	LongLong_S
	LongLong_U
	Float
	Double
	LongDouble
	Bool
	FloatComplex
	DoubleComplex
	LongDoubleComplex
)

func (k BasicKind) String() string {
	switch k {
	case Char:
		return "char"
	case Char_S:
		return "signed char"
	case Char_U:
		return "unsigned char"
	case Short:
		return "short"
	case Short_S:
		return "signed short"
	case Short_U:
		return "unsigned short"
	case Int:
		return "int"
	case Int_S:
		return "signed int"
	case Int_U:
		return "unsigned int"
	case Long:
		return "long"
	case Long_S:
		return "signed long"
	case Long_U:
		return "unsigned long"
	case LongLong:
		return "long long"
	case LongLong_S:
		return "signed long long"
	case LongLong_U:
		return "unsigned long long"
	case Float:
		return "float"
	case Double:
		return "double"
	case LongDouble:
		return "long double"
	case Bool:
		return "_Bool"
	case FloatComplex:
		return "float _Complex"
	case DoubleComplex:
		return "double _Complex"
	case LongDoubleComplex:
		return "long double _Complex"
	default:
		return "basic?"
	}
}

// Basic is a composed basic-type specifier sequence collapsed to its
// resulting kind.
type Basic struct{ Kind BasicKind }

func (Basic) isType() {}

// Void is C's void type. It has no fields; it is never qualified except
// through a wrapping Qualified.
type Void struct{}

func (Void) isType() {}

// Pointer is a pointer to Referenced. The two decay flags record
// whether this pointer arose from array-to-pointer or
// function-to-pointer decay during declarator unwinding, rather than
// from an explicit '*' in the declarator — mirroring
// original_source/C/types/Type_Pointer.cpp's markAsArisingFrom* bits.
type Pointer struct {
	Referenced             Type
	ArisesFromArrayDecay    bool
	ArisesFromFunctionDecay bool
}

func (Pointer) isType() {}

// ArrayExtent describes an array's declared size. Constant evaluation
// is out of scope (spec.md Non-goals), so a sized extent stores no
// evaluated integer — only whether a size expression was present.
type ArrayExtent struct {
	Unbounded bool // true for `T x[]`
}

// Array is an array of Element. Extent carries no evaluated size.
type Array struct {
	Element Type
	Extent  ArrayExtent
}

func (Array) isType() {}

// Function is a function type. Result must never itself be a Function
// or Array (both are diagnosed during declarator unwinding, never
// constructed here).
type Function struct {
	Result     Type
	Parameters []Type
	Variadic   bool
}

func (Function) isType() {}

// TagKind distinguishes the three C tag-type introducers.
type TagKind int

const (
	StructTag TagKind = iota
	UnionTag
	EnumTag
)

func (k TagKind) String() string {
	switch k {
	case StructTag:
		return "struct"
	case UnionTag:
		return "union"
	case EnumTag:
		return "enum"
	default:
		return "tag?"
	}
}

// Tag refers to a struct/union/enum type by name only. Referring by
// name instead of by value is what lets a struct contain a pointer to
// itself without an infinite type; the full member layout lives on the
// corresponding tag symbol, not inside this value (see spec.md §9).
type Tag struct {
	Kind TagKind
	Name *ident.Identifier
}

func (Tag) isType() {}

// Typedef is an unresolved reference to a name introduced by a typedef
// declaration. The binder never resolves it to its synonymized type;
// that is left to an external, out-of-scope TypeResolver pass, which
// has no retype operation to call here and assigns a symbol's exported
// Type field directly (see semantics.Model).
type Typedef struct {
	Name *ident.Identifier
}

func (Typedef) isType() {}

// Qualifiers is the set of qualifiers a Qualified type carries. restrict
// is only meaningful when the unqualified type is a Pointer; the binder
// enforces that at the point qualifiers are applied, not here.
type Qualifiers struct {
	Const    bool
	Volatile bool
	Restrict bool
	Atomic   bool
}

// Empty reports whether no qualifier bit is set.
func (q Qualifiers) Empty() bool {
	return !q.Const && !q.Volatile && !q.Restrict && !q.Atomic
}

// Merge returns the union of q and other.
func (q Qualifiers) Merge(other Qualifiers) Qualifiers {
	return Qualifiers{
		Const:    q.Const || other.Const,
		Volatile: q.Volatile || other.Volatile,
		Restrict: q.Restrict || other.Restrict,
		Atomic:   q.Atomic || other.Atomic,
	}
}

// Qualified wraps Unqualified with one or more qualifiers. Unqualified
// is never itself a Qualified — qualifiers are always merged into a
// single wrapping layer (see NewQualified).
type Qualified struct {
	Unqualified Type
	Qualifiers  Qualifiers
}

func (Qualified) isType() {}

// NewQualified builds a Qualified over base, merging qualifiers into an
// existing Qualified layer instead of nesting one inside another, per
// the "a Qualified never wraps a Qualified" invariant (spec.md §3).
func NewQualified(base Type, q Qualifiers) Type {
	if already, ok := base.(Qualified); ok {
		return Qualified{Unqualified: already.Unqualified, Qualifiers: already.Qualifiers.Merge(q)}
	}
	return Qualified{Unqualified: base, Qualifiers: q}
}

// Unqualify strips any Qualified wrapper, returning the base type and
// the qualifiers that were present (zero value if t was not Qualified).
func Unqualify(t Type) (Type, Qualifiers) {
	if q, ok := t.(Qualified); ok {
		return q.Unqualified, q.Qualifiers
	}
	return t, Qualifiers{}
}

// IsPointer reports whether t (after stripping one qualifier layer) is
// a Pointer — the test the binder uses to decide whether `restrict` is
// admissible.
func IsPointer(t Type) bool {
	base, _ := Unqualify(t)
	_, ok := base.(Pointer)
	return ok
}
