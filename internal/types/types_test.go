package types

import "testing"

func TestNewQualifiedMergesRatherThanNests(t *testing.T) {
	base := Basic{Kind: Int}
	once := NewQualified(base, Qualifiers{Const: true})
	twice := NewQualified(once, Qualifiers{Volatile: true})

	q, ok := twice.(Qualified)
	if !ok {
		t.Fatalf("NewQualified result = %#v, want Qualified", twice)
	}
	if _, nested := q.Unqualified.(Qualified); nested {
		t.Fatalf("Qualified wraps a Qualified: %#v", q.Unqualified)
	}
	if !q.Qualifiers.Const || !q.Qualifiers.Volatile {
		t.Errorf("Qualifiers = %#v, want both Const and Volatile set", q.Qualifiers)
	}
	if q.Unqualified != Type(base) {
		t.Errorf("Unqualified = %#v, want the original Basic(Int)", q.Unqualified)
	}
}

func TestUnqualifyRoundTrips(t *testing.T) {
	base := Pointer{Referenced: Basic{Kind: Char}}
	qualified := NewQualified(base, Qualifiers{Restrict: true})

	got, quals := Unqualify(qualified)
	if got != Type(base) {
		t.Errorf("Unqualify base = %#v, want %#v", got, base)
	}
	if !quals.Restrict {
		t.Errorf("Unqualify qualifiers = %#v, want Restrict set", quals)
	}

	// An unqualified type round-trips to itself with zero qualifiers.
	got2, quals2 := Unqualify(base)
	if got2 != Type(base) || !quals2.Empty() {
		t.Errorf("Unqualify(base) = %#v, %#v, want %#v, empty", got2, quals2, base)
	}
}

func TestIsPointerLooksThroughQualification(t *testing.T) {
	ptr := NewQualified(Pointer{Referenced: Void{}}, Qualifiers{Const: true})
	if !IsPointer(ptr) {
		t.Errorf("IsPointer(%#v) = false, want true", ptr)
	}
	if IsPointer(Basic{Kind: Int}) {
		t.Errorf("IsPointer(Basic(Int)) = true, want false")
	}
}

func TestQualifiersMergeIsUnion(t *testing.T) {
	a := Qualifiers{Const: true}
	b := Qualifiers{Volatile: true, Const: true}
	merged := a.Merge(b)
	if !merged.Const || !merged.Volatile || merged.Restrict || merged.Atomic {
		t.Errorf("Merge = %#v, want {Const, Volatile}", merged)
	}
}
