package symbols

import (
	"testing"

	"github.com/clayne/psychec/internal/ident"
)

func TestScopeInsertAndDeclarationsPreserveOrder(t *testing.T) {
	pool := ident.NewPool()
	file := NewScope(FileScope, nil)

	a := &Variable{Name: pool.Intern("a")}
	b := &Variable{Name: pool.Intern("b")}
	file.Insert(pool.Intern("a"), a)
	file.Insert(pool.Intern("b"), b)

	decls := file.Declarations()
	if len(decls) != 2 {
		t.Fatalf("Declarations() returned %d symbols, want 2", len(decls))
	}
	if decls[0] != Symbol(a) || decls[1] != Symbol(b) {
		t.Errorf("Declarations() = %v, want [a, b] in insertion order", decls)
	}
}

func TestScopeInsertOverwritesWithoutReordering(t *testing.T) {
	pool := ident.NewPool()
	file := NewScope(FileScope, nil)
	name := pool.Intern("x")

	first := &Variable{Name: name}
	second := &Variable{Name: name}
	file.Insert(name, first)
	file.Insert(name, second)

	decls := file.Declarations()
	if len(decls) != 1 {
		t.Fatalf("Declarations() returned %d symbols, want 1 (overwrite, not append)", len(decls))
	}
	if decls[0] != Symbol(second) {
		t.Errorf("Declarations()[0] = %v, want the second insert to have won", decls[0])
	}
}

func TestScopeResolveWalksParentChain(t *testing.T) {
	pool := ident.NewPool()
	outer := NewScope(FileScope, nil)
	inner := NewScope(BlockScope, outer)

	name := pool.Intern("x")
	outerSym := &Variable{Name: name}
	outer.Insert(name, outerSym)

	sym, scope, ok := inner.Resolve(name)
	if !ok {
		t.Fatalf("Resolve(%q) from inner scope failed, want it to find the outer declaration", name.String())
	}
	if sym != Symbol(outerSym) || scope != outer {
		t.Errorf("Resolve returned (%v, %v), want (%v, outer)", sym, scope, outerSym)
	}
}

func TestScopeResolveRespectsShadowing(t *testing.T) {
	pool := ident.NewPool()
	outer := NewScope(FileScope, nil)
	inner := NewScope(BlockScope, outer)

	name := pool.Intern("x")
	outerSym := &Variable{Name: name}
	innerSym := &Variable{Name: name}
	outer.Insert(name, outerSym)
	inner.Insert(name, innerSym)

	sym, scope, ok := inner.Resolve(name)
	if !ok || sym != Symbol(innerSym) || scope != inner {
		t.Errorf("Resolve favored the outer declaration over the shadowing inner one: (%v, %v, %v)", sym, scope, ok)
	}
}

func TestScopeLookupDoesNotWalkParent(t *testing.T) {
	pool := ident.NewPool()
	outer := NewScope(FileScope, nil)
	inner := NewScope(BlockScope, outer)

	name := pool.Intern("x")
	outer.Insert(name, &Variable{Name: name})

	if _, ok := inner.Lookup(name); ok {
		t.Errorf("Lookup found a parent-scope symbol; Lookup must only check its own scope")
	}
}
