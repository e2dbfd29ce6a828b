// Package ident provides identifier interning for the binder.
//
// Symbols and types never hold raw strings for a name; they hold a
// *Identifier obtained from a Pool, so that two occurrences of the same
// spelling compare equal by pointer, mirroring the original binder's
// identifier-pool discipline (every Symbol stores a `const Identifier*`).
package ident

// Identifier is an interned name. The zero value is not a valid
// Identifier; obtain one from a Pool.
type Identifier struct {
	name string
}

// String returns the identifier's spelling.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.name
}

// IsEmpty reports whether this is the pool's empty-identifier sentinel,
// used for declarations with no declarator (abstract parameters,
// anonymous tag members).
func (i *Identifier) IsEmpty() bool { return i == nil || i.name == "" }

// Pool interns identifier spellings for a single bind run. It is not
// safe for concurrent use, consistent with the binder's single-threaded
// execution model.
type Pool struct {
	byName map[string]*Identifier
	empty  *Identifier
}

// NewPool creates an empty identifier pool.
func NewPool() *Pool {
	p := &Pool{byName: make(map[string]*Identifier)}
	p.empty = &Identifier{name: ""}
	return p
}

// Intern returns the canonical *Identifier for name, creating it on
// first use. An empty name always returns the pool's shared empty
// sentinel.
func (p *Pool) Intern(name string) *Identifier {
	if name == "" {
		return p.empty
	}
	if id, ok := p.byName[name]; ok {
		return id
	}
	id := &Identifier{name: name}
	p.byName[name] = id
	return id
}

// Empty returns the pool's empty-identifier sentinel.
func (p *Pool) Empty() *Identifier { return p.empty }
