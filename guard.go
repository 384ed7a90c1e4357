package localize

import "github.com/google/uuid"

// Guard is the restoration token returned by an override. Releasing it,
// exactly once, writes the value saved beneath it back to the
// attribute. Guards are opaque: they expose no access to the saved
// value and no mutating operation besides Release.
//
// A guard must not be copied; releasing two copies would pop a save
// slot that belongs to another override. Tie the release to the owning
// scope so it runs on every exit path:
//
//	g := attr.Localize(v)
//	defer g.Release()
type Guard struct {
	id       uuid.UUID
	attr     string
	mark     int
	released bool
	restore  func(*Guard)
}

// ID returns the guard's unique identifier, used in trace provenance
// and activity events.
func (g *Guard) ID() uuid.UUID {
	return g.id
}

// Attr returns the name of the attribute this guard restores.
func (g *Guard) Attr() string {
	return g.attr
}

// Released reports whether the guard has already restored its value.
func (g *Guard) Released() bool {
	return g == nil || g.released
}

// Release restores the attribute to the value saved when this guard was
// created. The first call pops the value stack and writes the popped
// value back through the accessor; any later call is a no-op.
//
// Releasing while a more deeply nested guard on the same attribute is
// still live breaks the LIFO contract and panics with a *ContractError
// wrapping ErrReleaseOrder.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.restore(g)
}
