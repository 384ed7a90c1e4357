// Package localize implements scoped attribute value override: a
// mutable field temporarily takes a new value, and the prior value is
// restored, in LIFO order, when the override's guard is released.
//
// The class author composes the capability explicitly, either around an
// existing accessor (New) or around storage the Overridable owns (Own):
//
//	type Server struct {
//		Verbosity *localize.Overridable[int]
//	}
//
//	srv := &Server{Verbosity: localize.Own(1, localize.WithName("verbosity"))}
//	g := srv.Verbosity.Localize(3)
//	defer g.Release()
package localize

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-localize/pkg/activity"
)

// Overridable attaches the override capability to one attribute of one
// host instance. It owns that attribute's value stack: the stack depth
// always equals the number of live guards created for the pair.
//
// All operations are synchronous and assume a single logical thread of
// control per instance. A live override owns the attribute; an external
// Set between Localize and Release is discarded on restore. Exposing
// the same Overridable to concurrent callers requires a caller-owned
// lock, because push/set is not atomic with guard construction.
type Overridable[V any] struct {
	acc   Accessor[V]
	stack valueStack[V]
	cfg   config
	trace *Trace
}

// New wraps an existing bound accessor in an Overridable.
func New[V any](acc Accessor[V], opts ...Option) *Overridable[V] {
	cfg := applyOptions(opts)
	o := &Overridable[V]{acc: acc, cfg: cfg}
	if cfg.trace {
		o.trace = &Trace{Attr: cfg.name}
	}
	return o
}

// Own builds an Overridable that owns its backing storage, seeded with
// initial. The host struct can embed the result as the attribute
// itself.
func Own[V any](initial V, opts ...Option) *Overridable[V] {
	value := initial
	return New(Var(&value), opts...)
}

// Get reads the attribute's current value.
func (o *Overridable[V]) Get() V {
	return o.acc.Get()
}

// Set writes the attribute directly, outside the override bookkeeping.
// While an override is live the write is temporary: the next release
// restores the value saved when that override began.
func (o *Overridable[V]) Set(v V) {
	o.acc.Set(v)
}

// Clear resets the attribute through the accessor's clear operation.
func (o *Overridable[V]) Clear() {
	o.acc.Clear()
}

// Depth returns the number of live overrides on this attribute.
func (o *Overridable[V]) Depth() int {
	return o.stack.depth()
}

// Name returns the configured attribute name.
func (o *Overridable[V]) Name() string {
	return o.cfg.name
}

// Localize pushes the attribute's current value onto the save stack,
// installs the replacement, and returns the guard that undoes it. With
// no argument the replacement is a shallow duplicate of the current
// value: a plain value copy, so contained maps, slices, and pointers
// stay aliased between the saved and installed values. Callers that
// need deep isolation must construct the replacement themselves.
//
// Localize accepts at most one replacement value; passing more panics.
func (o *Overridable[V]) Localize(value ...V) *Guard {
	old := o.acc.Get()
	installed := old
	switch len(value) {
	case 0:
	case 1:
		installed = value[0]
	default:
		panic("localize: Localize accepts at most one replacement value")
	}

	o.stack.push(old)
	o.acc.Set(installed)
	g := &Guard{
		id:      uuid.New(),
		attr:    o.cfg.name,
		mark:    o.stack.depth(),
		restore: o.restore,
	}
	o.record(OpLocalize, g)
	o.notify(activity.VerbLocalized, g)
	return g
}

// LocalizeVoid performs an override whose guard is released before the
// call returns, so the attribute value is unchanged afterwards. The
// override still executes in full; only its duration collapses to
// zero. One advisory warning is emitted per call, because a
// zero-duration override is almost always a mistake.
func (o *Overridable[V]) LocalizeVoid(value ...V) {
	g := o.Localize(value...)
	o.warningLogger().LogWarning(WarningEvent{
		Attr:    o.cfg.name,
		GuardID: g.id,
		Message: "localize called without retaining its result is a no-op",
	})
	o.record(OpVoid, g)
	o.notify(activity.VerbVoided, g)
	g.Release()
}

// Scoped localizes the attribute for the duration of fn, releasing the
// guard on every exit path, including panics. The guard never escapes,
// so out-of-order release is structurally impossible.
func (o *Overridable[V]) Scoped(fn func() error, value ...V) error {
	g := o.Localize(value...)
	defer g.Release()
	return fn()
}

// Trace returns a copy of the recorded override history. The history is
// empty unless WithTrace(true) was configured.
func (o *Overridable[V]) Trace() Trace {
	if o.trace == nil {
		return Trace{Attr: o.cfg.name}
	}
	out := Trace{Attr: o.trace.Attr}
	if len(o.trace.Events) > 0 {
		out.Events = append([]Provenance{}, o.trace.Events...)
	}
	return out
}

// restore is the guard's release path. The depth check enforces the
// LIFO contract before the pop, so an out-of-order release fails as
// ErrReleaseOrder rather than corrupting a deeper guard's save slot.
func (o *Overridable[V]) restore(g *Guard) {
	if depth := o.stack.depth(); depth != g.mark {
		panic(contractViolation(o.cfg.name, depth, ErrReleaseOrder))
	}
	saved, ok := o.stack.pop()
	if !ok {
		panic(contractViolation(o.cfg.name, 0, ErrEmptyStack))
	}
	o.acc.Set(saved)
	o.record(OpRestore, g)
	o.notify(activity.VerbRestored, g)
}

func (o *Overridable[V]) warningLogger() WarningLogger {
	if o.cfg.logger != nil {
		return o.cfg.logger
	}
	return noopWarningLogger{}
}

func (o *Overridable[V]) record(op Op, g *Guard) {
	if o.trace == nil {
		return
	}
	o.trace.Events = append(o.trace.Events, Provenance{
		GuardID: g.id,
		Op:      op,
		Depth:   o.stack.depth(),
		At:      time.Now(),
	})
}

// notify forwards an override event to the configured emitter. Hook
// failures are surfaced as warnings; they never interrupt the override
// path.
func (o *Overridable[V]) notify(verb string, g *Guard) {
	if !o.cfg.emitter.Enabled() {
		return
	}
	err := o.cfg.emitter.Emit(context.Background(), activity.Event{
		Verb:    verb,
		Attr:    o.cfg.name,
		GuardID: g.id.String(),
		Depth:   o.stack.depth(),
	})
	if err != nil {
		o.warningLogger().LogWarning(WarningEvent{
			Attr:    o.cfg.name,
			GuardID: g.id,
			Message: "activity hook failed: " + err.Error(),
		})
	}
}
