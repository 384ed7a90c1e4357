package localize

// Accessor is the attribute contract this package consumes: one mutable
// field on a host instance, already bound to that instance. The only
// behaviour required is read-your-write consistency, meaning Get
// immediately after Set(v) returns v.
type Accessor[V any] interface {
	Get() V
	Set(V)
	Clear()
}

// Var adapts a pointer to a field (or any addressable value) into an
// Accessor. Clear resets the field to the zero value of V.
func Var[V any](p *V) Accessor[V] {
	return varAccessor[V]{p: p}
}

type varAccessor[V any] struct {
	p *V
}

func (a varAccessor[V]) Get() V {
	return *a.p
}

func (a varAccessor[V]) Set(v V) {
	*a.p = v
}

func (a varAccessor[V]) Clear() {
	var zero V
	*a.p = zero
}

// AccessorFuncs adapts plain functions into an Accessor. GetFunc and
// SetFunc are required; when ClearFunc is nil, Clear writes the zero
// value of V through SetFunc.
type AccessorFuncs[V any] struct {
	GetFunc   func() V
	SetFunc   func(V)
	ClearFunc func()
}

// Get implements Accessor.
func (a AccessorFuncs[V]) Get() V {
	return a.GetFunc()
}

// Set implements Accessor.
func (a AccessorFuncs[V]) Set(v V) {
	a.SetFunc(v)
}

// Clear implements Accessor.
func (a AccessorFuncs[V]) Clear() {
	if a.ClearFunc != nil {
		a.ClearFunc()
		return
	}
	var zero V
	a.SetFunc(zero)
}
