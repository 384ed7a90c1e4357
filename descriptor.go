package localize

import "errors"

var (
	// ErrAttrNameRequired indicates a descriptor was built without a name.
	ErrAttrNameRequired = errors.New("localize: attribute name must be provided")
	// ErrAccessorRequired indicates a descriptor was built without both
	// get and set operations.
	ErrAccessorRequired = errors.New("localize: get and set operations must be provided")
)

// Descriptor identifies one named mutable attribute on a host type. It
// is the unbound form of the accessor contract: the same descriptor can
// be bound to many instances, and each binding maintains its own
// override stack.
type Descriptor[T, V any] struct {
	name  string
	get   func(*T) V
	set   func(*T, V)
	clear func(*T)
}

// DescriptorOption configures optional descriptor behaviour.
type DescriptorOption[T, V any] func(*Descriptor[T, V])

// WithClear installs a custom clear operation. Without it, bound
// accessors clear by writing the attribute type's zero value.
func WithClear[T, V any](clear func(*T)) DescriptorOption[T, V] {
	return func(d *Descriptor[T, V]) {
		d.clear = clear
	}
}

// NewDescriptor builds a Descriptor from an attribute name and the
// get/set operations over the host type.
func NewDescriptor[T, V any](name string, get func(*T) V, set func(*T, V), opts ...DescriptorOption[T, V]) (*Descriptor[T, V], error) {
	if name == "" {
		return nil, ErrAttrNameRequired
	}
	if get == nil || set == nil {
		return nil, ErrAccessorRequired
	}
	d := &Descriptor[T, V]{name: name, get: get, set: set}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// Name returns the attribute name.
func (d *Descriptor[T, V]) Name() string {
	return d.name
}

// Bind fixes the descriptor to one instance, yielding the bound
// accessor the override machinery consumes.
func (d *Descriptor[T, V]) Bind(instance *T) Accessor[V] {
	return AccessorFuncs[V]{
		GetFunc: func() V { return d.get(instance) },
		SetFunc: func(v V) { d.set(instance, v) },
		ClearFunc: func() {
			if d.clear != nil {
				d.clear(instance)
				return
			}
			var zero V
			d.set(instance, zero)
		},
	}
}

// Localized binds the descriptor to an instance and wraps the binding
// in an Overridable that carries the descriptor's attribute name.
// Additional options are applied after the name and may override it.
func (d *Descriptor[T, V]) Localized(instance *T, opts ...Option) *Overridable[V] {
	merged := append([]Option{WithName(d.name)}, opts...)
	return New(d.Bind(instance), merged...)
}
