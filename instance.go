package newtype

import "fmt"

// Instance is a value of a derived type. Its stored value has passed
// the type's Validate hook at construction, and every intercepted
// operation re-validates before producing a new Instance, so a live
// Instance never holds an invalid value.
type Instance[B any] struct {
	typ   *Type[B]
	value B
	args  []any
	attrs map[string]any
}

// Value returns the underlying base value. Operations applied to it
// directly behave exactly as on a plain B; only Call and the Apply
// combinators intercept.
func (i Instance[B]) Value() B { return i.value }

// Type returns the derived type handle, or nil for the zero Instance.
func (i Instance[B]) Type() *Type[B] { return i.typ }

// Attr reads an attribute attached by the Customize hook or SetAttr.
func (i Instance[B]) Attr(name string) (any, bool) {
	v, ok := i.attrs[name]
	return v, ok
}

// SetAttr attaches extra state to the instance. The stored base value
// is unaffected.
func (i *Instance[B]) SetAttr(name string, v any) {
	if i.attrs == nil {
		i.attrs = make(map[string]any)
	}
	i.attrs[name] = v
}

// String formats the underlying base value.
func (i Instance[B]) String() string { return fmt.Sprint(i.value) }
