package newtype

import (
	"fmt"
	"reflect"
	"slices"
)

// ValidateFunc validates or transforms raw construction input into the
// value a derived instance will hold. Extra construction arguments are
// threaded through unchanged. Returning an error rejects the
// construction; the error reaches the caller verbatim.
type ValidateFunc[B any] func(raw B, args ...any) (B, error)

// CustomizeFunc runs after the validated value has been materialized.
// It receives the same raw arguments as the Validate hook and may
// attach attributes to the instance; the stored value itself is not
// replaceable. Returning an error rejects the construction.
type CustomizeFunc[B any] func(inst *Instance[B], raw B, args ...any) error

// Descriptor declares a derived type over base type B.
type Descriptor[B any] struct {
	// Name identifies the derived type in errors and diagnostics.
	// Defaults to the base type's name.
	Name string

	// Validate is the mandatory construction hook.
	Validate ValidateFunc[B]

	// Customize optionally runs post-construction for side effects.
	// It shares the Validate hook's argument list by construction, so
	// the pipeline threads the same arguments through both.
	Customize CustomizeFunc[B]

	// Ops registers named operations over B, in addition to the ops
	// reflected from B's method set. On a name clash the declared op
	// wins.
	Ops []Op[B]

	// SkipMethods disables reflecting B's method set into the
	// operation table.
	SkipMethods bool
}

// Type is the handle for a derived type produced by Declare. It is
// immutable after creation and safe for concurrent use.
type Type[B any] struct {
	name      string
	base      reflect.Type
	validate  ValidateFunc[B]
	customize CustomizeFunc[B]
	ops       map[string]*boundOp
	clone     bool // slice-kind base: each instance owns a private copy
}

// Declare synthesizes a derived type from a descriptor. It fails with
// a ConfigurationError when the descriptor is unusable: no Validate
// hook, a base type with in-place-mutating semantics, or a declared
// operation of the wrong shape.
func Declare[B any](d Descriptor[B]) (*Type[B], error) {
	base := reflect.TypeOf((*B)(nil)).Elem()
	name := d.Name
	if name == "" {
		name = base.String()
	}
	if d.Validate == nil {
		return nil, &ConfigurationError{Type: name, Reason: ErrMissingValidator}
	}
	switch base.Kind() {
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return nil, &ConfigurationError{
			Type:   name,
			Reason: fmt.Errorf("%w: %s values mutate in place", ErrUnsupportedBase, base.Kind()),
		}
	}

	t := &Type[B]{
		name:      name,
		base:      base,
		validate:  d.Validate,
		customize: d.Customize,
		ops:       make(map[string]*boundOp),
		clone:     base.Kind() == reflect.Slice,
	}
	if !d.SkipMethods {
		reflectMethodOps(t.ops, base)
	}
	for _, op := range d.Ops {
		bound, err := bindOp(base, op)
		if err != nil {
			return nil, &ConfigurationError{Type: name, Reason: err}
		}
		t.ops[op.Name] = bound
	}
	return t, nil
}

// MustDeclare is Declare for load-time type declarations; it panics on
// a ConfigurationError.
func MustDeclare[B any](d Descriptor[B]) *Type[B] {
	t, err := Declare(d)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the declared type name.
func (t *Type[B]) Name() string { return t.name }

// Base returns the reflected base type the derived type wraps.
func (t *Type[B]) Base() reflect.Type { return t.base }

// New constructs an instance by running the full construction
// pipeline: validate, materialize, customize. Extra args reach both
// hooks unchanged and are remembered by the instance for re-validation
// by intercepted operations.
func (t *Type[B]) New(raw B, args ...any) (Instance[B], error) {
	return t.construct(raw, args)
}

// MustNew is New; it panics when construction is rejected.
func (t *Type[B]) MustNew(raw B, args ...any) Instance[B] {
	inst, err := t.construct(raw, args)
	if err != nil {
		panic(err)
	}
	return inst
}

// Validators enumerates the type's construction hooks so validation
// frameworks can apply them without constructing instances.
func (t *Type[B]) Validators() []ValidateFunc[B] {
	return []ValidateFunc[B]{t.validate}
}

// ValidationHooks enumerates the construction hooks in an untyped form
// for frameworks that discover types through HookSource. A hook fed a
// value that is not a B fails with ErrHookInput.
func (t *Type[B]) ValidationHooks() []func(any) (any, error) {
	typed := t.Validators()
	hooks := make([]func(any) (any, error), 0, len(typed))
	for _, v := range typed {
		hooks = append(hooks, func(raw any) (any, error) {
			b, ok := raw.(B)
			if !ok {
				return nil, fmt.Errorf("%w: %s wants %s, got %T", ErrHookInput, t.name, t.base, raw)
			}
			return v(b)
		})
	}
	return hooks
}

// Ops lists the registered operation names in sorted order.
func (t *Type[B]) Ops() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HookSource is the discovery surface external validation frameworks
// use to pick up construction hooks without knowing the base type.
// Every *Type implements it.
type HookSource interface {
	Name() string
	ValidationHooks() []func(any) (any, error)
}
