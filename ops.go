package newtype

import (
	"fmt"
	"reflect"
)

// Op binds a name to an operation over the base type. Fn must be a
// func whose first parameter is exactly the base type; the remaining
// parameters become the call arguments. It must return one value,
// optionally followed by an error. An op whose first result is exactly
// the base type is value-producing: Call routes its result back
// through the construction pipeline so it comes out as an Instance of
// the same derived type. Any other result passes through untouched.
type Op[B any] struct {
	Name string
	Fn   any
}

type boundOp struct {
	fn       reflect.Value
	in       []reflect.Type // parameters after the receiver
	variadic bool
	wraps    bool // first result is exactly the base type
	hasErr   bool
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// bindOp reflect-checks a declared operation at declaration time.
func bindOp[B any](base reflect.Type, op Op[B]) (*boundOp, error) {
	if op.Name == "" {
		return nil, fmt.Errorf("%w: operation has no name", ErrInvalidOp)
	}
	if op.Fn == nil {
		return nil, fmt.Errorf("%w: %q has no func", ErrInvalidOp, op.Name)
	}
	ft := reflect.TypeOf(op.Fn)
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %q is %s, not a func", ErrInvalidOp, op.Name, ft.Kind())
	}
	if ft.NumIn() == 0 || ft.In(0) != base {
		return nil, fmt.Errorf("%w: %q must take %s as its first parameter", ErrInvalidOp, op.Name, base)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errType {
			return nil, fmt.Errorf("%w: %q second result must be error", ErrInvalidOp, op.Name)
		}
	default:
		return nil, fmt.Errorf("%w: %q must return a value and an optional error", ErrInvalidOp, op.Name)
	}

	in := make([]reflect.Type, 0, ft.NumIn()-1)
	for j := 1; j < ft.NumIn(); j++ {
		in = append(in, ft.In(j))
	}
	return &boundOp{
		fn:       reflect.ValueOf(op.Fn),
		in:       in,
		variadic: ft.IsVariadic(),
		wraps:    ft.Out(0) == base,
		hasErr:   ft.NumOut() == 2,
	}, nil
}

// Representation methods are never intercepted, mirroring the
// exclusion of repr-style operations from wrapping.
var skippedMethods = map[string]bool{
	"String":   true,
	"GoString": true,
	"Format":   true,
	"Error":    true,
}

// reflectMethodOps enumerates the base type's value method set once at
// declaration time. Methods whose first result is exactly the base
// type become value-producing ops; the rest pass through. Pointer
// receivers are excluded with the rest of the pointer method set: they
// imply in-place mutation, which the wrapped base universe does not
// have.
func reflectMethodOps(ops map[string]*boundOp, base reflect.Type) {
	for i := 0; i < base.NumMethod(); i++ {
		m := base.Method(i)
		if !m.IsExported() || skippedMethods[m.Name] {
			continue
		}
		mt := m.Func.Type()
		if mt.NumOut() == 0 || mt.NumOut() > 2 {
			continue
		}
		if mt.NumOut() == 2 && mt.Out(1) != errType {
			continue
		}
		in := make([]reflect.Type, 0, mt.NumIn()-1)
		for j := 1; j < mt.NumIn(); j++ {
			in = append(in, mt.In(j))
		}
		ops[m.Name] = &boundOp{
			fn:       m.Func,
			in:       in,
			variadic: mt.IsVariadic(),
			wraps:    mt.Out(0) == base,
			hasErr:   mt.NumOut() == 2,
		}
	}
}

func (op *boundOp) invoke(recv reflect.Value, args []any) (any, error) {
	want := len(op.in)
	if op.variadic {
		if len(args) < want-1 {
			return nil, fmt.Errorf("%w: want at least %d args, got %d", ErrArgument, want-1, len(args))
		}
	} else if len(args) != want {
		return nil, fmt.Errorf("%w: want %d args, got %d", ErrArgument, want, len(args))
	}

	vals := make([]reflect.Value, 0, len(args)+1)
	vals = append(vals, recv)
	for idx, arg := range args {
		pt := op.in[min(idx, want-1)]
		if op.variadic && idx >= want-1 {
			pt = pt.Elem()
		}
		av := reflect.ValueOf(arg)
		switch {
		case arg == nil:
			return nil, fmt.Errorf("%w: arg %d is nil", ErrArgument, idx)
		case av.Type() == pt || av.Type().AssignableTo(pt):
		case av.Type().ConvertibleTo(pt) && av.Kind() == pt.Kind():
			av = av.Convert(pt)
		case av.CanConvert(pt) && isNumericKind(av.Kind()) && isNumericKind(pt.Kind()):
			av = av.Convert(pt)
		default:
			return nil, fmt.Errorf("%w: arg %d is %T, want %s", ErrArgument, idx, arg, pt)
		}
		vals = append(vals, av)
	}

	out := op.fn.Call(vals)
	if op.hasErr {
		if errv := out[1]; !errv.IsNil() {
			return nil, errv.Interface().(error)
		}
	}
	return out[0].Interface(), nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Call invokes a registered operation against the underlying value.
// A value-producing result re-enters the construction pipeline with
// the instance's original construction arguments and comes back as an
// Instance of the same derived type; re-validation failures surface to
// the caller, so the call fails rather than yield an invalid or
// downgraded value. Every other result is returned untouched.
func (i Instance[B]) Call(name string, args ...any) (any, error) {
	if i.typ == nil {
		return nil, fmt.Errorf("%w: %q", ErrZeroInstance, name)
	}
	op, ok := i.typ.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrUnknownOp, name, i.typ.name)
	}
	out, err := op.invoke(reflect.ValueOf(i.value), args)
	if err != nil {
		return nil, err
	}
	if !op.wraps {
		return out, nil
	}
	next, err := i.typ.construct(out.(B), i.args)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Apply runs op on the instance's value and re-validates the result as
// the same derived type. It is the typed counterpart of a
// value-producing Call.
func Apply[B any](i Instance[B], op func(B) B) (Instance[B], error) {
	if i.typ == nil {
		return Instance[B]{}, ErrZeroInstance
	}
	return i.typ.construct(op(i.value), i.args)
}

// ApplyE is Apply for operations that can fail on their own; the
// operation's error surfaces before any re-validation happens.
func ApplyE[B any](i Instance[B], op func(B) (B, error)) (Instance[B], error) {
	if i.typ == nil {
		return Instance[B]{}, ErrZeroInstance
	}
	v, err := op(i.value)
	if err != nil {
		return Instance[B]{}, err
	}
	return i.typ.construct(v, i.args)
}

// Query runs a non-base-returning operation against the underlying
// value. Nothing is intercepted or re-validated; the result is exactly
// what the operation produced.
func Query[B, R any](i Instance[B], op func(B) R) R {
	return op(i.value)
}
