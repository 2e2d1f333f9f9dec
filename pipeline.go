package newtype

import "reflect"

// The construction pipeline is a linear state machine. Every instance,
// whether built directly, re-wrapped by an intercepted operation, or
// decoded from a document, passes Validating -> Materializing ->
// Customizing -> Ready. A hook failure moves to Rejected and the
// hook's error surfaces unchanged; no instance exists after a
// rejection.
type pipelineState uint8

const (
	stateValidating pipelineState = iota
	stateMaterializing
	stateCustomizing
	stateReady
	stateRejected
)

func (s pipelineState) String() string {
	switch s {
	case stateValidating:
		return "validating"
	case stateMaterializing:
		return "materializing"
	case stateCustomizing:
		return "customizing"
	case stateReady:
		return "ready"
	case stateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type pipeline[B any] struct {
	typ   *Type[B]
	state pipelineState
}

func (p *pipeline[B]) run(raw B, args []any) (Instance[B], error) {
	p.state = stateValidating
	val, err := p.typ.validate(raw, args...)
	if err != nil {
		p.state = stateRejected
		return Instance[B]{}, err
	}

	p.state = stateMaterializing
	if p.typ.clone {
		val = cloneValue(val)
	}
	inst := Instance[B]{typ: p.typ, value: val, args: args}

	if p.typ.customize != nil {
		p.state = stateCustomizing
		inst.attrs = make(map[string]any)
		if err := p.typ.customize(&inst, raw, args...); err != nil {
			p.state = stateRejected
			return Instance[B]{}, err
		}
	}

	p.state = stateReady
	return inst, nil
}

func (t *Type[B]) construct(raw B, args []any) (Instance[B], error) {
	p := pipeline[B]{typ: t}
	return p.run(raw, args)
}

// cloneValue copies slice-kind values so no two instances share
// mutable storage.
func cloneValue[B any](v B) B {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out.Interface().(B)
}
