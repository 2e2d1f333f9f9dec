package rules

import "github.com/dmitrymomot/newtype"

// Hook adapts a rule set to the newtype construction hook protocol.
// build receives the raw value and returns the rules to apply; on
// success the raw value passes through unchanged, so the derived
// instance holds exactly what the caller supplied.
func Hook[B any](build func(B) []Rule) newtype.ValidateFunc[B] {
	return func(raw B, _ ...any) (B, error) {
		if err := Apply(build(raw)...); err != nil {
			var zero B
			return zero, err
		}
		return raw, nil
	}
}

// RunHooks feeds a candidate through hooks discovered from a
// newtype.HookSource, the way an external framework validates a value
// before accepting it. The first failure is returned verbatim.
func RunHooks(hooks []func(any) (any, error), v any) error {
	for _, hook := range hooks {
		if _, err := hook(v); err != nil {
			return err
		}
	}
	return nil
}
