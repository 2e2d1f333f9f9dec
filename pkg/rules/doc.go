// Package rules provides composable, rule-based validation helpers for
// building construction hooks of derived types.
//
// Each builder returns a small Rule value pairing a boolean Check with
// the error reported on failure. Rules are evaluated with Apply, which
// aggregates failures into a ValidationErrors slice implementing the
// error interface. The package has no hidden state and is safe for
// concurrent use.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/newtype"
//		"github.com/dmitrymomot/newtype/pkg/rules"
//	)
//
//	Address := newtype.MustDeclare(newtype.Descriptor[string]{
//		Name: "Address",
//		Validate: rules.Hook(func(raw string) []rules.Rule {
//			return []rules.Rule{rules.HexAddress("address", raw)}
//		}),
//		Ops: newtype.StringOps[string](),
//	})
//
// A rejected construction surfaces the ValidationErrors unmodified:
//
//	_, err := Address.New("not-an-address")
//	if verrs := rules.Extract(err); verrs != nil {
//		// field-level messages
//	}
//
// RunHooks consumes construction hooks discovered through
// newtype.HookSource, covering the external-framework side of the hook
// protocol.
package rules
