// Package newtype derives constrained specializations of existing Go
// types: types that carry their base type's behavior, intercept
// construction with a validation hook, and re-validate the result of
// every value-producing operation instead of decaying back to the
// plain base type.
//
// Key Features:
//
//   - Declarative type factory: a Descriptor with a mandatory Validate
//     hook and an optional Customize hook produces a *Type handle
//   - Operation interception: base-type-returning operations re-enter
//     the construction pipeline, so every live Instance is valid
//   - Built-in operation tables for string, integer, float, and slice
//     kinds, plus reflected ops from a base type's method set
//   - Parametrized families with canonical, weakly cached members
//   - Hook discovery protocol for external validation frameworks
//   - JSON/YAML decoding that runs the full construction pipeline
//
// Basic Usage:
//
//	// A four-digit integer type.
//	var FourDigits = newtype.MustDeclare(newtype.Descriptor[int]{
//		Name: "FourDigits",
//		Validate: func(raw int, _ ...any) (int, error) {
//			if raw < 1000 || raw > 9999 {
//				return 0, fmt.Errorf("%d is not a four-digit number", raw)
//			}
//			return raw, nil
//		},
//		Ops: newtype.IntOps[int](),
//	})
//
//	pin := FourDigits.MustNew(1234)
//	out, err := pin.Call("add", 11) // Instance holding 1245
//	_, err = pin.Call("add", 9000)  // fails: 10234 is out of range
//
// Value-producing operations (here "add") come back as a re-validated
// Instance of the same derived type; pass-through operations (here
// "cmp") return their raw result untouched. Errors raised by the
// Validate hook surface to the caller verbatim; the core never wraps
// or suppresses them.
//
// Parametrized Families:
//
// A Family keys structurally equivalent derived types by a derivation
// key, so "mnemonic phrase of 2 words" is a single canonical type:
//
//	Mnemonics := newtype.NewFamily("Mnemonics", func(words int) newtype.Descriptor[string] {
//		return newtype.Descriptor[string]{
//			Validate: func(raw string, _ ...any) (string, error) {
//				if len(strings.Fields(raw)) != words {
//					return "", fmt.Errorf("want %d words", words)
//				}
//				return raw, nil
//			},
//			Ops: newtype.StringOps[string](),
//		}
//	})
//
//	M2 := Mnemonics.MustGet(2) // identical *Type on every Get(2)
//	phrase := M2.MustNew("hello bye")
//	out, _ := phrase.Call("replace", "hello", "hey") // "hey bye", still Mnemonics[2]
//
// The family cache is non-owning: once every reference to a member is
// dropped the member may be reclaimed, and a later Get with the same
// key builds an equivalent fresh one.
//
// Hook Discovery:
//
// External validation frameworks pick up construction hooks through
// the HookSource interface without importing any concrete base type:
//
//	var src newtype.HookSource = FourDigits
//	for _, hook := range src.ValidationHooks() {
//		if _, err := hook(candidate); err != nil {
//			// reject candidate
//		}
//	}
//
// Scope:
//
// Base types are assumed to be immutable value types. Maps, channels,
// funcs, and pointers mutate in place and are rejected at declaration
// time; pointer-receiver methods are never intercepted for the same
// reason.
package newtype
