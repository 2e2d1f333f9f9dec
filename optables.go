package newtype

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Integer is the constraint for the built-in integer operation table.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the constraint for the built-in float operation table.
type Float interface {
	~float32 | ~float64
}

// StringOps is the built-in operation table for string-kind bases.
// concat, replace, trim_space, to_upper, to_lower, to_title, repeat,
// cut_prefix, cut_suffix, and slice are value-producing; len, contains,
// and words pass through.
func StringOps[B ~string]() []Op[B] {
	title := cases.Title(language.English)
	return []Op[B]{
		{Name: "concat", Fn: func(s B, other string) B { return s + B(other) }},
		{Name: "replace", Fn: func(s B, old, repl string) B {
			return B(strings.ReplaceAll(string(s), old, repl))
		}},
		{Name: "trim_space", Fn: func(s B) B { return B(strings.TrimSpace(string(s))) }},
		{Name: "to_upper", Fn: func(s B) B { return B(strings.ToUpper(string(s))) }},
		{Name: "to_lower", Fn: func(s B) B { return B(strings.ToLower(string(s))) }},
		{Name: "to_title", Fn: func(s B) B { return B(title.String(string(s))) }},
		{Name: "repeat", Fn: func(s B, n int) (B, error) {
			if n < 0 {
				return "", fmt.Errorf("%w: repeat count %d", ErrArgument, n)
			}
			return B(strings.Repeat(string(s), n)), nil
		}},
		{Name: "cut_prefix", Fn: func(s B, prefix string) B {
			out, _ := strings.CutPrefix(string(s), prefix)
			return B(out)
		}},
		{Name: "cut_suffix", Fn: func(s B, suffix string) B {
			out, _ := strings.CutSuffix(string(s), suffix)
			return B(out)
		}},
		{Name: "slice", Fn: func(s B, from, to int) (B, error) {
			if from < 0 || to > len(s) || from > to {
				return "", fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfBounds, from, to, len(s))
			}
			return s[from:to], nil
		}},
		{Name: "len", Fn: func(s B) int { return len(s) }},
		{Name: "contains", Fn: func(s B, sub string) bool { return strings.Contains(string(s), sub) }},
		{Name: "words", Fn: func(s B) []string { return strings.Fields(string(s)) }},
	}
}

// IntOps is the built-in operation table for integer-kind bases.
// add, sub, mul, div, mod, neg, and abs are value-producing; cmp
// passes through. div and mod fail with ErrDivisionByZero.
func IntOps[B Integer]() []Op[B] {
	return []Op[B]{
		{Name: "add", Fn: func(v, n B) B { return v + n }},
		{Name: "sub", Fn: func(v, n B) B { return v - n }},
		{Name: "mul", Fn: func(v, n B) B { return v * n }},
		{Name: "div", Fn: func(v, n B) (B, error) {
			if n == 0 {
				return 0, ErrDivisionByZero
			}
			return v / n, nil
		}},
		{Name: "mod", Fn: func(v, n B) (B, error) {
			if n == 0 {
				return 0, ErrDivisionByZero
			}
			return v % n, nil
		}},
		{Name: "neg", Fn: func(v B) B { return -v }},
		{Name: "abs", Fn: func(v B) B {
			if v < 0 {
				return -v
			}
			return v
		}},
		{Name: "cmp", Fn: func(v, n B) int { return cmp.Compare(v, n) }},
	}
}

// FloatOps is the built-in operation table for float-kind bases.
func FloatOps[B Float]() []Op[B] {
	return []Op[B]{
		{Name: "add", Fn: func(v, n B) B { return v + n }},
		{Name: "sub", Fn: func(v, n B) B { return v - n }},
		{Name: "mul", Fn: func(v, n B) B { return v * n }},
		{Name: "div", Fn: func(v, n B) (B, error) {
			if n == 0 {
				return 0, ErrDivisionByZero
			}
			return v / n, nil
		}},
		{Name: "neg", Fn: func(v B) B { return -v }},
		{Name: "abs", Fn: func(v B) B {
			if v < 0 {
				return -v
			}
			return v
		}},
		{Name: "cmp", Fn: func(v, n B) int { return cmp.Compare(v, n) }},
	}
}

// SliceOps is the built-in operation table for slice-kind bases. All
// value-producing ops return fresh copies, keeping instance storage
// exclusively owned. appended, concat, sliced, and reversed are
// value-producing; len and at pass through.
func SliceOps[S ~[]E, E any]() []Op[S] {
	return []Op[S]{
		{Name: "appended", Fn: func(s S, v E) S {
			out := make(S, len(s), len(s)+1)
			copy(out, s)
			return append(out, v)
		}},
		{Name: "concat", Fn: func(s, other S) S {
			out := make(S, 0, len(s)+len(other))
			out = append(out, s...)
			return append(out, other...)
		}},
		{Name: "sliced", Fn: func(s S, from, to int) (S, error) {
			if from < 0 || to > len(s) || from > to {
				return nil, fmt.Errorf("%w: [%d:%d] of %d elements", ErrOutOfBounds, from, to, len(s))
			}
			return slices.Clone(s[from:to]), nil
		}},
		{Name: "reversed", Fn: func(s S) S {
			out := slices.Clone(s)
			slices.Reverse(out)
			return out
		}},
		{Name: "len", Fn: func(s S) int { return len(s) }},
		{Name: "at", Fn: func(s S, i int) (E, error) {
			if i < 0 || i >= len(s) {
				var zero E
				return zero, fmt.Errorf("%w: index %d of %d elements", ErrOutOfBounds, i, len(s))
			}
			return s[i], nil
		}},
	}
}
