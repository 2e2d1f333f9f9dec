package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Between requires min <= value <= max.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v, got %v", min, max, value),
		},
	}
}

// LenBetween requires the string's byte length to be within [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min && len(value) <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("length must be between %d and %d, got %d", min, max, len(value)),
		},
	}
}

// WordCount requires the string to contain exactly want
// whitespace-separated words.
func WordCount(field, value string, want int) Rule {
	got := len(strings.Fields(value))
	return Rule{
		Check: func() bool { return got == want },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have %d words, got %d", want, got),
		},
	}
}

// Matches requires the string to match the pattern.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool { return re.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s", re),
		},
	}
}

var hexAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// HexAddress requires a 0x-prefixed 40-hex-character address string.
func HexAddress(field, value string) Rule {
	return Rule{
		Check: func() bool { return hexAddressRe.MatchString(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a 0x-prefixed 40-character hex address",
		},
	}
}

// UUID requires the string to parse as a UUID.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid UUID",
		},
	}
}
