package jobid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// SequenceWidth is the minimum number of digits in the sequence segment.
	// Larger sequences widen instead of being truncated.
	SequenceWidth = 4

	separator = "-"
)

var (
	ErrInvalidPrefix       = errors.New("jobid: tenant prefix must be two upper-case letters")
	ErrInvalidCode         = errors.New("jobid: category code must be two or three upper-case letters")
	ErrInvalidSequence     = errors.New("jobid: sequence must not be negative")
	ErrMalformedIdentifier = errors.New("jobid: malformed identifier")

	prefixRE     = regexp.MustCompile(`^[A-Z]{2}$`)
	codeRE       = regexp.MustCompile(`^[A-Z]{2,3}$`)
	identifierRE = regexp.MustCompile(`^([A-Z]{2})-([A-Z]{2,3})-(\d{4,})$`)
)

// Identifier is a parsed job identifier of the form PREFIX-CODE-NNNN.
type Identifier struct {
	Prefix   string
	Code     Code
	Sequence int
}

// String renders the identifier in canonical form. It does not validate;
// use Format when the parts come from untrusted input.
func (id Identifier) String() string {
	return fmt.Sprintf("%s%s%s%s%0*d", id.Prefix, separator, id.Code, separator, SequenceWidth, id.Sequence)
}

// Format renders prefix, code and sequence as a canonical identifier.
func Format(prefix string, code Code, sequence int) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}
	if err := ValidateCode(code); err != nil {
		return "", err
	}
	if sequence < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSequence, sequence)
	}

	return Identifier{Prefix: prefix, Code: code, Sequence: sequence}.String(), nil
}

// Parse strictly parses a canonical identifier.
func Parse(s string) (Identifier, error) {
	m := identifierRE.FindStringSubmatch(s)
	if m == nil {
		return Identifier{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}

	seq, err := strconv.Atoi(m[3])
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %q: %w", ErrMalformedIdentifier, s, err)
	}

	return Identifier{Prefix: m[1], Code: Code(m[2]), Sequence: seq}, nil
}

// ValidatePrefix reports whether prefix is a usable tenant prefix.
func ValidatePrefix(prefix string) error {
	if !prefixRE.MatchString(prefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return nil
}

// ValidateCode reports whether code is a usable category code.
func ValidateCode(code Code) error {
	if !codeRE.MatchString(string(code)) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	return nil
}

// CategoryOf returns the category segment of s without validating the rest.
// ok is false when s does not have at least three segments.
func CategoryOf(s string) (Code, bool) {
	parts := strings.Split(s, separator)
	if len(parts) < 3 {
		return "", false
	}
	return Code(parts[1]), true
}

// SequenceOf returns the number after the last separator of s, or 0 when it
// is missing or not a non-negative decimal integer.
func SequenceOf(s string) int {
	i := strings.LastIndex(s, separator)
	if i < 0 {
		return 0
	}

	digits := s[i+1:]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
