package tz

import (
	"strconv"
	"strings"
	"unicode/utf8"

	dErrors "iltz/pkg/domain-errors"
)

// ParseString parses a decimal candidate into an ID.
//
// Shorter inputs are left-padded with zeros, so "" parses to 000000000 and
// "12" to 000000012. Inputs longer than nine characters fail with
// CodeInvalidLength even when the extra characters are leading zeros.
// Any character other than '0'-'9' fails with CodeInvalidDigit. Length is
// checked first; characters are counted as code points.
func ParseString(s string) (ID, error) {
	n := utf8.RuneCountInString(s)
	if n > Length {
		return ID{}, dErrors.New(dErrors.CodeInvalidLength, "invalid ID length").WithInput(s)
	}
	padded := strings.Repeat("0", Length-n) + s

	var id ID
	i := 0
	for _, r := range padded {
		d, err := ParseDigit(r)
		if err != nil {
			return ID{}, dErrors.New(dErrors.CodeInvalidDigit, "invalid digit in ID").WithInput(s)
		}
		id[i] = d
		i++
	}
	return id, nil
}

// ParseInt parses a non-negative integer into an ID.
// Values above MaxValue fail with CodeInvalidLength, negative values with
// CodeInvalidRange.
func ParseInt(n int64) (ID, error) {
	if n > MaxValue {
		return ID{}, dErrors.New(dErrors.CodeInvalidLength, "invalid ID length").
			WithInput(strconv.FormatInt(n, 10))
	}
	if n < 0 {
		return ID{}, dErrors.New(dErrors.CodeInvalidRange, "invalid ID").
			WithInput(strconv.FormatInt(n, 10))
	}
	return ParseString(strconv.FormatInt(n, 10))
}

// ParseUint parses an unsigned integer into an ID.
// Values above MaxValue fail with CodeInvalidLength.
func ParseUint(n uint64) (ID, error) {
	if n > MaxValue {
		return ID{}, dErrors.New(dErrors.CodeInvalidLength, "invalid ID length").
			WithInput(strconv.FormatUint(n, 10))
	}
	return ParseString(strconv.FormatUint(n, 10))
}

// MustParse parses s with ParseString, panicking on error.
// Use only in tests or when the value is known to be valid.
func MustParse(s string) ID {
	id, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return id
}
