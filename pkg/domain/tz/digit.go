package tz

import (
	"strconv"

	dErrors "iltz/pkg/domain-errors"
)

// Digit is a single decimal digit.
//
// Invariants:
//   - Value is in [0, 9]
//   - Only NewDigit and ParseDigit construct non-zero Digits
//
// The zero value is the digit 0.
type Digit struct {
	value uint8
}

// NewDigit creates a Digit from a small integer.
func NewDigit(n uint8) (Digit, error) {
	if n > 9 {
		return Digit{}, dErrors.New(dErrors.CodeInvalidDigit, "invalid digit in ID").
			WithInput(strconv.Itoa(int(n)))
	}
	return Digit{value: n}, nil
}

// ParseDigit creates a Digit from an ASCII decimal character.
func ParseDigit(r rune) (Digit, error) {
	if r < '0' || r > '9' {
		return Digit{}, dErrors.New(dErrors.CodeInvalidDigit, "invalid digit in ID").
			WithInput(string(r))
	}
	return Digit{value: uint8(r - '0')}, nil
}

// MustDigit creates a Digit, panicking if n > 9.
// Use only in tests or when the value is known to be valid.
func MustDigit(n uint8) Digit {
	d, err := NewDigit(n)
	if err != nil {
		panic(err)
	}
	return d
}

// Value returns the digit as an integer in [0, 9].
func (d Digit) Value() uint8 {
	return d.value
}

// Rune returns the ASCII character for the digit.
func (d Digit) Rune() rune {
	return rune('0' + d.value)
}

func (d Digit) String() string {
	return string(d.Rune())
}

// doubledDigitSum[d] is 2*d reduced to one digit by summing its decimal
// digits: 5 -> 10 -> 1, 9 -> 18 -> 9.
var doubledDigitSum = [10]uint8{0, 2, 4, 6, 8, 1, 3, 5, 7, 9}

// Doubled returns 2*d with its decimal digits summed. It is the weight
// applied to digits at even positions of an ID.
func (d Digit) Doubled() Digit {
	return Digit{value: doubledDigitSum[d.value]}
}
