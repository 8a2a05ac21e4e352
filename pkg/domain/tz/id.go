package tz

import (
	"strings"
)

const (
	// Length is the number of digits in an ID, check digit included.
	Length = 9

	// MaxValue is the largest number representable in Length digits.
	MaxValue = 999_999_999
)

// ID is a nine-digit national identification number. Index 8 holds the
// check digit.
//
// An ID is not necessarily valid: parsing accepts any nine digits and Valid
// reports whether the check digit matches.
type ID [Length]Digit

// String returns the nine digits, zero-padded, e.g. "037015971".
func (id ID) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, d := range id {
		b.WriteRune(d.Rune())
	}
	return b.String()
}

// CheckDigit returns the stored ninth digit.
func (id ID) CheckDigit() Digit {
	return id[Length-1]
}

// WithCheckDigit returns a copy of id with the ninth digit replaced.
func (id ID) WithCheckDigit(d Digit) ID {
	id[Length-1] = d
	return id
}

// Valid reports whether the stored check digit matches the checksum of the
// first eight digits.
func (id ID) Valid() bool {
	return id.CheckDigit() == Checksum(id)
}

// Uint64 returns the numeric value of the nine digits.
func (id ID) Uint64() uint64 {
	var n uint64
	for _, d := range id {
		n = n*10 + uint64(d.value)
	}
	return n
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseString rules.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// fromUint builds the ID whose digits spell n. n must not exceed MaxValue.
func fromUint(n uint64) ID {
	var id ID
	for i := Length - 1; i >= 0; i-- {
		id[i] = Digit{value: uint8(n % 10)}
		n /= 10
	}
	return id
}
