package tz

// Checksum computes the expected check digit from the first eight digits of
// id. The ninth digit is ignored.
//
// Digits at odd positions (1st, 3rd, 5th, 7th) count as-is and digits at even
// positions are Doubled. The check digit tops the total up to the next
// multiple of ten.
func Checksum(id ID) Digit {
	var total uint
	for i := 0; i < Length-1; i++ {
		d := id[i]
		if i%2 == 1 {
			d = d.Doubled()
		}
		total += uint(d.value)
	}

	check, err := NewDigit(uint8((10 - total%10) % 10))
	if err != nil {
		// Unreachable: the expression above is always in [0, 9].
		return Digit{}
	}
	return check
}

// Complete returns base with its check digit replaced by Checksum(base),
// which makes it Valid.
func Complete(base ID) ID {
	return base.WithCheckDigit(Checksum(base))
}
