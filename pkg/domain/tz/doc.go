// Package tz models Israeli national identification numbers (Teudat Zehut).
//
// An ID is exactly nine decimal digits. The ninth is a check digit derived
// from the first eight: digits at even positions are doubled (and reduced to
// a single digit by summing their decimal digits), all eight are summed, and
// the check digit is whatever brings the total up to a multiple of ten.
//
// The package parses candidates, validates them, and enumerates every valid
// ID in a numeric range.
//
// Domain Purity: this package performs no I/O, takes no context.Context and
// keeps no mutable package state. Every exported function is safe for
// concurrent use.
package tz
